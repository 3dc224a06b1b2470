// Package config loads scale options from JSON or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"scalepage/pkg/scale"
)

// Load reads options from path. The format is chosen by extension:
// .json, or .yaml/.yml.
func Load(path string) (scale.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scale.Options{}, fmt.Errorf("reading config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return scale.Options{}, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
}

func ParseJSON(data []byte) (scale.Options, error) {
	var o scale.Options
	if err := sonic.Unmarshal(data, &o); err != nil {
		return scale.Options{}, fmt.Errorf("parsing json config: %w", err)
	}
	return o, nil
}

func ParseYAML(data []byte) (scale.Options, error) {
	var o scale.Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return scale.Options{}, fmt.Errorf("parsing yaml config: %w", err)
	}
	return o, nil
}

// Marshal renders options as indented JSON, the format Load reads back.
func Marshal(o scale.Options) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(o, "", "  ")
}
