package scale

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// scaleLog is the package logger; every entry carries module=scale.
var scaleLog zerolog.Logger = log.With().Str("module", "scale").Logger()

const (
	DefaultBaseWidth  = 500
	DefaultBaseHeight = 400
	DefaultContainer  = "body"
)

// Options is the string-typed option set accepted from configuration files
// and page scripts. Zero values select the documented defaults.
type Options struct {
	ScaleBy             string  `json:"scaleBy,omitempty" yaml:"scaleBy,omitempty"`
	BaseWidth           float64 `json:"baseWidth,omitempty" yaml:"baseWidth,omitempty"`
	BaseHeight          float64 `json:"baseHeight,omitempty" yaml:"baseHeight,omitempty"`
	ScaleContentFor     string  `json:"scaleContentFor,omitempty" yaml:"scaleContentFor,omitempty"`
	Position            string  `json:"position,omitempty" yaml:"position,omitempty"`
	ContainerToPosition string  `json:"containerToPosition,omitempty" yaml:"containerToPosition,omitempty"`
	Container           string  `json:"container,omitempty" yaml:"container,omitempty"`
	ShowInfo            *bool   `json:"showInfo,omitempty" yaml:"showInfo,omitempty"`
}

// Merge returns o with every non-zero field of other applied on top.
func (o Options) Merge(other Options) Options {
	if other.ScaleBy != "" {
		o.ScaleBy = other.ScaleBy
	}
	if other.BaseWidth != 0 {
		o.BaseWidth = other.BaseWidth
	}
	if other.BaseHeight != 0 {
		o.BaseHeight = other.BaseHeight
	}
	if other.ScaleContentFor != "" {
		o.ScaleContentFor = other.ScaleContentFor
	}
	if other.Position != "" {
		o.Position = other.Position
	}
	if other.ContainerToPosition != "" {
		o.ContainerToPosition = other.ContainerToPosition
	}
	if other.Container != "" {
		o.Container = other.Container
	}
	if other.ShowInfo != nil {
		o.ShowInfo = other.ShowInfo
	}
	return o
}

// ContainerSelector returns the scaling container selector, defaulting to body.
func (o Options) ContainerSelector() string {
	if o.Container == "" {
		return DefaultContainer
	}
	return o.Container
}

// TargetSelector returns the positioning target selector, defaulting to body.
func (o Options) TargetSelector() string {
	if o.ContainerToPosition == "" {
		return DefaultContainer
	}
	return o.ContainerToPosition
}

// Config converts the options into a Config without surfaces. Unknown enum
// values fall back to their defaults with a warning; invalid dimensions are
// reported by Config.Validate once surfaces are attached.
func (o Options) Config() Config {
	cfg := Config{
		BaseWidth:       o.BaseWidth,
		BaseHeight:      o.BaseHeight,
		ShowDiagnostics: o.ShowInfo == nil || *o.ShowInfo,
	}
	if cfg.BaseWidth == 0 {
		cfg.BaseWidth = DefaultBaseWidth
	}
	if cfg.BaseHeight == 0 {
		cfg.BaseHeight = DefaultBaseHeight
	}

	var ok bool
	if cfg.Mode, ok = ParseMode(o.ScaleBy); !ok && o.ScaleBy != "" {
		scaleLog.Warn().Str("scaleBy", o.ScaleBy).Msg("Unknown scale mode, using best-fit")
	}
	if cfg.Applicability, ok = ParseApplicability(o.ScaleContentFor); !ok && o.ScaleContentFor != "" {
		scaleLog.Warn().Str("scaleContentFor", o.ScaleContentFor).Msg("Unknown screen applicability, using small-screen")
	}
	if cfg.Centering, ok = ParseCentering(o.Position); !ok && o.Position != "" {
		scaleLog.Warn().Str("position", o.Position).Msg("Unknown position, using center-horizontally")
	}
	return cfg
}
