package css

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"white":   "#ffffff",
	"black":   "#000000",
	"gray":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"lime":    "#00ff00",
	"navy":    "#000080",
	"teal":    "#008080",
	"silver":  "#c0c0c0",
}

// ParseColor accepts a named color or a #rgb / #rrggbb hex value.
func ParseColor(colorStr string) (colorful.Color, bool) {
	colorStr = strings.ToLower(strings.TrimSpace(colorStr))
	if hex, ok := namedColors[colorStr]; ok {
		colorStr = hex
	}
	c, err := colorful.Hex(colorStr)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// GetColor returns the parsed color of property, or def when it is unset
// or invalid.
func (s *Style) GetColor(property string, def colorful.Color) colorful.Color {
	if v, ok := s.Get(property); ok {
		if c, ok := ParseColor(v); ok {
			return c
		}
	}
	return def
}
