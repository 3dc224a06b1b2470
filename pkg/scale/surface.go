package scale

import (
	"fmt"
	"strconv"
)

// Size is a width/height pair in CSS pixels.
type Size struct {
	Width  float64
	Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%s x %s", formatNumber(s.Width), formatNumber(s.Height))
}

// Surface is the mutable style sink the engine writes to and reads
// geometry from. An empty value passed to SetStyle removes the property.
type Surface interface {
	Size() Size
	Style(prop string) string
	SetStyle(prop, value string)
	SetData(key, value string)
}

// Viewport is the external source of viewport size and change
// notifications. Subscribe returns a function that cancels the
// subscription.
type Viewport interface {
	Size() Size
	Subscribe(fn func(Size)) (cancel func())
}

// Screener is implemented by viewports that know the device screen size.
type Screener interface {
	ScreenSize() Size
}

// Overlay is the diagnostics slot. Show replaces whatever it held before.
type Overlay interface {
	Show(r Report)
}

// Length is a dimension that is either a number or unset ("auto").
type Length struct {
	Value float64
	Set   bool
}

// Auto is the unset length.
var Auto = Length{}

func Px(v float64) Length { return Length{Value: v, Set: true} }

func (l Length) String() string {
	if !l.Set {
		return "auto"
	}
	return formatNumber(l.Value) + "px"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
