package scale

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidConfig = errors.New("invalid scale config")
	ErrNoSurface     = errors.New("no scaling surface")
)

// Mode selects which dimension(s) drive the scale computation.
type Mode int

const (
	BestFit Mode = iota
	Width
	Height
)

func (m Mode) String() string {
	switch m {
	case Width:
		return "width"
	case Height:
		return "height"
	}
	return "best-fit"
}

// ParseMode parses a scaleBy option value. The second result is false for
// unrecognised values, in which case BestFit is returned.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "best-fit":
		return BestFit, true
	case "width":
		return Width, true
	case "height":
		return Height, true
	}
	return BestFit, false
}

// Applicability restricts scaling to viewports smaller than, larger than,
// or any size relative to the base dimensions.
type Applicability int

const (
	SmallScreen Applicability = iota
	BigScreen
	AllScreens
)

func (a Applicability) String() string {
	switch a {
	case BigScreen:
		return "big-screen"
	case AllScreens:
		return "all-screen"
	}
	return "small-screen"
}

func ParseApplicability(s string) (Applicability, bool) {
	switch s {
	case "small-screen":
		return SmallScreen, true
	case "big-screen":
		return BigScreen, true
	case "all-screen":
		return AllScreens, true
	}
	return SmallScreen, false
}

// Centering is a bit set of the axes the positioning target is centered on.
type Centering int

const (
	CenterNone       Centering = 0
	CenterHorizontal Centering = 1
	CenterVertical   Centering = 2
	CenterBoth                 = CenterHorizontal | CenterVertical
)

func (c Centering) Horizontal() bool { return c&CenterHorizontal != 0 }
func (c Centering) Vertical() bool   { return c&CenterVertical != 0 }

func (c Centering) String() string {
	switch c {
	case CenterBoth:
		return "center"
	case CenterHorizontal:
		return "center-horizontally"
	case CenterVertical:
		return "center-vertically"
	}
	return "none"
}

func ParseCentering(s string) (Centering, bool) {
	switch s {
	case "center":
		return CenterBoth, true
	case "center-horizontally":
		return CenterHorizontal, true
	case "center-vertically":
		return CenterVertical, true
	case "none":
		return CenterNone, true
	}
	return CenterHorizontal, false
}

// Config is the per-session scaling policy. It is not modified after an
// Engine has been built from it.
type Config struct {
	Mode          Mode
	BaseWidth     float64
	BaseHeight    float64
	Applicability Applicability
	Centering     Centering

	// Surface receives the scale transform and overflow rules.
	Surface Surface
	// Target is the element whose box is centered. A nil Target disables
	// centering with a warning.
	Target Surface

	ShowDiagnostics bool
	Overlay         Overlay
}

// Validate rejects configurations that would produce degenerate scale values.
func (c Config) Validate() error {
	if !positive(c.BaseWidth) {
		return fmt.Errorf("%w: base width %v must be positive", ErrInvalidConfig, c.BaseWidth)
	}
	if !positive(c.BaseHeight) {
		return fmt.Errorf("%w: base height %v must be positive", ErrInvalidConfig, c.BaseHeight)
	}
	if c.Surface == nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoSurface)
	}
	return nil
}

// positive reports whether v is a finite number greater than zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
