package scale

// Behavior is what an axis does with content that does not fit.
type Behavior int

const (
	Clip Behavior = iota
	Scroll
)

// CSS returns the overflow property value for the behavior.
func (b Behavior) CSS() string {
	if b == Scroll {
		return "auto"
	}
	return "hidden"
}

func (b Behavior) String() string {
	if b == Scroll {
		return "scroll"
	}
	return "clip"
}

type Overflow struct {
	X Behavior
	Y Behavior
}

// OverflowFor derives the per-axis overflow from a calculation result.
// The cross axis clips only when the viewport exceeds a known effective
// dimension; an unset dimension scrolls.
func OverflowFor(mode Mode, res Result, vp Size) Overflow {
	switch mode {
	case Width:
		return Overflow{X: Clip, Y: clipIfLarger(vp.Height, res.Height)}
	case Height:
		return Overflow{X: clipIfLarger(vp.Width, res.Width), Y: Clip}
	}
	return Overflow{X: Clip, Y: Clip}
}

func clipIfLarger(viewport float64, effective Length) Behavior {
	if effective.Set && viewport > effective.Value {
		return Clip
	}
	return Scroll
}
