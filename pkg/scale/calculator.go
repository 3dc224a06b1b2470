package scale

import "errors"

// ErrEmptyViewport is reported when the viewport has no usable area, e.g.
// a hidden container. The accompanying result is unscaled.
var ErrEmptyViewport = errors.New("viewport has zero area")

// Result is the output of one calculation.
type Result struct {
	Scale float64
	// Width and Height are the effective dimensions; unset means the
	// surface keeps its natural size along that axis.
	Width  Length
	Height Length
	// PinWidth and PinHeight ask for the surface's width or height to be
	// fixed to the base dimension so the transform scales a fixed box.
	PinWidth  bool
	PinHeight bool
}

var unscaled = Result{Scale: 1}

// Calculate derives the scale factor and effective dimensions for the
// viewport size vp. It is a pure function of its inputs.
func Calculate(cfg Config, vp Size) (Result, error) {
	if !positive(vp.Width) || !positive(vp.Height) {
		return unscaled, ErrEmptyViewport
	}
	switch cfg.Mode {
	case Width:
		return byWidth(cfg, vp), nil
	case Height:
		return byHeight(cfg, vp), nil
	}
	return bestFit(cfg, vp), nil
}

// byWidth shrinks content on viewports narrower than the base width and
// grows it on wider ones, each only when the applicability allows it.
func byWidth(cfg Config, vp Size) Result {
	r := vp.Width / cfg.BaseWidth
	small := vp.Width < cfg.BaseWidth
	switch {
	case small && cfg.Applicability != BigScreen:
		return Result{Scale: r, Height: Px(cfg.BaseHeight * r)}
	case !small && cfg.Applicability != SmallScreen:
		return Result{Scale: r, Height: Px(cfg.BaseHeight * r), PinWidth: true}
	}
	return unscaled
}

func byHeight(cfg Config, vp Size) Result {
	r := vp.Height / cfg.BaseHeight
	small := vp.Height < cfg.BaseHeight
	switch {
	case small && cfg.Applicability != BigScreen:
		return Result{Scale: r, Width: Px(cfg.BaseWidth * r)}
	case !small && cfg.Applicability != SmallScreen:
		return Result{Scale: r, Width: Px(cfg.BaseWidth * r), PinHeight: true}
	}
	return unscaled
}

// bestFit scales along whichever axis binds first. Applicability is not
// consulted in this mode.
func bestFit(cfg Config, vp Size) Result {
	if vp.Width/vp.Height < cfg.BaseWidth/cfg.BaseHeight {
		return Result{Scale: vp.Width / cfg.BaseWidth, Width: Px(cfg.BaseWidth)}
	}
	return Result{Scale: vp.Height / cfg.BaseHeight, Height: Px(cfg.BaseHeight)}
}
