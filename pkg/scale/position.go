package scale

// Margins are the offsets written to the positioning target by the last
// centering pass. Unset axes were left untouched.
type Margins struct {
	Left Length
	Top  Length
}

// savedOffset holds the target's raw margin values from before the first
// centering pass. An empty string means the property was not set.
type savedOffset struct {
	top  string
	left string
}

// savedSize holds the surface's own width and height from before the
// engine first pinned them.
type savedSize struct {
	width, height       string
	hasWidth, hasHeight bool
}

func (e *Engine) keepSize(prop string) {
	if e.unpinned == nil {
		e.unpinned = &savedSize{}
	}
	u := e.unpinned
	switch {
	case prop == "width" && !u.hasWidth:
		u.width, u.hasWidth = e.cfg.Surface.Style("width"), true
	case prop == "height" && !u.hasHeight:
		u.height, u.hasHeight = e.cfg.Surface.Style("height"), true
	}
}

// KeepOriginal caches the positioning target's current margins so that
// ClearScale can restore them. Only the first call after construction or
// after ClearScale records anything.
func (e *Engine) KeepOriginal() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keepOriginal()
}

func (e *Engine) keepOriginal() {
	t := e.cfg.Target
	if e.original != nil || t == nil {
		return
	}
	e.original = &savedOffset{
		top:  t.Style("margin-top"),
		left: t.Style("margin-left"),
	}
}

// ClearScale undoes scaling: it restores the cached margins, removes the
// transform and the imposed sizing, puts back any width or height the
// surface had before it was pinned, and drops the cache. It reports false
// and does nothing when no margins were cached.
func (e *Engine) ClearScale() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.original == nil {
		return false
	}
	if t := e.cfg.Target; t != nil {
		t.SetStyle("margin-top", e.original.top)
		t.SetStyle("margin-left", e.original.left)
	}

	s := e.cfg.Surface
	s.SetStyle("transform", "none")
	s.SetStyle("transform-origin", "0 0")
	s.SetStyle("min-width", "auto")
	s.SetStyle("min-height", "auto")
	if u := e.unpinned; u != nil {
		if u.hasWidth {
			s.SetStyle("width", u.width)
		}
		if u.hasHeight {
			s.SetStyle("height", u.height)
		}
	}
	s.SetData("scale-factor", "1")

	e.original = nil
	e.unpinned = nil
	e.state.Scale = 1
	e.state.Margins = Margins{}
	return true
}

// center offsets the target so that its scaled box sits in the middle of
// the viewport along the configured axes.
func (e *Engine) center(vp Size, f float64) Margins {
	t := e.cfg.Target
	if t == nil {
		e.log.Debug().Msg("Centering skipped")
		return Margins{}
	}
	e.keepOriginal()

	box := t.Size()
	var m Margins
	if e.cfg.Centering.Horizontal() {
		m.Left = Px((vp.Width - box.Width*f) / 2)
		t.SetStyle("margin-left", m.Left.String())
	}
	if e.cfg.Centering.Vertical() {
		m.Top = Px((vp.Height - box.Height*f) / 2)
		t.SetStyle("margin-top", m.Top.String())
	}
	return m
}
