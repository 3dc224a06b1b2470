package scale

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

var ErrStarted = errors.New("engine already started")

// State is the runtime state produced by the most recent pass.
type State struct {
	Viewport Size
	Result
	Overflow Overflow
	Margins  Margins
}

// Engine keeps one scaling surface fitted to a viewport. All passes are
// serialised, so observers never see a partially applied pass.
type Engine struct {
	cfg Config
	vp  Viewport
	log zerolog.Logger

	mu       sync.Mutex
	state    State
	original *savedOffset
	unpinned *savedSize
	cancel   func()
	// gen identifies the current subscription; notifications carrying an
	// older generation are dropped.
	gen int
}

// New builds an engine for cfg driven by vp. The engine does nothing until
// Start or Scale is called.
func New(cfg Config, vp Viewport) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if vp == nil {
		return nil, fmt.Errorf("%w: no viewport", ErrInvalidConfig)
	}
	if cfg.Mode < BestFit || cfg.Mode > Height {
		scaleLog.Warn().Int("mode", int(cfg.Mode)).Msg("Unknown scale mode, using best-fit")
		cfg.Mode = BestFit
	}
	if cfg.Target == nil && cfg.Mode != Width && cfg.Centering != CenterNone {
		scaleLog.Warn().Msg("No positioning target, centering disabled")
	}
	return &Engine{
		cfg:   cfg,
		vp:    vp,
		log:   scaleLog,
		state: State{Result: unscaled},
	}, nil
}

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(l zerolog.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = l
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Start runs one pass immediately and then one pass per viewport change
// until Stop is called.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		return ErrStarted
	}
	e.pass()
	e.gen++
	gen := e.gen
	e.cancel = e.vp.Subscribe(func(Size) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.cancel == nil || e.gen != gen {
			return
		}
		e.pass()
	})
	e.log.Debug().Stringer("mode", e.cfg.Mode).Msg("Engine started")
	return nil
}

// Stop releases the viewport subscription. Notifications still queued by
// the viewport are ignored once Stop returns. It is safe to call more than
// once.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.gen++
	e.mu.Unlock()
	if cancel != nil {
		cancel()
		e.log.Debug().Msg("Engine stopped")
	}
}

// Scale forces a recalculation pass.
func (e *Engine) Scale() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pass()
}

// ScaleFactor returns the scale applied by the most recent pass.
func (e *Engine) ScaleFactor() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Scale
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Report snapshots the current diagnostics values.
func (e *Engine) Report() Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.report()
}

func (e *Engine) pass() {
	vp := e.vp.Size()
	res, err := Calculate(e.cfg, vp)
	if err != nil {
		e.log.Warn().Err(err).Stringer("viewport", vp).Msg("Content left unscaled")
	}

	ov := OverflowFor(e.cfg.Mode, res, vp)
	s := e.cfg.Surface
	s.SetStyle("overflow-x", ov.X.CSS())
	s.SetStyle("overflow-y", ov.Y.CSS())
	if res.PinWidth {
		e.keepSize("width")
		s.SetStyle("width", Px(e.cfg.BaseWidth).String())
	}
	if res.PinHeight {
		e.keepSize("height")
		s.SetStyle("height", Px(e.cfg.BaseHeight).String())
	}

	e.state = State{Viewport: vp, Result: res, Overflow: ov}
	e.applyScale(res.Scale)

	// Width mode never recenters.
	if err == nil && (e.cfg.Mode == BestFit || e.cfg.Mode == Height) {
		e.state.Margins = e.center(vp, res.Scale)
	}

	if e.cfg.ShowDiagnostics && e.cfg.Overlay != nil {
		e.cfg.Overlay.Show(e.report())
	}
}

func (e *Engine) applyScale(f float64) {
	s := e.cfg.Surface
	v := formatNumber(f)
	s.SetStyle("transform", "scale("+v+", "+v+")")
	s.SetStyle("transform-origin", "0 0")
	s.SetStyle("min-width", Px(e.cfg.BaseWidth).String())
	s.SetStyle("min-height", Px(e.cfg.BaseHeight).String())
	s.SetData("scale-factor", v)
}

func (e *Engine) report() Report {
	r := Report{
		Viewport: e.state.Viewport,
		Content:  e.cfg.Surface.Size(),
		Scale:    e.state.Scale,
		Mode:     e.cfg.Mode,
	}
	if sc, ok := e.vp.(Screener); ok {
		r.Screen = sc.ScreenSize()
	}
	return r
}
