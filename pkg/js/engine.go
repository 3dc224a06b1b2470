package js

import (
	"fmt"

	"scalepage/pkg/html"
	"scalepage/pkg/scale"
	"scalepage/pkg/viewport"

	"github.com/dop251/goja"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// Engine executes JavaScript against an HTML document's DOM. Scripts see a
// `window` backed by a viewport.Window and may create scaling engines with
// `new ScalePage(options)`.
type Engine struct {
	vm       *goja.Runtime
	window   *viewport.Window
	log      zerolog.Logger
	defaults scale.Options
	pages    []*scale.Engine
}

// New creates a new JS engine with a fresh goja runtime and an 800x600 window.
func New() *Engine {
	vm := goja.New()
	e := &Engine{
		vm:     vm,
		window: viewport.NewWindow(DefaultWindowWidth, DefaultWindowHeight),
		log:    log.With().Str("module", "js").Logger(),
	}

	c := &consoleAPI{log: &e.log}
	c.register(vm)

	return e
}

// SetWindow replaces the viewport scripts run against. It must be called
// before Execute.
func (e *Engine) SetWindow(w *viewport.Window) {
	e.window = w
}

func (e *Engine) Window() *viewport.Window {
	return e.window
}

func (e *Engine) SetLogger(l zerolog.Logger) {
	e.log = l
}

// SetDefaults sets the options that script-supplied ScalePage options are
// merged over.
func (e *Engine) SetDefaults(o scale.Options) {
	e.defaults = o
}

// Execute runs all scripts from the document against the DOM.
// Scripts are executed in order. Any JS errors are returned but
// callers may choose to log and continue rather than fail.
func (e *Engine) Execute(doc *html.Document) error {
	ctx := registerDocument(e.vm, doc)
	win := registerWindow(e.vm, e.window, &e.log)
	registerScalePage(e, ctx, win)

	for i, script := range doc.Scripts {
		_, err := e.vm.RunString(script)
		if err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
	}

	return nil
}

// Pages returns the scaling engines created by scripts, in creation order.
func (e *Engine) Pages() []*scale.Engine {
	return e.pages
}

// Close stops every scaling engine created by scripts.
func (e *Engine) Close() {
	for _, p := range e.pages {
		p.Stop()
	}
}
