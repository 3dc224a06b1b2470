// Package viewport provides the sources of viewport size and change
// notifications that drive a scale.Engine.
package viewport

import (
	"sync"

	"scalepage/pkg/scale"
)

// Window is an in-memory viewport. Resize notifies subscribers
// synchronously, in subscription order, on the caller's goroutine.
type Window struct {
	mu       sync.Mutex
	size     scale.Size
	screen   scale.Size
	handlers []*handler
}

type handler struct {
	fn func(scale.Size)
}

func NewWindow(width, height float64) *Window {
	size := scale.Size{Width: width, Height: height}
	return &Window{size: size, screen: size}
}

func (w *Window) Size() scale.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

func (w *Window) ScreenSize() scale.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.screen
}

// SetScreenSize records the device screen size reported to diagnostics.
func (w *Window) SetScreenSize(width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.screen = scale.Size{Width: width, Height: height}
}

func (w *Window) Subscribe(fn func(scale.Size)) func() {
	h := &handler{fn: fn}
	w.mu.Lock()
	w.handlers = append(w.handlers, h)
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { w.remove(h) })
	}
}

func (w *Window) remove(h *handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, x := range w.handlers {
		if x == h {
			w.handlers = append(w.handlers[:i:i], w.handlers[i+1:]...)
			return
		}
	}
}

// Resize changes the size and notifies every subscriber. Handlers run
// without the window lock held, so they may query the window.
func (w *Window) Resize(width, height float64) {
	w.mu.Lock()
	w.size = scale.Size{Width: width, Height: height}
	size := w.size
	handlers := append([]*handler(nil), w.handlers...)
	w.mu.Unlock()

	for _, h := range handlers {
		h.fn(size)
	}
}

// Subscribers returns the number of active subscriptions.
func (w *Window) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.handlers)
}

var (
	_ scale.Viewport = (*Window)(nil)
	_ scale.Screener = (*Window)(nil)
)
