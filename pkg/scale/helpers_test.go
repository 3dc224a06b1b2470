package scale

import "testing"

// fakeSurface records style writes in a map.
type fakeSurface struct {
	size   Size
	styles map[string]string
	data   map[string]string
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{
		size:   Size{Width: w, Height: h},
		styles: make(map[string]string),
		data:   make(map[string]string),
	}
}

func (f *fakeSurface) Size() Size               { return f.size }
func (f *fakeSurface) Style(prop string) string { return f.styles[prop] }
func (f *fakeSurface) SetData(key, value string) {
	f.data[key] = value
}

func (f *fakeSurface) SetStyle(prop, value string) {
	if value == "" {
		delete(f.styles, prop)
		return
	}
	f.styles[prop] = value
}

// fakeViewport delivers resizes synchronously.
type fakeViewport struct {
	size     Size
	screen   Size
	handlers map[int]func(Size)
	next     int
}

func newFakeViewport(w, h float64) *fakeViewport {
	return &fakeViewport{size: Size{Width: w, Height: h}, handlers: make(map[int]func(Size))}
}

func (v *fakeViewport) Size() Size       { return v.size }
func (v *fakeViewport) ScreenSize() Size { return v.screen }

func (v *fakeViewport) Subscribe(fn func(Size)) func() {
	id := v.next
	v.next++
	v.handlers[id] = fn
	return func() { delete(v.handlers, id) }
}

func (v *fakeViewport) resize(w, h float64) {
	v.size = Size{Width: w, Height: h}
	for i := 0; i < v.next; i++ {
		if fn, ok := v.handlers[i]; ok {
			fn(v.size)
		}
	}
}

type fakeOverlay struct {
	shown []Report
}

func (o *fakeOverlay) Show(r Report) { o.shown = append(o.shown, r) }

func baseConfig(mode Mode, app Applicability) Config {
	return Config{
		Mode:          mode,
		BaseWidth:     500,
		BaseHeight:    400,
		Applicability: app,
		Centering:     CenterHorizontal,
	}
}

func newTestEngine(t *testing.T, cfg Config, vp *fakeViewport) (*Engine, *fakeSurface) {
	t.Helper()
	surface := newFakeSurface(500, 400)
	if cfg.Surface == nil {
		cfg.Surface = surface
	}
	if cfg.Target == nil {
		cfg.Target = surface
	}
	e, err := New(cfg, vp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, surface
}
