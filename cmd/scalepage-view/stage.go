package main

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"

	"scalepage/pkg/render"
	"scalepage/pkg/scale"
	"scalepage/pkg/viewport"
)

// stageLayout fills the stage with its children and reports every size
// change to the viewport bus.
type stageLayout struct {
	bus  *viewport.Bus
	last fyne.Size
}

func (l *stageLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	if size == l.last || size.Width <= 0 || size.Height <= 0 {
		return
	}
	l.last = size
	l.bus.Resize(float64(size.Width), float64(size.Height))
}

func (l *stageLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(1, 1)
}

// viewer rescales the page after each resize and hands a fresh preview to
// show. Resizes superseded by a newer one are skipped.
type viewer struct {
	page   *scale.Engine
	bus    *viewport.Bus
	show   func(img image.Image, status string)
	cancel func()
}

func (v *viewer) start() {
	v.cancel = v.bus.Subscribe(v.onResize)
	v.bus.Resize(v.bus.Size().Width, v.bus.Size().Height)
}

func (v *viewer) stop() {
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *viewer) onResize(size scale.Size) {
	if size != v.bus.Size() {
		return
	}
	v.page.Scale()
	frame := render.FrameOf(v.page)
	r := render.NewRendererFor(frame)
	r.Render(frame)
	v.show(r.Image(), statusLine(frame, v.page.Config().Mode))
}

func statusLine(f render.Frame, mode scale.Mode) string {
	return fmt.Sprintf("%s  scale %.3g  viewport %s", mode, f.Scale, f.Viewport)
}
