// Package render draws a preview of a scaling pass: the content box at its
// reference size, resized by the scale factor and placed in the viewport
// at the computed margins.
package render

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"scalepage/pkg/css"
	"scalepage/pkg/scale"
)

var (
	DefaultBackground = colorful.Color{R: 0.88, G: 0.88, B: 0.88}
	DefaultContent    = colorful.Color{R: 1, G: 1, B: 1}
	scrollbarColor    = colorful.Color{R: 200.0 / 255, G: 200.0 / 255, B: 200.0 / 255}
)

const (
	scrollbarWidth = 12.0
	lineHeight     = 16.0
)

// Frame is everything needed to draw one pass.
type Frame struct {
	Viewport   scale.Size
	Content    scale.Size
	Scale      float64
	MarginLeft float64
	MarginTop  float64
	Overflow   scale.Overflow
	Lines      []string
	Background colorful.Color
	Fill       colorful.Color
}

// FrameOf captures the engine's latest pass as it appears in the styles it
// wrote: the scale comes from the surface transform, the offset from the
// target margins and the fill from the surface background-color.
// Diagnostics lines are included only when the engine shows them.
func FrameOf(e *scale.Engine) Frame {
	cfg := e.Config()
	st := e.State()
	f := FrameFromStyles(st.Viewport,
		scale.Size{Width: cfg.BaseWidth, Height: cfg.BaseHeight},
		styleOf(cfg.Surface, "transform", "background-color"),
		styleOf(cfg.Target, "margin-left", "margin-top"))
	f.Overflow = st.Overflow
	if cfg.ShowDiagnostics {
		f.Lines = e.Report().Lines()
	}
	return f
}

// FrameFromStyles builds a frame from inline styles. target may be nil.
func FrameFromStyles(vp, content scale.Size, surface, target *css.Style) Frame {
	f := Frame{
		Viewport:   vp,
		Content:    content,
		Background: DefaultBackground,
		Fill:       surface.GetColor("background-color", DefaultContent),
	}
	// Uniform scaling only; the x factor stands for both.
	f.Scale, _ = surface.GetScale()
	if target != nil {
		m := target.GetMargin()
		f.MarginLeft, f.MarginTop = m.Left, m.Top
	}
	return f
}

func styleOf(s scale.Surface, props ...string) *css.Style {
	if s == nil {
		return nil
	}
	style := css.NewStyle()
	for _, p := range props {
		if v := s.Style(p); v != "" {
			style.Set(p, v)
		}
	}
	return style
}

type Renderer struct {
	context *gg.Context
}

// NewRenderer allocates a canvas of the given size; sizes below one pixel
// are raised to one.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(max(width, 1), max(height, 1))}
}

// NewRendererFor sizes the canvas to the frame's viewport.
func NewRendererFor(f Frame) *Renderer {
	return NewRenderer(pixels(f.Viewport.Width), pixels(f.Viewport.Height))
}

func (r *Renderer) Render(f Frame) {
	r.context.SetColor(f.Background)
	r.context.Clear()

	w, h := pixels(f.Content.Width*f.Scale), pixels(f.Content.Height*f.Scale)
	if w > 0 && h > 0 {
		content := drawContent(f)
		scaled := imaging.Resize(content, w, h, imaging.Linear)
		r.context.DrawImage(scaled, int(math.Round(f.MarginLeft)), int(math.Round(f.MarginTop)))
	}

	r.drawScrollbarIndicators(f, float64(w), float64(h))
	r.drawLines(f)
}

// drawContent paints the reference-size content box: fill, border and a
// size label.
func drawContent(f Frame) image.Image {
	dc := gg.NewContext(pixels(f.Content.Width), pixels(f.Content.Height))
	dc.SetColor(f.Fill)
	dc.Clear()

	border := f.Fill.BlendLab(colorful.Color{}, 0.35).Clamped()
	dc.SetColor(border)
	dc.SetLineWidth(4)
	dc.DrawRectangle(2, 2, f.Content.Width-4, f.Content.Height-4)
	dc.Stroke()

	dc.SetColor(textColor(f.Fill))
	dc.DrawStringAnchored(f.Content.String(), f.Content.Width/2, f.Content.Height/2, 0.5, 0.5)
	return dc.Image()
}

// drawScrollbarIndicators marks the axes that overflow the viewport with
// scrolling enabled.
func (r *Renderer) drawScrollbarIndicators(f Frame, w, h float64) {
	r.context.SetColor(scrollbarColor)
	if f.Overflow.Y == scale.Scroll && f.MarginTop+h > f.Viewport.Height {
		r.context.DrawRectangle(f.Viewport.Width-scrollbarWidth, 0, scrollbarWidth, f.Viewport.Height)
		r.context.Fill()
	}
	if f.Overflow.X == scale.Scroll && f.MarginLeft+w > f.Viewport.Width {
		r.context.DrawRectangle(0, f.Viewport.Height-scrollbarWidth, f.Viewport.Width, scrollbarWidth)
		r.context.Fill()
	}
}

func (r *Renderer) drawLines(f Frame) {
	if len(f.Lines) == 0 {
		return
	}
	width := 0.0
	for _, l := range f.Lines {
		if lw, _ := r.context.MeasureString(l); lw > width {
			width = lw
		}
	}
	r.context.SetRGBA(0, 0, 0, 0.6)
	r.context.DrawRectangle(0, 0, width+12, lineHeight*float64(len(f.Lines))+8)
	r.context.Fill()

	r.context.SetRGB(1, 1, 1)
	for i, l := range f.Lines {
		r.context.DrawString(l, 6, lineHeight*float64(i+1))
	}
}

func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

// textColor picks black or white, whichever reads better on bg.
func textColor(bg colorful.Color) colorful.Color {
	if l, _, _ := bg.Lab(); l > 0.6 {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

func pixels(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
