package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scalepage/pkg/scale"
)

func TestWindowResizeNotifiesInOrder(t *testing.T) {
	w := NewWindow(800, 600)
	var got []string
	w.Subscribe(func(s scale.Size) { got = append(got, "a "+s.String()) })
	w.Subscribe(func(s scale.Size) { got = append(got, "b "+s.String()) })

	w.Resize(400, 300)
	w.Resize(1024, 768)

	assert.Equal(t, []string{"a 400 x 300", "b 400 x 300", "a 1024 x 768", "b 1024 x 768"}, got)
	assert.Equal(t, scale.Size{Width: 1024, Height: 768}, w.Size())
}

func TestWindowCancel(t *testing.T) {
	w := NewWindow(800, 600)
	calls := 0
	cancel := w.Subscribe(func(scale.Size) { calls++ })
	other := w.Subscribe(func(scale.Size) {})
	require.Equal(t, 2, w.Subscribers())

	cancel()
	cancel()
	assert.Equal(t, 1, w.Subscribers())
	w.Resize(10, 10)
	assert.Zero(t, calls)

	other()
	assert.Zero(t, w.Subscribers())
}

func TestWindowHandlerCanCancelDuringResize(t *testing.T) {
	w := NewWindow(800, 600)
	var cancel func()
	calls := 0
	cancel = w.Subscribe(func(scale.Size) {
		calls++
		cancel()
	})
	w.Resize(1, 1)
	w.Resize(2, 2)
	assert.Equal(t, 1, calls)
}

func TestWindowScreenSize(t *testing.T) {
	w := NewWindow(800, 600)
	assert.Equal(t, scale.Size{Width: 800, Height: 600}, w.ScreenSize())
	w.SetScreenSize(1920, 1080)
	w.Resize(100, 100)
	assert.Equal(t, scale.Size{Width: 1920, Height: 1080}, w.ScreenSize())
}

func TestWindowDrivesEngine(t *testing.T) {
	w := NewWindow(1000, 500)
	surface := &recordingSurface{styles: map[string]string{}}
	e, err := scale.New(scale.Config{
		BaseWidth:  500,
		BaseHeight: 400,
		Surface:    surface,
		Target:     surface,
	}, w)
	require.NoError(t, err)
	require.NoError(t, e.Start())

	assert.Equal(t, 1.25, e.ScaleFactor())
	w.Resize(250, 1000)
	assert.Equal(t, 0.5, e.ScaleFactor())

	e.Stop()
	assert.Zero(t, w.Subscribers())
}

type recordingSurface struct {
	styles map[string]string
}

func (s *recordingSurface) Size() scale.Size           { return scale.Size{Width: 500, Height: 400} }
func (s *recordingSurface) Style(prop string) string    { return s.styles[prop] }
func (s *recordingSurface) SetStyle(prop, value string) { s.styles[prop] = value }
func (s *recordingSurface) SetData(string, string)      {}
