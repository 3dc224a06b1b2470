package scale

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterHorizontally(t *testing.T) {
	// 500x400 target at scale 0.5 in a 400x300 viewport.
	vp := newFakeViewport(400, 300)
	target := newFakeSurface(500, 400)
	cfg := baseConfig(BestFit, SmallScreen)
	cfg.Target = target
	e, _ := newTestEngine(t, cfg, vp)

	m := e.center(vp.size, 0.5)
	assert.Equal(t, Px(75), m.Left)
	assert.Equal(t, Auto, m.Top)
	assert.Equal(t, "75px", target.styles["margin-left"])
	assert.NotContains(t, target.styles, "margin-top")
}

func TestCenterAxes(t *testing.T) {
	tests := []struct {
		centering Centering
		wantLeft  Length
		wantTop   Length
	}{
		{CenterNone, Auto, Auto},
		{CenterHorizontal, Px(75), Auto},
		{CenterVertical, Auto, Px(50)},
		{CenterBoth, Px(75), Px(50)},
	}
	for _, tt := range tests {
		t.Run(tt.centering.String(), func(t *testing.T) {
			vp := newFakeViewport(400, 300)
			cfg := baseConfig(BestFit, SmallScreen)
			cfg.Centering = tt.centering
			e, _ := newTestEngine(t, cfg, vp)
			m := e.center(vp.size, 0.5)
			assert.Equal(t, tt.wantLeft, m.Left)
			assert.Equal(t, tt.wantTop, m.Top)
		})
	}
}

func TestHeightModeCentersDuringPass(t *testing.T) {
	vp := newFakeViewport(900, 200)
	cfg := baseConfig(Height, SmallScreen)
	cfg.Centering = CenterBoth
	e, surface := newTestEngine(t, cfg, vp)
	e.Scale()

	// 900 - 500*0.5 = 650; 200 - 400*0.5 = 0
	assert.Equal(t, "325px", surface.styles["margin-left"])
	assert.Equal(t, "0px", surface.styles["margin-top"])
	assert.Equal(t, Margins{Left: Px(325), Top: Px(0)}, e.State().Margins)
}

func TestMissingTargetSkipsCentering(t *testing.T) {
	vp := newFakeViewport(1000, 500)
	surface := newFakeSurface(500, 400)
	cfg := baseConfig(BestFit, SmallScreen)
	cfg.Surface = surface
	e, err := New(cfg, vp)
	require.NoError(t, err)

	e.Scale()
	assert.Equal(t, 1.25, e.ScaleFactor())
	assert.NotContains(t, surface.styles, "margin-left")
	assert.False(t, e.ClearScale())
}

func TestKeepOriginalThenClearScale(t *testing.T) {
	vp := newFakeViewport(1000, 500)
	e, surface := newTestEngine(t, baseConfig(BestFit, SmallScreen), vp)
	surface.styles["margin-left"] = "12px"

	e.KeepOriginal()
	require.True(t, e.ClearScale())
	assert.Equal(t, "12px", surface.styles["margin-left"])
	assert.NotContains(t, surface.styles, "margin-top")

	before := map[string]string{}
	for k, v := range surface.styles {
		before[k] = v
	}
	assert.False(t, e.ClearScale())
	assert.Equal(t, before, surface.styles)
}

func TestClearScaleRestoresAfterPasses(t *testing.T) {
	vp := newFakeViewport(1000, 500)
	cfg := baseConfig(BestFit, SmallScreen)
	cfg.Centering = CenterBoth
	e, surface := newTestEngine(t, cfg, vp)
	surface.styles["margin-top"] = "4px"
	require.NoError(t, e.Start())
	vp.resize(300, 900)
	vp.resize(1200, 600)
	e.Stop()

	assert.NotEqual(t, "4px", surface.styles["margin-top"])
	require.True(t, e.ClearScale())
	assert.Equal(t, "4px", surface.styles["margin-top"])
	assert.NotContains(t, surface.styles, "margin-left")
	assert.Equal(t, "none", surface.styles["transform"])
	assert.Equal(t, "auto", surface.styles["min-width"])
	assert.Equal(t, "auto", surface.styles["min-height"])
	assert.Equal(t, 1.0, e.ScaleFactor())
}

func TestClearScaleRemovesPinnedSize(t *testing.T) {
	vp := newFakeViewport(1000, 800)
	cfg := baseConfig(Height, BigScreen)
	e, surface := newTestEngine(t, cfg, vp)
	e.Scale()
	require.Equal(t, "400px", surface.styles["height"])

	require.True(t, e.ClearScale())
	assert.NotContains(t, surface.styles, "height")
}

func TestClearScaleRestoresOwnSize(t *testing.T) {
	vp := newFakeViewport(1000, 800)
	e, surface := newTestEngine(t, baseConfig(Height, BigScreen), vp)
	surface.styles["height"] = "321px"
	e.Scale()
	vp.resize(1200, 900)
	e.Scale()
	require.Equal(t, "400px", surface.styles["height"])

	require.True(t, e.ClearScale())
	assert.Equal(t, "321px", surface.styles["height"])
	assert.NotContains(t, surface.styles, "width")
}

func TestMissingTargetWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	saved := scaleLog
	scaleLog = zerolog.New(&buf)
	defer func() { scaleLog = saved }()

	vp := newFakeViewport(1000, 500)
	cfg := baseConfig(BestFit, SmallScreen)
	cfg.Surface = newFakeSurface(500, 400)
	e, err := New(cfg, vp)
	require.NoError(t, err)
	require.NoError(t, e.Start())
	defer e.Stop()
	vp.resize(800, 600)
	vp.resize(600, 800)

	assert.Equal(t, 1, strings.Count(buf.String(), `"level":"warn"`))
	assert.Equal(t, 1, strings.Count(buf.String(), "No positioning target"))
}

func TestOriginalCapturedOnce(t *testing.T) {
	vp := newFakeViewport(1000, 500)
	e, surface := newTestEngine(t, baseConfig(BestFit, SmallScreen), vp)
	surface.styles["margin-left"] = "1px"
	e.Scale()
	surface.styles["margin-left"] = "99px"
	e.KeepOriginal()
	e.Scale()

	require.True(t, e.ClearScale())
	assert.Equal(t, "1px", surface.styles["margin-left"])
}
