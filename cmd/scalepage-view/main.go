// Command scalepage-view shows a live preview of a page being scaled to the
// size of its window.
//
//	scalepage-view [flags] [document.html|url]
package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scalepage/pkg/config"
	"scalepage/pkg/html"
	"scalepage/pkg/scale"
	"scalepage/pkg/viewport"
	stdnet "scalepage/std/net"
)

type flags struct {
	width, height    float64
	screenW, screenH float64
	configPath       string
	hideInfo         bool
	opts             scale.Options
}

func parseFlags(args []string) (*flags, []string, error) {
	f := &flags{}
	fs := flag.NewFlagSet("scalepage-view", flag.ContinueOnError)
	fs.Float64Var(&f.width, "w", 1024, "initial window width")
	fs.Float64Var(&f.height, "h", 700, "initial window height")
	fs.Float64Var(&f.screenW, "screen-w", 1920, "screen width reported to diagnostics")
	fs.Float64Var(&f.screenH, "screen-h", 1080, "screen height reported to diagnostics")
	fs.StringVar(&f.configPath, "config", "", "options file (.json, .yaml)")
	fs.StringVar(&f.opts.ScaleBy, "scale-by", "", "best-fit, width or height")
	fs.Float64Var(&f.opts.BaseWidth, "base-width", 0, "designed content width")
	fs.Float64Var(&f.opts.BaseHeight, "base-height", 0, "designed content height")
	fs.StringVar(&f.opts.ScaleContentFor, "scale-for", "", "small-screen, big-screen or all-screen")
	fs.StringVar(&f.opts.Position, "position", "", "center, center-horizontally, center-vertically or none")
	fs.StringVar(&f.opts.Container, "container", "", "selector of the scaling container")
	fs.StringVar(&f.opts.ContainerToPosition, "target", "", "selector of the positioning target")
	fs.BoolVar(&f.hideInfo, "no-info", false, "disable the diagnostics overlay")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if f.hideInfo {
		show := false
		f.opts.ShowInfo = &show
	}
	return f, fs.Args(), nil
}

// options merges the config file, if any, under the flag values.
func (f *flags) options() (scale.Options, error) {
	opts := scale.Options{}
	if f.configPath != "" {
		fileOpts, err := config.Load(f.configPath)
		if err != nil {
			return opts, err
		}
		opts = opts.Merge(fileOpts)
	}
	return opts.Merge(f.opts), nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	f, args, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("Parsing flags")
	}
	opts, err := f.options()
	if err != nil {
		log.Fatal().Err(err).Msg("Loading config")
	}

	doc := html.NewDocument()
	if len(args) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		src, err := stdnet.ReadDocument(ctx, args[0])
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("Loading document")
		}
		if doc, err = html.Parse(src); err != nil {
			log.Fatal().Err(err).Msg("Parsing document")
		}
		if len(doc.Scripts) > 0 {
			log.Warn().Int("scripts", len(doc.Scripts)).Msg("Page scripts are not run in the viewer")
		}
	}

	bus := viewport.NewBus(f.width, f.height, 8)
	bus.SetScreenSize(f.screenW, f.screenH)

	cfg, err := doc.ScaleConfig(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Configuring page")
	}
	page, err := scale.New(cfg, bus)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating engine")
	}

	a := app.New()
	w := a.NewWindow("scalepage")
	w.Resize(fyne.NewSize(float32(f.width), float32(f.height)))

	preview := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	preview.FillMode = canvas.ImageFillStretch
	status := widget.NewLabel("")
	stage := container.New(&stageLayout{bus: bus}, preview)
	w.SetContent(container.NewBorder(nil, status, nil, nil, stage))

	v := &viewer{
		page: page,
		bus:  bus,
		show: func(img image.Image, line string) {
			fyne.Do(func() {
				preview.Image = img
				preview.Refresh()
				status.SetText(line)
			})
		},
	}
	v.start()
	defer v.stop()

	w.ShowAndRun()
}
