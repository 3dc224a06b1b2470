// Command scalepage runs the scaling engine once against a document and
// prints the resulting diagnostics.
//
//	scalepage [flags] [document.html|url]
//
// Without a document a blank page whose body is the container is used.
// Pages with scripts are executed so that their ScalePage calls take effect;
// otherwise the flag and config options are applied directly.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scalepage/pkg/config"
	"scalepage/pkg/html"
	"scalepage/pkg/js"
	"scalepage/pkg/render"
	"scalepage/pkg/scale"
	"scalepage/pkg/viewport"
	stdnet "scalepage/std/net"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("scalepage failed")
	}
}

type flags struct {
	width, height    float64
	screenW, screenH float64
	configPath       string
	output           string
	hideInfo         bool
	dumpHTML         bool
	verbose          bool
	opts             scale.Options
}

func parseFlags(args []string) (*flags, []string, error) {
	f := &flags{}
	fs := flag.NewFlagSet("scalepage", flag.ContinueOnError)
	fs.Float64Var(&f.width, "w", js.DefaultWindowWidth, "viewport width")
	fs.Float64Var(&f.height, "h", js.DefaultWindowHeight, "viewport height")
	fs.Float64Var(&f.screenW, "screen-w", 0, "screen width reported to diagnostics (default viewport width)")
	fs.Float64Var(&f.screenH, "screen-h", 0, "screen height reported to diagnostics (default viewport height)")
	fs.StringVar(&f.configPath, "config", "", "options file (.json, .yaml)")
	fs.StringVar(&f.opts.ScaleBy, "scale-by", "", "best-fit, width or height")
	fs.Float64Var(&f.opts.BaseWidth, "base-width", 0, "designed content width")
	fs.Float64Var(&f.opts.BaseHeight, "base-height", 0, "designed content height")
	fs.StringVar(&f.opts.ScaleContentFor, "scale-for", "", "small-screen, big-screen or all-screen")
	fs.StringVar(&f.opts.Position, "position", "", "center, center-horizontally, center-vertically or none")
	fs.StringVar(&f.opts.Container, "container", "", "selector of the scaling container")
	fs.StringVar(&f.opts.ContainerToPosition, "target", "", "selector of the positioning target")
	fs.BoolVar(&f.hideInfo, "no-info", false, "disable the diagnostics overlay")
	fs.StringVar(&f.output, "o", "", "write a PNG preview of the pass")
	fs.BoolVar(&f.dumpHTML, "html", false, "print the resulting document")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if f.hideInfo {
		show := false
		f.opts.ShowInfo = &show
	}
	if f.screenW == 0 {
		f.screenW = f.width
	}
	if f.screenH == 0 {
		f.screenH = f.height
	}
	return f, fs.Args(), nil
}

func run(args []string, stdout io.Writer) error {
	f, rest, err := parseFlags(args)
	if err != nil {
		return err
	}
	if f.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	opts := scale.Options{}
	if f.configPath != "" {
		fileOpts, err := config.Load(f.configPath)
		if err != nil {
			return err
		}
		opts = opts.Merge(fileOpts)
	}
	opts = opts.Merge(f.opts)

	doc, err := loadDocument(rest)
	if err != nil {
		return err
	}

	win := viewport.NewWindow(f.width, f.height)
	win.SetScreenSize(f.screenW, f.screenH)

	var pages []*scale.Engine
	if len(doc.Scripts) > 0 {
		engine := js.New()
		engine.SetWindow(win)
		engine.SetDefaults(opts)
		if err := engine.Execute(doc); err != nil {
			log.Error().Err(err).Msg("Page script failed")
		}
		defer engine.Close()
		pages = engine.Pages()
	}
	if len(pages) == 0 {
		cfg, err := doc.ScaleConfig(opts)
		if err != nil {
			return err
		}
		page, err := scale.New(cfg, win)
		if err != nil {
			return err
		}
		if err := page.Start(); err != nil {
			return err
		}
		defer page.Stop()
		pages = append(pages, page)
	}

	for _, p := range pages {
		fmt.Fprintln(stdout, p.Report().Table())
	}
	if f.dumpHTML {
		fmt.Fprintln(stdout, doc.DocumentElement().SerializeOuter())
	}
	if f.output != "" {
		frame := render.FrameOf(pages[0])
		r := render.NewRendererFor(frame)
		r.Render(frame)
		if err := r.SavePNG(f.output); err != nil {
			return fmt.Errorf("saving preview: %w", err)
		}
		log.Info().Str("file", f.output).Msg("Preview written")
	}
	return nil
}

// loadDocument parses the document named by args, or builds a blank page
// when there is none.
func loadDocument(args []string) (*html.Document, error) {
	if len(args) == 0 {
		return html.NewDocument(), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	src, err := stdnet.ReadDocument(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return html.Parse(src)
}
