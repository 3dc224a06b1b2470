package js

import (
	"github.com/dop251/goja"
	"github.com/rs/zerolog"

	"scalepage/pkg/scale"
	"scalepage/pkg/viewport"
)

// windowListener is one resize listener added from script.
type windowListener struct {
	fn     goja.Value
	cancel func()
}

// registerWindow sets up the global `window` object. Listeners run on the
// goroutine that resizes the window, which must be the one running the VM.
func registerWindow(vm *goja.Runtime, w *viewport.Window, log *zerolog.Logger) *goja.Object {
	win := vm.NewObject()
	var listeners []windowListener

	size := func(pick func(scale.Size) float64, of func() scale.Size) goja.Value {
		return vm.ToValue(func(goja.FunctionCall) goja.Value {
			return vm.ToValue(pick(of()))
		})
	}
	width := func(s scale.Size) float64 { return s.Width }
	height := func(s scale.Size) float64 { return s.Height }

	win.DefineAccessorProperty("innerWidth", size(width, w.Size), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	win.DefineAccessorProperty("innerHeight", size(height, w.Size), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	screen := vm.NewObject()
	screen.DefineAccessorProperty("width", size(width, w.ScreenSize), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	screen.DefineAccessorProperty("height", size(height, w.ScreenSize), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	win.Set("screen", screen)

	win.Set("resizeTo", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(vm.NewTypeError("Failed to execute 'resizeTo': 2 arguments required"))
		}
		w.Resize(call.Arguments[0].ToFloat(), call.Arguments[1].ToFloat())
		return goja.Undefined()
	})

	win.Set("addEventListener", func(call goja.FunctionCall) goja.Value {
		if argument(call, 0).String() != "resize" {
			return goja.Undefined()
		}
		fn := argument(call, 1)
		handler, ok := goja.AssertFunction(fn)
		if !ok {
			return goja.Undefined()
		}
		cancel := w.Subscribe(func(scale.Size) {
			ev := vm.NewObject()
			ev.Set("type", "resize")
			if _, err := handler(win, ev); err != nil {
				log.Error().Err(err).Msg("Resize listener failed")
			}
		})
		listeners = append(listeners, windowListener{fn: fn, cancel: cancel})
		return goja.Undefined()
	})
	win.Set("removeEventListener", func(call goja.FunctionCall) goja.Value {
		if argument(call, 0).String() != "resize" {
			return goja.Undefined()
		}
		fn := argument(call, 1)
		for i, l := range listeners {
			if l.fn.SameAs(fn) {
				l.cancel()
				listeners = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
		return goja.Undefined()
	})

	if doc := vm.Get("document"); doc != nil {
		win.Set("document", doc)
	}
	win.Set("console", vm.Get("console"))
	vm.Set("window", win)
	return win
}
