package js

import (
	"github.com/dop251/goja"

	"scalepage/pkg/html"
	"scalepage/pkg/scale"
)

// scaleBinding backs the ScalePage constructor for one executed document.
type scaleBinding struct {
	e   *Engine
	ctx *domContext
}

// registerScalePage installs ScalePage as a global and on window.
func registerScalePage(e *Engine, ctx *domContext, win *goja.Object) {
	b := &scaleBinding{e: e, ctx: ctx}
	ctor := e.vm.ToValue(b.construct)
	e.vm.Set("ScalePage", ctor)
	win.Set("ScalePage", ctor)
}

// construct builds a scaling engine from the options object and returns its
// script handle. It works with and without `new`.
func (b *scaleBinding) construct(call goja.ConstructorCall) *goja.Object {
	vm := b.e.vm
	opts, container, target := b.options(call.Argument(0))
	opts = b.e.defaults.Merge(opts)
	cfg := opts.Config()

	surface := b.resolve(container, opts.ContainerSelector())
	if surface == nil {
		panic(vm.NewTypeError("ScalePage: container %q not found", opts.ContainerSelector()))
	}
	cfg.Surface = surface
	if t := b.resolve(target, opts.TargetSelector()); t != nil {
		cfg.Target = t
	} else {
		b.e.log.Warn().Str("selector", opts.TargetSelector()).Msg("Positioning target not found")
	}
	cfg.Overlay = html.NewOverlay(b.ctx.doc)

	page, err := scale.New(cfg, b.e.window)
	if err != nil {
		panic(vm.NewGoError(err))
	}
	page.SetLogger(b.e.log.With().Str("page", opts.ContainerSelector()).Logger())
	b.e.pages = append(b.e.pages, page)

	obj := vm.NewObject()
	obj.Set("init", func(goja.FunctionCall) goja.Value {
		if err := page.Start(); err != nil {
			panic(vm.NewGoError(err))
		}
		return obj
	})
	obj.Set("scale", func(goja.FunctionCall) goja.Value {
		page.Scale()
		return obj
	})
	obj.Set("getScaleFactor", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(page.ScaleFactor())
	})
	obj.Set("keepOriginal", func(goja.FunctionCall) goja.Value {
		page.KeepOriginal()
		return obj
	})
	obj.Set("clearScale", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(page.ClearScale())
	})
	obj.Set("stop", func(goja.FunctionCall) goja.Value {
		page.Stop()
		return obj
	})
	return obj
}

// options reads a ScalePage options object. container and
// containerToPosition may be selectors or elements; elements are returned
// separately.
func (b *scaleBinding) options(v goja.Value) (o scale.Options, container, target *html.Node) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return o, nil, nil
	}
	obj := v.ToObject(b.e.vm)

	str := func(key string) string {
		if x := obj.Get(key); present(x) {
			return x.String()
		}
		return ""
	}
	num := func(key string) float64 {
		if x := obj.Get(key); present(x) {
			return x.ToFloat()
		}
		return 0
	}
	elem := func(key string, sel *string) *html.Node {
		x := obj.Get(key)
		if n := b.ctx.unwrapNode(x); n != nil {
			return n
		}
		if present(x) {
			*sel = x.String()
		}
		return nil
	}

	o.ScaleBy = str("scaleBy")
	o.BaseWidth = num("baseWidth")
	o.BaseHeight = num("baseHeight")
	o.ScaleContentFor = str("scaleContentFor")
	o.Position = str("position")
	container = elem("container", &o.Container)
	target = elem("containerToPosition", &o.ContainerToPosition)
	if x := obj.Get("showInfo"); present(x) {
		show := x.ToBoolean()
		o.ShowInfo = &show
	}
	return o, container, target
}

// resolve returns node when given, otherwise the first match of selector.
func (b *scaleBinding) resolve(node *html.Node, selector string) *html.Node {
	if node != nil {
		return node
	}
	return b.ctx.doc.Query(selector)
}

func present(v goja.Value) bool {
	return v != nil && !goja.IsUndefined(v) && !goja.IsNull(v)
}
