package js

import (
	"strings"
	"unicode"

	"scalepage/pkg/css"
	"scalepage/pkg/html"

	"github.com/dop251/goja"
)

// domContext holds shared state for DOM bindings within a single execution.
// It maintains a node-to-proxy cache so the same JS object is returned for
// the same underlying *html.Node (needed for === identity checks).
type domContext struct {
	vm    *goja.Runtime
	doc   *html.Document
	cache map[*html.Node]goja.Value
}

func newDOMContext(vm *goja.Runtime, doc *html.Document) *domContext {
	return &domContext{
		vm:    vm,
		doc:   doc,
		cache: make(map[*html.Node]goja.Value),
	}
}

// registerDocument sets up the global `document` object on the goja runtime.
func registerDocument(vm *goja.Runtime, doc *html.Document) *domContext {
	ctx := newDOMContext(vm, doc)

	docObj := vm.NewObject()
	docObj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		return ctx.nodeValue(html.Query(doc.Root, "#"+call.Arguments[0].String()))
	})
	docObj.Set("querySelector", ctx.querySelectorFn(doc.Root))
	docObj.Set("querySelectorAll", ctx.querySelectorAllFn(doc.Root))
	docObj.Set("createElement", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Failed to execute 'createElement' on 'Document': 1 argument required"))
		}
		return ctx.elementProxy(html.NewElement(strings.ToLower(call.Arguments[0].String())))
	})
	docObj.DefineAccessorProperty("body", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return ctx.nodeValue(doc.Body())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	docObj.DefineAccessorProperty("documentElement", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return ctx.nodeValue(doc.DocumentElement())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	vm.Set("document", docObj)
	return ctx
}

func (ctx *domContext) querySelectorFn(root *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(ctx.vm.NewTypeError("Failed to execute 'querySelector': 1 argument required"))
		}
		return ctx.nodeValue(html.Query(root, call.Arguments[0].String()))
	}
}

func (ctx *domContext) querySelectorAllFn(root *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(ctx.vm.NewTypeError("Failed to execute 'querySelectorAll': 1 argument required"))
		}
		return ctx.elementArray(html.QueryAll(root, call.Arguments[0].String()))
	}
}

// nodeValue returns the proxy for node, or null.
func (ctx *domContext) nodeValue(node *html.Node) goja.Value {
	if node == nil {
		return goja.Null()
	}
	return ctx.elementProxy(node)
}

// elementArray creates a JS array of Element proxies.
func (ctx *domContext) elementArray(nodes []*html.Node) goja.Value {
	vals := make([]interface{}, len(nodes))
	for i, n := range nodes {
		vals[i] = ctx.elementProxy(n)
	}
	return ctx.vm.NewArray(vals...)
}

// elementProxy creates (or retrieves from cache) a JS DynamicObject wrapping an html.Node.
func (ctx *domContext) elementProxy(node *html.Node) goja.Value {
	if v, ok := ctx.cache[node]; ok {
		return v
	}
	v := ctx.vm.NewDynamicObject(&elementAccessor{ctx: ctx, node: node})
	ctx.cache[node] = v
	return v
}

// unwrapNode extracts the *html.Node behind an element proxy, or nil when
// val is not one.
func (ctx *domContext) unwrapNode(val goja.Value) *html.Node {
	if val == nil || goja.IsNull(val) || goja.IsUndefined(val) {
		return nil
	}
	obj, ok := val.(*goja.Object)
	if !ok {
		return nil
	}
	if e, ok := obj.Export().(*elementAccessor); ok {
		return e.node
	}
	return nil
}

// elementAccessor implements goja.DynamicObject to intercept property access
// on DOM element proxies.
type elementAccessor struct {
	ctx  *domContext
	node *html.Node
}

var elementKeys = []string{
	"tagName", "nodeType", "id", "className", "textContent", "outerHTML",
	"getAttribute", "setAttribute", "hasAttribute", "removeAttribute",
	"children", "parentElement", "style", "dataset",
	"appendChild", "removeChild", "querySelector", "querySelectorAll",
}

func (e *elementAccessor) Get(key string) goja.Value {
	vm := e.ctx.vm

	switch key {
	case "nodeType":
		if e.node.Type == html.TextNode {
			return vm.ToValue(3)
		}
		return vm.ToValue(1)
	case "tagName":
		if e.node.Type == html.TextNode {
			return goja.Undefined()
		}
		return vm.ToValue(strings.ToUpper(e.node.TagName))
	case "id":
		id, _ := e.node.GetAttribute("id")
		return vm.ToValue(id)
	case "className":
		cls, _ := e.node.GetAttribute("class")
		return vm.ToValue(cls)
	case "textContent":
		return vm.ToValue(e.node.TextContent())
	case "outerHTML":
		return vm.ToValue(e.node.SerializeOuter())
	case "getAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return goja.Null()
			}
			val, ok := e.node.GetAttribute(call.Arguments[0].String())
			if !ok {
				return goja.Null()
			}
			return vm.ToValue(val)
		})
	case "setAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 2 {
				return goja.Undefined()
			}
			e.node.SetAttribute(call.Arguments[0].String(), call.Arguments[1].String())
			return goja.Undefined()
		})
	case "hasAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return vm.ToValue(false)
			}
			_, ok := e.node.GetAttribute(call.Arguments[0].String())
			return vm.ToValue(ok)
		})
	case "removeAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) > 0 {
				e.node.RemoveAttribute(call.Arguments[0].String())
			}
			return goja.Undefined()
		})
	case "children":
		var elChildren []*html.Node
		for _, child := range e.node.Children {
			if child.Type == html.ElementNode {
				elChildren = append(elChildren, child)
			}
		}
		return e.ctx.elementArray(elChildren)
	case "parentElement":
		if p := e.node.Parent; p != nil && p.TagName != "document" {
			return e.ctx.elementProxy(p)
		}
		return goja.Null()
	case "style":
		return vm.NewDynamicObject(&styleAccessor{vm: vm, node: e.node})
	case "dataset":
		return vm.NewDynamicObject(&datasetAccessor{vm: vm, node: e.node})
	case "appendChild":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			child := e.ctx.unwrapNode(argument(call, 0))
			if child == nil {
				panic(vm.NewTypeError("Failed to execute 'appendChild': parameter 1 is not of type 'Node'"))
			}
			e.node.AddChild(child)
			return call.Arguments[0]
		})
	case "removeChild":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			child := e.ctx.unwrapNode(argument(call, 0))
			if child == nil || e.node.RemoveChild(child) == nil {
				panic(vm.NewTypeError("Failed to execute 'removeChild': the node is not a child of this node"))
			}
			return call.Arguments[0]
		})
	case "querySelector":
		return vm.ToValue(e.ctx.querySelectorFn(e.node))
	case "querySelectorAll":
		return vm.ToValue(e.ctx.querySelectorAllFn(e.node))
	}
	return goja.Undefined()
}

func (e *elementAccessor) Set(key string, val goja.Value) bool {
	switch key {
	case "textContent":
		e.node.SetTextContent(val.String())
		return true
	case "className":
		e.node.SetAttribute("class", val.String())
		return true
	case "id":
		e.node.SetAttribute("id", val.String())
		return true
	}
	return false
}

func (e *elementAccessor) Has(key string) bool {
	for _, k := range elementKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (e *elementAccessor) Delete(key string) bool {
	return false
}

func (e *elementAccessor) Keys() []string {
	return elementKeys
}

// styleAccessor maps JS camelCase property access to CSS kebab-case on the
// node's inline style attribute.
type styleAccessor struct {
	vm   *goja.Runtime
	node *html.Node
}

func (s *styleAccessor) Get(key string) goja.Value {
	if key == "cssText" {
		return s.vm.ToValue(s.node.InlineStyle().String())
	}
	return s.vm.ToValue(s.node.Style(camelToKebab(key)))
}

func (s *styleAccessor) Set(key string, val goja.Value) bool {
	if key == "cssText" {
		s.node.SetAttribute("style", val.String())
		return true
	}
	s.node.SetStyle(camelToKebab(key), styleValue(val))
	return true
}

func (s *styleAccessor) Has(key string) bool {
	return true
}

func (s *styleAccessor) Delete(key string) bool {
	s.node.SetStyle(camelToKebab(key), "")
	return true
}

func (s *styleAccessor) Keys() []string {
	return s.node.InlineStyle().Properties()
}

// styleValue converts a JS assignment to a CSS value; bare numbers become
// pixel lengths the way jQuery's css() treats them.
func styleValue(val goja.Value) string {
	if val == nil || goja.IsNull(val) || goja.IsUndefined(val) {
		return ""
	}
	switch v := val.Export().(type) {
	case int64:
		return css.FormatLength(float64(v))
	case float64:
		return css.FormatLength(v)
	}
	return val.String()
}

// datasetAccessor exposes data-* attributes under camelCase names.
type datasetAccessor struct {
	vm   *goja.Runtime
	node *html.Node
}

func (d *datasetAccessor) Get(key string) goja.Value {
	if v, ok := d.node.Data(camelToKebab(key)); ok {
		return d.vm.ToValue(v)
	}
	return goja.Undefined()
}

func (d *datasetAccessor) Set(key string, val goja.Value) bool {
	d.node.SetData(camelToKebab(key), val.String())
	return true
}

func (d *datasetAccessor) Has(key string) bool {
	_, ok := d.node.Data(camelToKebab(key))
	return ok
}

func (d *datasetAccessor) Delete(key string) bool {
	d.node.RemoveAttribute("data-" + camelToKebab(key))
	return true
}

func (d *datasetAccessor) Keys() []string {
	var keys []string
	for name := range d.node.Attributes {
		if rest, ok := strings.CutPrefix(name, "data-"); ok {
			keys = append(keys, kebabToCamel(rest))
		}
	}
	return keys
}

func argument(call goja.FunctionCall, i int) goja.Value {
	if i < len(call.Arguments) {
		return call.Arguments[i]
	}
	return goja.Undefined()
}

// camelToKebab converts a JS camelCase property name to CSS kebab-case.
func camelToKebab(s string) string {
	if s == "cssFloat" {
		return "float"
	}
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func kebabToCamel(s string) string {
	var sb strings.Builder
	upper := false
	for _, r := range s {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
