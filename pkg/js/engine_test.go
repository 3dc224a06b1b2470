package js

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"scalepage/pkg/html"
)

func parseHTML(t *testing.T, s string) *html.Document {
	t.Helper()
	doc, err := html.Parse(s)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return doc
}

func run(t *testing.T, engine *Engine, doc *html.Document, script string) {
	t.Helper()
	doc.Scripts = append(doc.Scripts, script)
	if err := engine.Execute(doc); err != nil {
		t.Fatal(err)
	}
}

func TestGetElementById(t *testing.T) {
	doc := parseHTML(t, `<div id="foo">hello</div>`)
	run(t, New(), doc, `
		var el = document.getElementById("foo");
		if (el === null) throw new Error("element not found");
		if (el.id !== "foo") throw new Error("wrong id: " + el.id);
		if (el.tagName !== "DIV") throw new Error("wrong tagName: " + el.tagName);
		if (el !== document.querySelector("#foo")) throw new Error("proxy identity lost");
	`)
}

func TestGetElementByIdNotFound(t *testing.T) {
	doc := parseHTML(t, `<div>hello</div>`)
	run(t, New(), doc, `
		var el = document.getElementById("nonexistent");
		if (el !== null) throw new Error("expected null, got: " + el);
	`)
}

func TestQuerySelectorAll(t *testing.T) {
	doc := parseHTML(t, `<p class="a">one</p><p>two</p><div class="a">three</div>`)
	run(t, New(), doc, `
		if (document.querySelectorAll("p").length !== 2) throw new Error("expected 2 p tags");
		if (document.querySelectorAll(".a").length !== 2) throw new Error("expected 2 .a elements");
		if (document.body.querySelector("div.a").textContent !== "three") throw new Error("wrong div");
	`)
}

func TestDocumentProperties(t *testing.T) {
	doc := parseHTML(t, `<p>text</p>`)
	run(t, New(), doc, `
		if (document.body.tagName !== "BODY") throw new Error("body: " + document.body.tagName);
		if (document.documentElement.tagName !== "HTML") throw new Error("documentElement");
		if (document.body.parentElement !== document.documentElement) throw new Error("parentElement");
		if (document.documentElement.parentElement !== null) throw new Error("html has no parent element");
	`)
}

func TestSetTextContent(t *testing.T) {
	doc := parseHTML(t, `<p id="target">original</p>`)
	run(t, New(), doc, `document.getElementById("target").textContent = "changed";`)

	node := doc.Query("#target")
	if node == nil {
		t.Fatal("target not found")
	}
	if got := node.TextContent(); got != "changed" {
		t.Errorf("textContent = %q, want %q", got, "changed")
	}
}

func TestSetStyleCamelCase(t *testing.T) {
	doc := parseHTML(t, `<div id="box" style="color: red">box</div>`)
	run(t, New(), doc, `
		var el = document.getElementById("box");
		el.style.color = "blue";
		el.style.backgroundColor = "yellow";
		el.style.marginLeft = 20;
		if (el.style.fontSize !== "") throw new Error("unset property should read empty");
	`)

	node := doc.Query("#box")
	want := map[string]string{
		"color":            "blue",
		"background-color": "yellow",
		"margin-left":      "20px",
	}
	for prop, v := range want {
		if got := node.Style(prop); got != v {
			t.Errorf("%s = %q, want %q", prop, got, v)
		}
	}
}

func TestDeleteStyleProperty(t *testing.T) {
	doc := parseHTML(t, `<div id="box" style="width: 10px">box</div>`)
	run(t, New(), doc, `delete document.getElementById("box").style.width;`)

	if _, ok := doc.Query("#box").GetAttribute("style"); ok {
		t.Error("style attribute should be removed once empty")
	}
}

func TestAttributes(t *testing.T) {
	doc := parseHTML(t, `<div id="target" data-x="hello" class="old">text</div>`)
	run(t, New(), doc, `
		var el = document.getElementById("target");
		if (el.getAttribute("data-x") !== "hello") throw new Error("getAttribute");
		if (el.getAttribute("missing") !== null) throw new Error("missing attribute should be null");
		el.setAttribute("data-value", "42");
		el.removeAttribute("data-x");
		el.className = "new-class";
		if (el.hasAttribute("data-x")) throw new Error("data-x not removed");
	`)

	node := doc.Query("#target")
	if v, _ := node.GetAttribute("data-value"); v != "42" {
		t.Errorf("data-value = %q, want %q", v, "42")
	}
	if v, _ := node.GetAttribute("class"); v != "new-class" {
		t.Errorf("class = %q, want %q", v, "new-class")
	}
}

func TestDataset(t *testing.T) {
	doc := parseHTML(t, `<div id="target" data-scale-factor="0.5">text</div>`)
	run(t, New(), doc, `
		var el = document.getElementById("target");
		if (el.dataset.scaleFactor !== "0.5") throw new Error("dataset: " + el.dataset.scaleFactor);
		el.dataset.baseWidth = "500";
	`)

	if v, _ := doc.Query("#target").Data("base-width"); v != "500" {
		t.Errorf("data-base-width = %q, want %q", v, "500")
	}
}

func TestAppendChild(t *testing.T) {
	doc := parseHTML(t, `<div id="parent"><span>a</span></div>`)
	run(t, New(), doc, `
		var parent = document.getElementById("parent");
		var b = document.createElement("SPAN");
		b.textContent = "b";
		parent.appendChild(b);
		var kids = parent.children;
		if (kids.length !== 2) throw new Error("expected 2 children, got: " + kids.length);
		if (kids[1] !== b) throw new Error("appended child identity");
		parent.removeChild(kids[0]);
	`)

	if got := doc.Query("#parent").TextContent(); got != "b" {
		t.Errorf("textContent = %q, want %q", got, "b")
	}
}

func TestScriptError(t *testing.T) {
	doc := parseHTML(t, `<p>text</p>`)
	doc.Scripts = append(doc.Scripts, `throw new Error("test error");`)
	if err := New().Execute(doc); err == nil {
		t.Fatal("expected error from script")
	}
}

func TestConsoleLogsThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	engine := New()
	engine.SetLogger(zerolog.New(&buf))
	run(t, engine, parseHTML(t, `<p>text</p>`), `console.warn("scale", 0.5);`)

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "scale 0.5") {
		t.Errorf("log output = %q", out)
	}
}

func TestCamelToKebab(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"color", "color"},
		{"backgroundColor", "background-color"},
		{"transformOrigin", "transform-origin"},
		{"minWidth", "min-width"},
		{"overflowX", "overflow-x"},
		{"cssFloat", "float"},
	}
	for _, tt := range tests {
		if got := camelToKebab(tt.input); got != tt.want {
			t.Errorf("camelToKebab(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if tt.input != "cssFloat" {
			if got := kebabToCamel(tt.want); got != tt.input {
				t.Errorf("kebabToCamel(%q) = %q, want %q", tt.want, got, tt.input)
			}
		}
	}
}
