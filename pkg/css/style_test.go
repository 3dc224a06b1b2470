package css

import (
	"testing"
)

func TestParseInlineStyle_SingleProperty(t *testing.T) {
	style := ParseInlineStyle("color: red")
	value, ok := style.Get("color")
	if !ok || value != "red" {
		t.Error("expected color='red'")
	}
}

func TestParseInlineStyle_MultipleProperties(t *testing.T) {
	style := ParseInlineStyle("color: red; width: 100px")
	color, _ := style.Get("color")
	width, _ := style.Get("width")
	if color != "red" || width != "100px" {
		t.Error("expected both properties to parse")
	}
}

func TestParseInlineStyle_Malformed(t *testing.T) {
	style := ParseInlineStyle(" ; nocolon ; :novalue ; WIDTH : 10px ;")
	if style.Len() != 1 {
		t.Fatalf("expected 1 declaration, got %d (%q)", style.Len(), style.String())
	}
	if w, _ := style.Get("width"); w != "10px" {
		t.Errorf("width = %q, want %q", w, "10px")
	}
}

func TestStyleSetKeepsOrder(t *testing.T) {
	style := ParseInlineStyle("margin-left: 4px; color: red")
	style.Set("transform", "scale(2, 2)")
	style.Set("margin-left", "75px")
	got := style.String()
	want := "margin-left: 75px; color: red; transform: scale(2, 2)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStyleSetEmptyRemoves(t *testing.T) {
	style := ParseInlineStyle("width: 500px; height: 400px")
	style.Set("width", "")
	if _, ok := style.Get("width"); ok {
		t.Error("width should have been removed")
	}
	if style.Remove("width") {
		t.Error("second Remove should report false")
	}
	if got := style.String(); got != "height: 400px" {
		t.Errorf("String() = %q", got)
	}
}

func TestGetLength_PixelValue(t *testing.T) {
	style := ParseInlineStyle("width: 100px")
	width, ok := style.GetLength("width")
	if !ok || width != 100.0 {
		t.Errorf("expected width=100.0, got %f", width)
	}
}

func TestFormatLength(t *testing.T) {
	tests := map[float64]string{
		75:    "75px",
		0:     "0px",
		-12.5: "-12.5px",
		0.125: "0.125px",
	}
	for in, want := range tests {
		if got := FormatLength(in); got != want {
			t.Errorf("FormatLength(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestGetMargin(t *testing.T) {
	m := ParseInlineStyle("margin-left: 75px; margin-top: auto").GetMargin()
	if m.Left != 75 || m.Top != 0 {
		t.Errorf("margin = %+v", m)
	}
}

func TestParseColor(t *testing.T) {
	tests := map[string]string{
		"red":     "#ff0000",
		" Navy ":  "#000080",
		"#4a90d9": "#4a90d9",
		"#fff":    "#ffffff",
	}
	for in, want := range tests {
		c, ok := ParseColor(in)
		if !ok {
			t.Errorf("ParseColor(%q) failed", in)
			continue
		}
		if c.Hex() != want {
			t.Errorf("ParseColor(%q) = %s, want %s", in, c.Hex(), want)
		}
	}
	if _, ok := ParseColor("not-a-color"); ok {
		t.Error("expected unknown color to fail")
	}
}
