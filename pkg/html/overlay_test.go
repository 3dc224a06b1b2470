package html

import (
	"testing"

	"scalepage/pkg/scale"
)

func TestOverlayReplacesContent(t *testing.T) {
	doc := NewDocument()
	o := NewOverlay(doc)

	o.Show(scale.Report{Viewport: scale.Size{Width: 800, Height: 600}, Scale: 1.5})
	o.Show(scale.Report{Viewport: scale.Size{Width: 400, Height: 300}, Scale: 0.75, Mode: scale.Width})

	slots := QueryAll(doc.Root, "."+OverlayClass)
	if len(slots) != 1 {
		t.Fatalf("expected exactly one overlay slot, got %d", len(slots))
	}
	slot := slots[0]
	if slot.Parent != doc.Body() {
		t.Error("overlay should live under body")
	}

	var brs int
	for _, c := range slot.Children {
		if c.TagName == "br" {
			brs++
		}
	}
	if brs != 4 {
		t.Errorf("expected 4 line breaks, got %d", brs)
	}
	want := "window => 400 x 300" +
		"container => 0 x 0" +
		"screen => 0 x 0" +
		"scale => 0.75" +
		"scaleBy => width"
	if got := slot.TextContent(); got != want {
		t.Errorf("overlay text = %q, want %q", got, want)
	}
}

func TestOverlayReusesExistingSlot(t *testing.T) {
	doc, err := Parse(`<body><div id="info" class="scale-info">old</div></body>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	NewOverlay(doc).Show(scale.Report{Scale: 1})
	info := doc.Query("#info")
	if info.TextContent() == "old" {
		t.Error("existing slot should be overwritten")
	}
	if len(QueryAll(doc.Root, ".scale-info")) != 1 {
		t.Error("no second slot should be created")
	}
}
