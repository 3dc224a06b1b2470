package html

import "scalepage/pkg/scale"

// OverlayClass marks the single element that holds diagnostics output.
const OverlayClass = "scale-info"

// Overlay renders diagnostics into a div.scale-info under <body>, creating
// the div on first use and replacing its content afterwards.
type Overlay struct {
	doc *Document
}

func NewOverlay(doc *Document) *Overlay {
	return &Overlay{doc: doc}
}

func (o *Overlay) Show(r scale.Report) {
	slot := o.slot()
	if slot == nil {
		return
	}
	slot.SetTextContent("")
	for i, line := range r.Lines() {
		if i > 0 {
			slot.AddChild(NewElement("br"))
		}
		slot.AppendText(line)
	}
}

func (o *Overlay) slot() *Node {
	if n := o.doc.Query("." + OverlayClass); n != nil {
		return n
	}
	body := o.doc.Body()
	if body == nil {
		return nil
	}
	div := NewElement("div")
	div.SetAttribute("class", OverlayClass)
	body.AddChild(div)
	return div
}

var _ scale.Overlay = (*Overlay)(nil)
