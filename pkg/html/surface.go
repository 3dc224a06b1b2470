package html

import (
	"scalepage/pkg/css"
	"scalepage/pkg/scale"
)

// InlineStyle parses the node's style attribute.
func (n *Node) InlineStyle() *css.Style {
	attr, _ := n.GetAttribute("style")
	return css.ParseInlineStyle(attr)
}

// Style returns the inline value of prop, or "" when it is not set.
func (n *Node) Style(prop string) string {
	v, _ := n.InlineStyle().Get(prop)
	return v
}

// SetStyle writes prop into the style attribute; an empty value removes it.
func (n *Node) SetStyle(prop, value string) {
	style := n.InlineStyle()
	style.Set(prop, value)
	if style.Len() == 0 {
		n.RemoveAttribute("style")
		return
	}
	n.SetAttribute("style", style.String())
}

// SetData stores value in the data-<key> attribute.
func (n *Node) SetData(key, value string) {
	n.SetAttribute("data-"+key, value)
}

func (n *Node) Data(key string) (string, bool) {
	return n.GetAttribute("data-" + key)
}

// Size returns the element's box size from, in order of preference, its
// inline width/height, its inline min-width/min-height, and its width and
// height attributes. Unknown dimensions are zero.
func (n *Node) Size() scale.Size {
	style := n.InlineStyle()
	return scale.Size{
		Width:  n.dimension(style, "width"),
		Height: n.dimension(style, "height"),
	}
}

func (n *Node) dimension(style *css.Style, prop string) float64 {
	if v, ok := style.GetLength(prop); ok {
		return v
	}
	if v, ok := style.GetLength("min-" + prop); ok {
		return v
	}
	if attr, ok := n.GetAttribute(prop); ok {
		if v, ok := css.ParseLength(attr); ok {
			return v
		}
	}
	return 0
}

var _ scale.Surface = (*Node)(nil)
