package html

import (
	"sort"
	"strings"
)

type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
}

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Document is a parsed page. Root is a synthetic "document" node holding
// the <html> element; Scripts holds the text of every <script> in order.
type Document struct {
	Root    *Node
	Scripts []string
}

// NewDocument returns an empty page with html, head and body elements.
func NewDocument() *Document {
	doc := &Document{Root: NewElement("document")}
	root := NewElement("html")
	root.AddChild(NewElement("head"))
	root.AddChild(NewElement("body"))
	doc.Root.AddChild(root)
	return doc
}

func NewElement(tag string) *Node {
	return &Node{
		Type:       ElementNode,
		TagName:    tag,
		Attributes: make(map[string]string),
	}
}

// Body returns the <body> element, or nil if the document has none.
func (d *Document) Body() *Node {
	return d.Query("body")
}

// DocumentElement returns the <html> element, or nil.
func (d *Document) DocumentElement() *Node {
	for _, c := range d.Root.Children {
		if c.Type == ElementNode && c.TagName == "html" {
			return c
		}
	}
	return nil
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

func (n *Node) RemoveAttribute(name string) {
	delete(n.Attributes, name)
}

// HasClass reports whether cls is one of the node's classes.
func (n *Node) HasClass(cls string) bool {
	classes, _ := n.GetAttribute("class")
	for _, c := range strings.Fields(classes) {
		if c == cls {
			return true
		}
	}
	return false
}

// AddChild adds a child node and sets up the parent relationship
func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText creates a text node and adds it as a child
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.AddChild(&Node{Type: TextNode, Text: text})
}

// RemoveChild detaches child and returns it, or nil if it is not a child.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return child
		}
	}
	return nil
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Text
	}
	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.TextContent())
	}
	return sb.String()
}

// SetTextContent replaces all children with a single text node.
func (n *Node) SetTextContent(text string) {
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = nil
	n.AppendText(text)
}

// SerializeOuter returns the outerHTML of this node.
func (n *Node) SerializeOuter() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	if n.Type == TextNode {
		sb.WriteString(escapeHTML(n.Text))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.TagName)
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(" " + k + `="` + escapeAttr(n.Attributes[k]) + `"`)
	}
	sb.WriteByte('>')
	if isVoidElement(n.TagName) {
		return
	}
	for _, child := range n.Children {
		serializeNode(sb, child)
	}
	sb.WriteString("</" + n.TagName + ">")
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
)

func escapeHTML(s string) string { return textEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }

func isVoidElement(tag string) bool {
	switch tag {
	case "br", "hr", "img", "input", "meta", "link", "area", "base",
		"col", "embed", "param", "source", "track", "wbr":
		return true
	}
	return false
}
