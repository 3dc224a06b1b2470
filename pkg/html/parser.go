package html

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Parse builds a Document from HTML source. Comments and doctypes are
// dropped; <script> elements are moved into Document.Scripts.
func Parse(src string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	doc := &Document{Root: NewElement("document")}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		convert(doc, doc.Root, c)
	}
	return doc, nil
}

func convert(doc *Document, parent *Node, src *html.Node) {
	switch src.Type {
	case html.TextNode:
		parent.AppendText(src.Data)
	case html.ElementNode:
		tag := strings.ToLower(src.Data)
		if tag == "script" {
			var sb strings.Builder
			for c := src.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			if s := strings.TrimSpace(sb.String()); s != "" {
				doc.Scripts = append(doc.Scripts, s)
			}
			return
		}
		node := NewElement(tag)
		for _, a := range src.Attr {
			node.Attributes[a.Key] = a.Val
		}
		parent.AddChild(node)
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			convert(doc, node, c)
		}
	}
}
