package html

import "strings"

// selectorPart is one compound selector: tag, #id and any number of .class.
type selectorPart struct {
	tag     string
	id      string
	classes []string
}

func parseSelectorPart(s string) selectorPart {
	var p selectorPart
	// Split on the # and . markers while keeping which marker preceded
	// each token.
	marker := byte(0)
	start := 0
	flush := func(end int) {
		tok := s[start:end]
		if tok == "" {
			return
		}
		switch marker {
		case '#':
			p.id = tok
		case '.':
			p.classes = append(p.classes, tok)
		default:
			p.tag = strings.ToLower(tok)
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '#' || s[i] == '.' {
			flush(i)
			marker = s[i]
			start = i + 1
		}
	}
	flush(len(s))
	return p
}

func (p selectorPart) matches(n *Node) bool {
	if n.Type != ElementNode {
		return false
	}
	if p.tag != "" && p.tag != "*" && n.TagName != p.tag {
		return false
	}
	if p.id != "" {
		if id, _ := n.GetAttribute("id"); id != p.id {
			return false
		}
	}
	for _, c := range p.classes {
		if !n.HasClass(c) {
			return false
		}
	}
	return true
}

// matchesChain matches parts right to left, treating whitespace between
// parts as the descendant combinator.
func matchesChain(n *Node, parts []selectorPart) bool {
	last := len(parts) - 1
	if !parts[last].matches(n) {
		return false
	}
	if last == 0 {
		return true
	}
	for a := n.Parent; a != nil; a = a.Parent {
		if matchesChain(a, parts[:last]) {
			return true
		}
	}
	return false
}

// Query returns the first element in document order under root matching
// selector, or nil. Supported selectors are tag, #id, .class, their
// compounds, and descendant chains of those.
func Query(root *Node, selector string) *Node {
	all := QueryAll(root, selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func QueryAll(root *Node, selector string) []*Node {
	fields := strings.Fields(selector)
	if root == nil || len(fields) == 0 {
		return nil
	}
	parts := make([]selectorPart, len(fields))
	for i, f := range fields {
		parts[i] = parseSelectorPart(f)
	}
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if matchesChain(n, parts) {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

func (d *Document) Query(selector string) *Node {
	return Query(d.Root, selector)
}
