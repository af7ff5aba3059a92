package css

import (
	"strings"

	"github.com/npillmayer/udt/dom"
	"golang.org/x/net/html"
)

// shadow mirrors a node tree into html elements for selector matching.
type shadow struct {
	elements map[*dom.Node]*html.Node
}

func newShadow(root *dom.Node) *shadow {
	s := &shadow{elements: make(map[*dom.Node]*html.Node)}
	s.mirror(root, nil)
	return s
}

func (s *shadow) mirror(n *dom.Node, parent *html.Node) {
	el := &html.Node{
		Type: html.ElementNode,
		Data: strings.ToLower(n.TypeName()),
	}
	if n.ID != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "id", Val: n.ID})
	}
	if len(n.Classes) > 0 {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: strings.Join(n.Classes, " ")})
	}
	if len(n.Tags) > 0 {
		el.Attr = append(el.Attr, html.Attribute{Key: tagsAttr, Val: strings.Join(n.Tags, " ")})
	}
	if parent != nil {
		parent.AppendChild(el)
	}
	s.elements[n] = el
	for _, ch := range n.ChildNodes() {
		s.mirror(ch, el)
	}
}

// element returns the shadow element of a node.
func (s *shadow) element(n *dom.Node) *html.Node {
	return s.elements[n]
}
