package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/udt/dom/style"
	"github.com/npillmayer/udt/expr"
	"github.com/npillmayer/udt/lexer"
	"github.com/npillmayer/udt/tree"
)

// Node is a node of the compiled UI tree.
type Node struct {
	tree.Node[*Node]            // we build on top of general purpose tree
	Type             NodeType   // node type, never nil
	Element          string     // element name as written
	ID               string     // optional, unique within a document
	Classes          []string   // ordered set of class names
	Tags             []string   // set of free-form tags
	Value            expr.Value // absent if not set
	Variant          any        // variant record created by the node type
	Inline           *style.Style
	Style            *style.Style // resolved style, set by the cascade
	File             string
	Pos              lexer.Pos
}

// NewNode creates a node of type t.
func NewNode(t NodeType) *Node {
	n := &Node{Type: t, Variant: t.New()}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NodeOf gets the DOM node from a generic tree node.
func NodeOf(t *tree.Node[*Node]) *Node {
	if t == nil {
		return nil
	}
	return t.Payload
}

// TypeName returns the canonical name of the node's type.
func (n *Node) TypeName() string {
	return n.Type.Name()
}

// ParentNode returns the parent, or nil for the root.
func (n *Node) ParentNode() *Node {
	return NodeOf(n.Parent())
}

// ChildNodes returns the children of n in order.
func (n *Node) ChildNodes() []*Node {
	children := n.Children()
	nodes := make([]*Node, len(children))
	for i, ch := range children {
		nodes[i] = ch.Payload
	}
	return nodes
}

// AppendChild adds ch as the last child of n, moving it out of its
// former parent, if any.
func (n *Node) AppendChild(ch *Node) *Node {
	n.AddChild(&ch.Node)
	return n
}

// HasClass tells if a class name is in the node's class set.
func (n *Node) HasClass(class string) bool {
	return contains(n.Classes, class)
}

// AddClass adds a class name, keeping the set ordered by first occurrence.
func (n *Node) AddClass(class string) {
	if !contains(n.Classes, class) {
		n.Classes = append(n.Classes, class)
	}
}

// HasTag tells if a tag is in the node's tag set.
func (n *Node) HasTag(tag string) bool {
	return contains(n.Tags, tag)
}

// AddTag adds a tag to the node's tag set.
func (n *Node) AddTag(tag string) {
	if !contains(n.Tags, tag) {
		n.Tags = append(n.Tags, tag)
	}
}

func contains(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}

// VariantOf returns the variant record of a node if it is of type *V.
func VariantOf[V any](n *Node) (*V, bool) {
	v, ok := n.Variant.(*V)
	return v, ok
}

// Lookup finds the node with a given id in the subtree rooted at n.
func (n *Node) Lookup(id string) *Node {
	if n == nil || id == "" {
		return nil
	}
	if n.ID == id {
		return n
	}
	if found := tree.DescendentsWith(&n.Node, NodeHasID(id)); len(found) > 0 {
		return NodeOf(found[0])
	}
	return nil
}

// Walk visits n and all of its descendants top-down.
func (n *Node) Walk(f func(node *Node, depth int) error) error {
	return tree.TopDown(&n.Node, func(t *tree.Node[*Node], depth int) error {
		return f(t.Payload, depth)
	})
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString(n.TypeName())
	if n.ID != "" {
		b.WriteByte('#')
		b.WriteString(n.ID)
	}
	for _, c := range n.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	for _, t := range n.Tags {
		b.WriteByte(':')
		b.WriteString(t)
	}
	if !n.Value.IsAbsent() {
		fmt.Fprintf(&b, " = %s", n.Value)
	}
	return b.String()
}
