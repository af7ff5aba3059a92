package dom

import (
	"github.com/npillmayer/udt/tree"
)

// NodeIsText is a predicate to match text nodes.
// It is intended to be used with tree.DescendentsWith and the like.
var NodeIsText tree.Predicate[*Node] = func(n *tree.Node[*Node]) bool {
	return NodeOf(n).Type == TextType
}

// NodeHasID creates a predicate matching the node with a given id.
func NodeHasID(id string) tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) bool {
		return NodeOf(n).ID == id
	}
}

// NodeHasClass creates a predicate matching nodes of a class.
func NodeHasClass(class string) tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) bool {
		return NodeOf(n).HasClass(class)
	}
}

// NodeHasTag creates a predicate matching nodes carrying a tag.
func NodeHasTag(tag string) tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) bool {
		return NodeOf(n).HasTag(tag)
	}
}

// NodesWith collects the nodes of the subtree below n matching a predicate,
// in document order. n itself is not included.
func NodesWith(n *Node, predicate tree.Predicate[*Node]) []*Node {
	found := tree.DescendentsWith(&n.Node, predicate)
	nodes := make([]*Node, len(found))
	for i, t := range found {
		nodes[i] = NodeOf(t)
	}
	return nodes
}
