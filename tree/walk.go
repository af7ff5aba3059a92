package tree

import "errors"

// SkipChildren may be returned by an Action to prevent descending into
// the children of the current node.
var SkipChildren = errors.New("skip children")

// Action is called for nodes visited during a walk. Walks stop at the first
// error other than SkipChildren.
type Action[T comparable] func(node *Node[T], depth int) error

// TopDown walks the subtree rooted at node depth-first, visiting parents
// before their children and children in order.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	return topDown(node, 0, action)
}

func topDown[T comparable](node *Node[T], depth int, action Action[T]) error {
	if node == nil {
		return nil
	}
	if err := action(node, depth); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, ch := range node.Children() {
		if err := topDown(ch, depth+1, action); err != nil {
			return err
		}
	}
	return nil
}

// BottomUp walks the subtree rooted at node depth-first, visiting children
// before their parents.
func BottomUp[T comparable](node *Node[T], action Action[T]) error {
	return bottomUp(node, 0, action)
}

func bottomUp[T comparable](node *Node[T], depth int, action Action[T]) error {
	if node == nil {
		return nil
	}
	for _, ch := range node.Children() {
		if err := bottomUp(ch, depth+1, action); err != nil {
			return err
		}
	}
	return action(node, depth)
}

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(*Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(n *Node[T]) bool {
		return n.ChildCount() == 0
	}
}

// DescendentsWith finds descendents matching a predicate, in document order.
// The search does not include the start node.
func DescendentsWith[T comparable](node *Node[T], predicate Predicate[T]) []*Node[T] {
	var found []*Node[T]
	TopDown(node, func(n *Node[T], depth int) error {
		if depth > 0 && predicate(n) {
			found = append(found, n)
		}
		return nil
	})
	return found
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for p := node.parent; p != nil; p = p.parent {
		if predicate(p) {
			return p
		}
	}
	return nil
}
