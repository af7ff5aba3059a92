/*
Package dom provides the compiled node tree of a UI document.

Nodes

A Node is built from a markup element. It carries an optional identifier,
an ordered set of classes, a set of free-form tags, a value, the inline
style given by its style attribute and, after cascading, its resolved
style. Every node has a node type, looked up by element name in a
Registry. The node type creates a variant record holding the properties
specific to that type, e.g. the wrap mode of text nodes.

Nodes are built on top of the general purpose tree type of package tree.
Go has no sub-classing, so a Node embeds a tree.Node and the tree node's
payload refers back to the embedding node. NodeOf converts a tree node
back to the DOM node.

Attributes

Attributes are applied in document order. For every attribute, a chain of
attribute interpreters is consulted: id, class, tags, value, style, and
finally a reflective interpreter binding the attribute to a property of
the node's variant. The first interpreter claiming the attribute applies
it. Attributes claimed by no interpreter are an error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'udt.dom'.
func tracer() tracing.Trace {
	return tracing.Select("udt.dom")
}
