/*
Package css resolves the style of every node of a compiled UI tree.

Resolution follows the rules of a CSS cascade, restricted to what our
stylesheets can express. For each node all rules with a matching selector
are collected, ordered by selector specificity and, for equal
specificity, by declaration order. Starting from the default style, the
styles of matching rules are merged property by property, later rules
overriding earlier ones. The inline style of a node is merged last. There
is no inheritance of properties from parent nodes.

Selectors are matched with package cascadia. To do so, the node tree is
mirrored into a tree of html.Node elements: the element name is the
canonical node type name, and id, classes and tags are attributes of the
element. Tag selectors (":tag") are translated to attribute selectors on
the tags attribute, which gives them the specificity of a class selector.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'udt.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("udt.cascade")
}
