/*
Package markup parses UDT documents into a syntax tree of elements.

A document is a sequence of elements, optionally enclosed in a document
element:

    <udt>
      <style> .box { color: red; } </style>
      <template name="item">
        <argument name="label" default="x"/>
        <text value="${label}"/>
      </template>
      <node class="box"><item label="hi"/></node>
    </udt>

The parser is purely syntactic. It neither resolves element names nor
interprets attribute values, with one exception: the contents of the style
element are captured as a token sequence for the stylesheet parser.
Template declarations are collected separately from the root element.

At most one style element and at most one root element are allowed.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'udt.markup'.
func tracer() tracing.Trace {
	return tracing.Select("udt.markup")
}
