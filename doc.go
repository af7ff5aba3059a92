/*
Package udt compiles declarative UI documents into node trees with
resolved styles.

A document is written in a markup language with elements, attributes and
text content. It may contain template declarations and a single style
block:

    <udt>
        <template name="item">
            <argument name="label" default="x"/>
            <text class="item">${label}</text>
        </template>
        <style>
            @import "theme";
            .item { color: blue; padding: 2 4; }
        </style>
        <node id="list">
            <item label="hi"/>
        </node>
    </udt>

Compilation runs in stages: lexing, parsing into a markup syntax tree,
parsing the style block, template expansion, building the node tree, and
finally resolving the cascaded style of every node. The first error aborts
the compilation; errors are of type *lexer.Error and carry file name and
position.

A Compiler holds the registries a compilation depends on: node types,
named stylesheets and shared templates. Registries are populated by the
client before compiling. They are not synchronized; populate them before
compiling documents concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package udt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'udt.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("udt.compiler")
}
