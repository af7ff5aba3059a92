/*
Package cssom provides the stylesheet object model: stylesheets as ordered
lists of rules, a parser for style blocks, and a registry of named
stylesheets available for import.

Stylesheets

A stylesheet consists of import statements and selector blocks:

    @import "common";

    .box {
        color: red;
        size: 100 50%;
        &:hover { color: blue; }     // same element: ".box:hover"
        text { font-size: 12; }      // descendant:   ".box text"
    }

Selectors are sequences of simple selectors: a type name, #id, .class
and :tag, where :tag matches a node carrying a free-form tag. Whitespace
between simple selectors denotes a descendant relationship. Nested blocks
introduced with '&' refine the enclosing selector, all other nested blocks
select descendants.

Importing a stylesheet appends its rules after the rules already present,
so later rules override earlier ones of equal specificity.

Property values

Each declaration resolves its property name against the descriptor table
of package style. The value tokens are then handed to a chain of typed
interpreters, tried in a fixed order; the first interpreter claiming the
property's kind converts the value.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'udt.style'.
func tracer() tracing.Trace {
	return tracing.Select("udt.style")
}
