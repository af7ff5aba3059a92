/*
Package template implements declaration and expansion of markup templates.

A template is declared in a document by an element like

    <template name="item">
        <argument name="label" default="x"/>
        <node id="${label}-box">${label}<slot/></node>
    </template>

and referenced by an element carrying the template's name:

    <item label="hi"><text>projected</text></item>

Expansion works on the markup syntax tree, before any node is constructed.
Every reference stamps out a fresh deep copy of the template body. Caller
attributes bind the declared arguments, falling back to their defaults,
and every ${name} occurrence in attribute values and element text is
replaced by the bound text. Children of the reference are moved into the
<slot/> elements of the copy, matched by their slot attribute.

Templates may reference other templates. A template which directly or
transitively references itself is rejected.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package template

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'udt.template'.
func tracer() tracing.Trace {
	return tracing.Select("udt.template")
}
