/*
Package expr implements the literal expression language of attribute values.

Expressions are scalars (strings in single quotes, integers, unsigned
hexadecimal integers, floats, booleans and bare identifiers), arrays

    [1, 2, [3, 4]]

and maps

    {a: 1, 'b c': 'x'}

There is no arithmetic, no branching and there are no function calls.

Before tokenizing, placeholders of the form ${name} are replaced textually
by the values given by the caller. Placeholder names are matched
case-insensitively.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'udt.expr'.
func tracer() tracing.Trace {
	return tracing.Select("udt.expr")
}
