/*
Package style defines the style record of compiled nodes and the value
types of style properties.

The set of style properties is closed. Every property of a Style is an
option value: unset properties do not take part in overriding when styles
are merged. Property names are bound through a descriptor table
(Properties), which is used by stylesheet parsers and by inline style
attributes alike.

Compound values with four edges (colors, insets) are distributed from one,
two or four given values:

    1 value:   all edges
    2 values:  top/bottom, right/left
    4 values:  top, right, bottom, left

Three values are rejected, as are more than four.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'udt.style'.
func tracer() tracing.Trace {
	return tracing.Select("udt.style")
}
