/*
Package binding resolves textual property names to typed property
descriptors and converts raw values to the properties' types.

Every bindable object type (node variants, the style record) declares a
Table of descriptors once, at registration time. A descriptor bundles a
getter, an optional setter, the declared kind of the property and a
converter from expression values. Lookups are case-insensitive and ignore
hyphens, so "max-lines", "maxLines" and "MAXLINES" denote the same
property.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package binding

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'udt.dom'.
func tracer() tracing.Trace {
	return tracing.Select("udt.dom")
}
