/*
Package computed holds computed styles, the per-element result of cascading
and inheritance resolution.

A computed style has one slot per longhand property. Cascading fills slots
with values of declarations that won, or with a deferred marker for the
generic keywords inherit, initial, revert and unset. Inheritance resolution
then replaces every marker and every empty slot by a concrete value. A
finalized style (see Style.IsFinal) has a marker-free value for every
property.

Values form a closed set of types implementing Value: keywords, lengths,
colors, numbers, integers, string lists, counter lists and length pairs.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package computed

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'css.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("css.cascade")
}

// ErrInvalidValue is returned when setting a value a property does not accept.
var ErrInvalidValue = errors.New("value not accepted by property")
