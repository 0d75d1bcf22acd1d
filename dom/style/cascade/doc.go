/*
Package cascade executes compiled declarations against an element.

Cascading an element runs in two phases. First, Cascade reads the bytecode
of all declarations matching the element and, for every property, keeps
the value of the declaration with the highest priority (see
Priority.Outranks). Generic keywords (inherit, initial, revert, unset) are
not evaluated yet, but left as deferred markers in the computed style.
Second, Resolve turns the cascaded style into a final style, using the
already resolved style of the parent element: properties nobody declared
and deferred markers are replaced by inherited or initial values.

Both phases dispatch through a fixed table of per-property operations,
see Operations. The table and all compiled code are read-only, so
elements may be cascaded and resolved concurrently, as long as every
element is resolved after its parent.

Initial values which CSS does not define literally (e.g., the default
font family) are requested from a DefaultProvider.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'css.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("css.cascade")
}

// ErrMissingDefault is returned if the default provider has no value for a
// property which needs one.
var ErrMissingDefault = errors.New("no default value for property")

// ErrUnknownProperty is returned for property ids outside the property table.
var ErrUnknownProperty = errors.New("unknown property")
