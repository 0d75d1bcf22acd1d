/*
Package compile translates CSS declaration values into bytecode.

There is one compiler per property value family (keywords, lengths and
percentages, colors, numbers, lists, counters) and one per shorthand kind
(four sides, border sides). A Compiler reads tokens from a TokenStream and
stages instructions in a bytecode.Builder. Compilation of a declaration is
all-or-nothing: if a value is rejected, the token stream is reset to where
it started and the builder is truncated to its previous length.

The generic keywords inherit, initial, revert and unset are recognized
before any property grammar is tried. They compile to a single instruction
per longhand, carrying the keyword in its flags and no operands. A trailing
'!important' sets the importance flag of every instruction of a
declaration.

Tokenizing is done by the CSS3 lexer of github.com/tdewolff/parse.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compile

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'css.compile'.
func tracer() tracing.Trace {
	return tracing.Select("css.compile")
}

// ErrCompileReject is the error class of declarations which could not be
// compiled. Rejected declarations are dropped by callers.
var ErrCompileReject = errors.New("declaration rejected")

// RejectError describes a rejected declaration.
type RejectError struct {
	Property string // property name as written
	Pos      int    // token position of the offending token
	Reason   string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("%s: %v at token %d: %s", e.Property, ErrCompileReject, e.Pos, e.Reason)
}

// Unwrap makes errors.Is(err, ErrCompileReject) hold.
func (e *RejectError) Unwrap() error {
	return ErrCompileReject
}
