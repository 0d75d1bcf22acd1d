/*
Package bytecode implements the compact binary encoding of CSS declarations.

Overview

A declaration such as

    margin-top: 12px !important

is compiled into an instruction word (an OPV: opcode, flags, value tag)
followed by zero or more 32-bit operand words. The operand layout of an
instruction is fully determined by its opcode and value tag; operands are
never self-describing.

    31            18 17      10 9        0
    +---------------+----------+----------+
    |  value (14)   | flags(8) | opcode   |
    +---------------+----------+----------+

Flags bit 0 marks a declaration as !important, bits 1–3 hold a generic
keyword (inherit, initial, revert, unset). An instruction carrying a
generic keyword has no operands.

Compiled code lives in a Buffer, which grows append-then-commit: compilers
stage their output in a Builder and either commit it as a whole or discard
it. Once sealed, a buffer is read-only and may be shared between goroutines.
Readers use a Cursor, which checks the remaining size before every operand
read and reports ErrMalformedBytecode instead of reading past the end.

Strings (font families, quotes, counter names) are interned into a
StringTable and referenced by index.

Status

Compiling with build tag 'cssdebug' enables assertions for out-of-range
instruction fields.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bytecode

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'css.bytecode'.
func tracer() tracing.Trace {
	return tracing.Select("css.bytecode")
}

// ErrMalformedBytecode is returned if a reader requests an operand which
// the bytecode does not contain.
var ErrMalformedBytecode = errors.New("malformed bytecode")

// ErrOutOfMemory is returned if committing code would grow a buffer beyond
// its limit.
var ErrOutOfMemory = errors.New("bytecode buffer exhausted")

// ErrSealed is returned when trying to append to a sealed buffer.
var ErrSealed = errors.New("bytecode buffer is sealed")
