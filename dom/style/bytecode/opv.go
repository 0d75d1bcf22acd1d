package bytecode

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Opcode identifies a CSS property. Opcodes are a dense enumeration in
// the range [0, MaxOpcode].
type Opcode uint16

// Flags of an instruction word. Bit 0 is the importance bit, bits 1–3 carry
// a FlagValue.
type Flags uint8

// FlagImportant marks an instruction as originating from an !important
// declaration.
const FlagImportant Flags = 0x01

// FlagValue is a generic keyword which replaces a property's value grammar.
type FlagValue uint8

// Generic keywords. FlagValueNone denotes an ordinary value.
const (
	FlagValueNone FlagValue = iota
	FlagValueInherit
	FlagValueInitial
	FlagValueRevert
	FlagValueUnset
)

var flagValueNames = [...]string{"none", "inherit", "initial", "revert", "unset"}

func (fv FlagValue) String() string {
	if int(fv) < len(flagValueNames) {
		return flagValueNames[fv]
	}
	return fmt.Sprintf("flag(%d)", uint8(fv))
}

// FlagValueFromKeyword returns the generic keyword for an identifier, or
// FlagValueNone.
func FlagValueFromKeyword(ident string) FlagValue {
	switch ident {
	case "inherit":
		return FlagValueInherit
	case "initial":
		return FlagValueInitial
	case "revert":
		return FlagValueRevert
	case "unset":
		return FlagValueUnset
	}
	return FlagValueNone
}

// MakeFlags assembles the flags field of an instruction.
func MakeFlags(important bool, fv FlagValue) Flags {
	f := Flags(fv&0x7) << 1
	if important {
		f |= FlagImportant
	}
	return f
}

// Bit widths of the instruction fields.
const (
	OpcodeBits = 10
	FlagsBits  = 8
	ValueBits  = 14

	MaxOpcode = 1<<OpcodeBits - 1
	MaxValue  = 1<<ValueBits - 1
)

// OPV is an instruction word: opcode, flags and value tag packed into 32 bits.
type OPV uint32

// Encode packs an instruction word. Fields wider than their bit widths are
// a programming error of the caller; with build tag 'cssdebug' they panic,
// otherwise they are truncated.
func Encode(op Opcode, flags Flags, value uint16) OPV {
	debugAssert(op <= MaxOpcode, "opcode %d exceeds %d bits", op, OpcodeBits)
	debugAssert(value <= MaxValue, "value %#x exceeds %d bits", value, ValueBits)
	return OPV(uint32(op)&MaxOpcode |
		uint32(flags)<<OpcodeBits |
		(uint32(value)&MaxValue)<<(OpcodeBits+FlagsBits))
}

// Decode unpacks an instruction word.
func (opv OPV) Decode() (Opcode, Flags, uint16) {
	return opv.Opcode(), opv.Flags(), opv.Value()
}

// Opcode returns the property identifier of an instruction.
func (opv OPV) Opcode() Opcode {
	return Opcode(uint32(opv) & MaxOpcode)
}

// Flags returns the flags field of an instruction.
func (opv OPV) Flags() Flags {
	return Flags(uint32(opv) >> OpcodeBits)
}

// Value returns the value tag of an instruction.
func (opv OPV) Value() uint16 {
	return uint16(uint32(opv) >> (OpcodeBits + FlagsBits))
}

// IsImportant is true for instructions compiled from !important declarations.
func (opv OPV) IsImportant() bool {
	return opv.Flags()&FlagImportant != 0
}

// FlagValue returns the generic keyword of an instruction.
func (opv OPV) FlagValue() FlagValue {
	return FlagValue((opv.Flags() >> 1) & 0x7)
}

// HasFlagValue is true if an instruction carries a generic keyword instead
// of a value.
func (opv OPV) HasFlagValue() bool {
	return opv.FlagValue() != FlagValueNone
}

// IsInherit is true for instructions carrying 'inherit'.
func (opv OPV) IsInherit() bool {
	return opv.FlagValue() == FlagValueInherit
}

func (opv OPV) String() string {
	op, _, v := opv.Decode()
	s := fmt.Sprintf("OPV(op=%d v=%#x", op, v)
	if opv.HasFlagValue() {
		s += " " + opv.FlagValue().String()
	}
	if opv.IsImportant() {
		s += " !important"
	}
	return s + ")"
}
