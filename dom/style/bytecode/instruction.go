package bytecode

import (
	"fmt"
	"strings"
)

// Instruction is a decoded instruction word together with its operands.
type Instruction struct {
	OPV      OPV
	Operands []uint32
}

// ReadInstruction reads the next instruction and its operands. The operand
// layout is derived from the value tag, see the value tag constants.
func ReadInstruction(c *Cursor) (Instruction, error) {
	opv, err := c.ReadOPV()
	if err != nil {
		return Instruction{}, err
	}
	instr := Instruction{OPV: opv}
	if opv.HasFlagValue() {
		return instr, nil
	}
	var n int
	switch tag := opv.Value(); {
	case IsKeywordTag(tag):
		return instr, nil
	case tag == ValueLength:
		n = 2
	case tag == ValueColor, tag == ValueNumber, tag == ValueInteger:
		n = 1
	case tag == ValueLengthPair:
		n = 4
	case tag == ValueList:
		return instr, readTerminated(c, &instr, 1)
	case tag == ValueCounters:
		return instr, readTerminated(c, &instr, 2)
	default:
		return instr, fmt.Errorf("%w: unknown value tag %#x at offset %d", ErrMalformedBytecode, tag, c.Pos()-4)
	}
	for i := 0; i < n; i++ {
		w, err := c.ReadUint32()
		if err != nil {
			return instr, err
		}
		instr.Operands = append(instr.Operands, w)
	}
	return instr, nil
}

// readTerminated reads groups of stride words until a NoString sentinel.
// The sentinel is not part of the operands.
func readTerminated(c *Cursor, instr *Instruction, stride int) error {
	for {
		w, err := c.ReadUint32()
		if err != nil {
			return err
		}
		if StringRef(w) == NoString {
			return nil
		}
		instr.Operands = append(instr.Operands, w)
		for i := 1; i < stride; i++ {
			if w, err = c.ReadUint32(); err != nil {
				return err
			}
			instr.Operands = append(instr.Operands, w)
		}
	}
}

// Disassemble decodes all instructions of a block.
func Disassemble(blk Block) ([]Instruction, error) {
	var code []Instruction
	c := blk.Cursor()
	for !c.AtEnd() {
		instr, err := ReadInstruction(c)
		if err != nil {
			return code, err
		}
		code = append(code, instr)
	}
	return code, nil
}

func (instr Instruction) String() string {
	if len(instr.Operands) == 0 {
		return instr.OPV.String()
	}
	ops := make([]string, len(instr.Operands))
	for i, w := range instr.Operands {
		ops[i] = fmt.Sprintf("%#x", w)
	}
	return instr.OPV.String() + " " + strings.Join(ops, " ")
}
