package bytecode

import (
	"encoding/binary"
	"fmt"
)

// Cursor reads code front to back. Every read checks the remaining size;
// a cursor never reads past the end of its code and never moves backwards.
type Cursor struct {
	code []byte
	pos  int
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.code) - c.pos
}

// AtEnd is true if all code has been read.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.code)
}

// ReadUint32 reads a raw operand word.
func (c *Cursor) ReadUint32() (uint32, error) {
	if c.pos+4 > len(c.code) {
		err := fmt.Errorf("%w: need 4 bytes at offset %d, have %d",
			ErrMalformedBytecode, c.pos, c.Remaining())
		if debugAssertions {
			panic(err.Error())
		}
		return 0, err
	}
	w := binary.LittleEndian.Uint32(c.code[c.pos:])
	c.pos += 4
	return w, nil
}

// ReadOPV reads an instruction word.
func (c *Cursor) ReadOPV() (OPV, error) {
	w, err := c.ReadUint32()
	return OPV(w), err
}

// ReadInt32 reads a signed operand word.
func (c *Cursor) ReadInt32() (int32, error) {
	w, err := c.ReadUint32()
	return int32(w), err
}

// ReadFixed reads a fixed point operand.
func (c *Cursor) ReadFixed() (Fixed, error) {
	w, err := c.ReadUint32()
	return Fixed(int32(w)), err
}

// ReadUnit reads a unit operand. Unknown units are reported as malformed.
func (c *Cursor) ReadUnit() (Unit, error) {
	w, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	u := Unit(w)
	if !u.IsValid() {
		return 0, fmt.Errorf("%w: invalid unit %#x at offset %d", ErrMalformedBytecode, w, c.pos-4)
	}
	return u, nil
}

// ReadLength reads a length operand (value and unit).
func (c *Cursor) ReadLength() (Fixed, Unit, error) {
	x, err := c.ReadFixed()
	if err != nil {
		return 0, 0, err
	}
	u, err := c.ReadUnit()
	return x, u, err
}

// ReadColor reads a color operand.
func (c *Cursor) ReadColor() (uint32, error) {
	return c.ReadUint32()
}

// ReadString reads a string table reference.
func (c *Cursor) ReadString() (StringRef, error) {
	w, err := c.ReadUint32()
	return StringRef(w), err
}
