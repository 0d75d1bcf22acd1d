package bytecode

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/binary"
	"fmt"
	"sync"
)

// Span is a range [Start, End) of committed code within a buffer.
type Span struct {
	Start, End int
}

// Len returns the size of a span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Buffer holds compiled code. Code is added in units of committed
// builders; a partially built instruction sequence is never visible.
// After Seal, a buffer is read-only and safe for concurrent readers.
type Buffer struct {
	mx     sync.Mutex
	code   []byte
	limit  int // maximum size in bytes, 0 for unlimited
	sealed bool
}

// NewBuffer creates an empty buffer with an initial capacity in bytes.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{code: make([]byte, 0, capacity)}
}

// SetLimit restricts the size of a buffer. Commits which would grow the
// buffer beyond n bytes fail with ErrOutOfMemory. n = 0 removes the limit.
func (b *Buffer) SetLimit(n int) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.limit = n
}

// Len returns the number of committed bytes.
func (b *Buffer) Len() int {
	b.mx.Lock()
	defer b.mx.Unlock()
	return len(b.code)
}

// Seal makes a buffer read-only.
func (b *Buffer) Seal() {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.sealed = true
}

// IsSealed returns true if a buffer does not accept further code.
func (b *Buffer) IsSealed() bool {
	b.mx.Lock()
	defer b.mx.Unlock()
	return b.sealed
}

// Block returns a read-only view of a span of committed code.
// Invalid spans result in an empty block.
func (b *Buffer) Block(span Span) Block {
	b.mx.Lock()
	defer b.mx.Unlock()
	if span.Start < 0 || span.End > len(b.code) || span.Start > span.End {
		tracer().Errorf("invalid span [%d,%d) for buffer of size %d", span.Start, span.End, len(b.code))
		return Block{}
	}
	// limit the capacity to protect code following the span
	return Block{code: b.code[span.Start:span.End:span.End]}
}

// Begin starts a new unit of code. Nothing is added to the buffer until
// the builder is committed.
func (b *Buffer) Begin() *Builder {
	return &Builder{buf: b}
}

func (b *Buffer) commit(staged []byte) (Span, error) {
	b.mx.Lock()
	defer b.mx.Unlock()
	if b.sealed {
		return Span{}, ErrSealed
	}
	start := len(b.code)
	if b.limit > 0 && start+len(staged) > b.limit {
		return Span{}, fmt.Errorf("%w: %d + %d bytes exceed limit of %d",
			ErrOutOfMemory, start, len(staged), b.limit)
	}
	b.code = append(b.code, staged...)
	return Span{Start: start, End: len(b.code)}, nil
}

// --- Builder ---------------------------------------------------------------

// Builder stages code for a buffer. Builders are not safe for concurrent use.
type Builder struct {
	buf    *Buffer
	staged []byte
	done   bool
}

// Len returns the number of staged bytes.
func (bld *Builder) Len() int {
	return len(bld.staged)
}

// Mark returns the current staging position, to be used with Truncate.
func (bld *Builder) Mark() int {
	return len(bld.staged)
}

// Truncate drops staged code back to a mark.
func (bld *Builder) Truncate(mark int) {
	if mark >= 0 && mark <= len(bld.staged) {
		bld.staged = bld.staged[:mark]
	}
}

// AppendOPV stages an instruction word.
func (bld *Builder) AppendOPV(opv OPV) *Builder {
	return bld.AppendUint32(uint32(opv))
}

// AppendUint32 stages a raw operand word.
func (bld *Builder) AppendUint32(w uint32) *Builder {
	bld.staged = binary.LittleEndian.AppendUint32(bld.staged, w)
	return bld
}

// AppendInt32 stages a signed operand word.
func (bld *Builder) AppendInt32(n int32) *Builder {
	return bld.AppendUint32(uint32(n))
}

// AppendFixed stages a fixed point operand.
func (bld *Builder) AppendFixed(x Fixed) *Builder {
	return bld.AppendUint32(uint32(x))
}

// AppendUnit stages a unit operand.
func (bld *Builder) AppendUnit(u Unit) *Builder {
	return bld.AppendUint32(uint32(u))
}

// AppendLength stages a length operand (value and unit).
func (bld *Builder) AppendLength(x Fixed, u Unit) *Builder {
	return bld.AppendFixed(x).AppendUnit(u)
}

// AppendColor stages a color operand.
func (bld *Builder) AppendColor(c uint32) *Builder {
	return bld.AppendUint32(c)
}

// AppendString stages a string table reference.
func (bld *Builder) AppendString(ref StringRef) *Builder {
	return bld.AppendUint32(uint32(ref))
}

// Commit appends the staged code to the buffer in one step and returns
// the span it occupies. On error the buffer is left unchanged.
// A builder may be committed only once.
func (bld *Builder) Commit() (Span, error) {
	if bld.done {
		return Span{}, fmt.Errorf("builder already committed or rolled back")
	}
	span, err := bld.buf.commit(bld.staged)
	if err != nil {
		return span, err
	}
	bld.done = true
	bld.staged = nil
	return span, nil
}

// Rollback discards all staged code.
func (bld *Builder) Rollback() {
	bld.staged = nil
	bld.done = true
}

// --- Block -----------------------------------------------------------------

// Block is a read-only view of committed code, e.g. the code of a single
// declaration.
type Block struct {
	code []byte
}

// NewBlock wraps raw code. It is intended for code obtained by other means
// than a Buffer, e.g. for tests or persisted code.
func NewBlock(code []byte) Block {
	return Block{code: code}
}

// Len returns the size of a block in bytes.
func (blk Block) Len() int {
	return len(blk.code)
}

// Cursor returns a new cursor positioned at the start of a block.
func (blk Block) Cursor() *Cursor {
	return &Cursor{code: blk.code}
}
