package compile

import (
	"fmt"
	"strings"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
)

// Compiler compiles declaration values into bytecode. Strings occurring in
// values are interned into the compiler's string table, which has to
// accompany the compiled code.
//
// A Compiler holds no per-declaration state; it may be shared between
// goroutines compiling into different builders.
type Compiler struct {
	strings *bytecode.StringTable
}

// New creates a compiler interning strings into st. If st is nil, a new
// string table is created.
func New(st *bytecode.StringTable) *Compiler {
	if st == nil {
		st = bytecode.NewStringTable()
	}
	return &Compiler{strings: st}
}

// Strings returns the string table of a compiler.
func (c *Compiler) Strings() *bytecode.StringTable {
	return c.strings
}

// valueCode is the compiled form of a single value: a value tag and its
// operand words.
type valueCode struct {
	tag      uint16
	operands []uint32
}

func keywordCode(n int) valueCode {
	return valueCode{tag: bytecode.KeywordTag(n)}
}

// Compile compiles the value of a declaration for property name, which may
// be a longhand or a shorthand, from the token stream into bld. All tokens
// up to the end of the stream have to be consumed. A trailing '!important'
// marks the declaration as important, as does important = true.
//
// On success one instruction per longhand is staged. On failure a
// *RejectError is returned and neither ts nor bld are changed.
func (c *Compiler) Compile(name string, ts *TokenStream, bld *bytecode.Builder, important bool) error {
	start, mark := ts.Pos(), bld.Mark()
	imp, end := ts.cutImportant()
	important = important || imp
	err := c.compile(strings.ToLower(name), ts, bld, important)
	ts.end = end
	if err != nil {
		ts.Reset(start)
		bld.Truncate(mark)
		tracer().Infof("dropping declaration: %v", err)
		return err
	}
	if imp {
		ts.pos = end
	}
	return nil
}

func (c *Compiler) compile(name string, ts *TokenStream, bld *bytecode.Builder, important bool) error {
	var longhands []style.PropertyID
	sh, isShorthand := style.ShorthandByName(name)
	if isShorthand {
		longhands = sh.Longhands
	} else if id, ok := style.PropertyByName(name); ok {
		longhands = []style.PropertyID{id}
	} else {
		return reject(name, ts, "unknown property")
	}
	if ts.AtEnd() {
		return reject(name, ts, "missing value")
	}
	if fv := genericKeyword(ts); fv != bytecode.FlagValueNone {
		ts.Next()
		flags := bytecode.MakeFlags(important, fv)
		for _, id := range longhands {
			bld.AppendOPV(bytecode.Encode(bytecode.Opcode(id), flags, 0))
		}
		return nil
	}
	var codes []valueCode
	var err error
	if isShorthand {
		codes, err = c.compileShorthand(sh, ts)
	} else {
		var code valueCode
		code, err = c.value(longhands[0], ts)
		codes = []valueCode{code}
	}
	if err != nil {
		return rejectf(name, ts, err)
	}
	if !ts.AtEnd() {
		return reject(name, ts, fmt.Sprintf("unexpected token %s", ts.Peek()))
	}
	for i, id := range longhands {
		emit(bld, id, important, codes[i])
	}
	return nil
}

// genericKeyword checks for a value consisting of nothing but one of the
// generic keywords.
func genericKeyword(ts *TokenStream) bytecode.FlagValue {
	if ts.Remaining() != 1 {
		return bytecode.FlagValueNone
	}
	return bytecode.FlagValueFromKeyword(ts.Peek().Ident())
}

func emit(bld *bytecode.Builder, id style.PropertyID, important bool, code valueCode) {
	flags := bytecode.MakeFlags(important, code.flagValue())
	bld.AppendOPV(bytecode.Encode(bytecode.Opcode(id), flags, code.tag))
	for _, w := range code.operands {
		bld.AppendUint32(w)
	}
}

// initialCode is used for components omitted from a border shorthand.
var initialCode = valueCode{tag: 0, operands: nil}

func (vc valueCode) flagValue() bytecode.FlagValue {
	if vc.tag == 0 {
		return bytecode.FlagValueInitial
	}
	return bytecode.FlagValueNone
}

func reject(name string, ts *TokenStream, reason string) error {
	return &RejectError{Property: name, Pos: ts.Pos(), Reason: reason}
}

func rejectf(name string, ts *TokenStream, err error) error {
	return reject(name, ts, err.Error())
}
