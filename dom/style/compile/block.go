package compile

import (
	"errors"
	"fmt"

	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"go.uber.org/multierr"
)

// Declaration is an uncompiled property declaration as delivered by a
// stylesheet parser.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return fmt.Sprintf("%s: %s !important", d.Property, d.Value)
	}
	return fmt.Sprintf("%s: %s", d.Property, d.Value)
}

// CompileDeclaration compiles a single declaration and commits its code
// to buf. It returns the span of the committed code.
//
// Rejected declarations leave buf untouched and return an error wrapping
// ErrCompileReject. Exceeding the buffer's limit returns an error wrapping
// bytecode.ErrOutOfMemory.
func (c *Compiler) CompileDeclaration(d Declaration, buf *bytecode.Buffer) (bytecode.Span, error) {
	ts, err := Tokenize(d.Value)
	if err != nil {
		return bytecode.Span{}, &RejectError{Property: d.Property, Reason: err.Error()}
	}
	bld := buf.Begin()
	if err = c.Compile(d.Property, ts, bld, d.Important); err != nil {
		bld.Rollback()
		return bytecode.Span{}, err
	}
	return bld.Commit()
}

// BlockResult is the outcome of compiling a declaration block.
type BlockResult struct {
	Spans    []bytecode.Span // one per declaration, empty for rejected ones
	Rejected error           // rejected declarations, combined with multierr
}

// Rejects returns the individual errors of rejected declarations.
func (r BlockResult) Rejects() []error {
	return multierr.Errors(r.Rejected)
}

// CompileBlock compiles the declarations of a rule into buf, in order.
// Rejected declarations are dropped and reported in the result, they do
// not stop compilation of the block. A hard error, i.e. an exhausted or
// sealed buffer, aborts compilation and is returned as error.
func (c *Compiler) CompileBlock(decls []Declaration, buf *bytecode.Buffer) (BlockResult, error) {
	result := BlockResult{Spans: make([]bytecode.Span, len(decls))}
	for i, d := range decls {
		span, err := c.CompileDeclaration(d, buf)
		if err != nil {
			if errors.Is(err, ErrCompileReject) {
				result.Rejected = multierr.Append(result.Rejected, err)
				continue
			}
			return result, fmt.Errorf("compiling %s: %w", d, err)
		}
		result.Spans[i] = span
	}
	return result, nil
}
