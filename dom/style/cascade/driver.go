package cascade

import (
	"errors"
	"fmt"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/computed"
)

// Declaration is the compiled code of a declaration matching an element,
// together with its priority.
type Declaration struct {
	Code     bytecode.Block
	Priority Priority
}

// Env is the environment of cascading and resolution.
type Env struct {
	Strings  *bytecode.StringTable // strings referenced by compiled code
	Defaults DefaultProvider       // provider of host defaults
	Strict   bool                  // fail on malformed code instead of dropping properties
}

// Cascade computes the cascaded style of an element from the declarations
// matching it and from presentational hints. Declarations may come in any
// order; for every property the one with the highest priority wins.
// Hints are outranked by every declaration.
//
// The resulting style may contain deferred generic keywords and lacks
// values for properties no declaration sets; it has to be finalized with
// Resolve.
//
// Malformed code aborts the declaration it occurs in. With env.Strict, an
// error wrapping bytecode.ErrMalformedBytecode is returned; otherwise the
// affected property is dropped and cascading continues.
func Cascade(decls []Declaration, hints []style.Hint, env Env) (*computed.Style, error) {
	st := NewSelectionState(env.Strings)
	for i, h := range hints {
		ops, err := Operations(h.Property)
		if err != nil {
			tracer().Errorf("ignoring hint: %v", err)
			continue
		}
		if !st.claim(h.Property, Priority{Origin: OriginHint, Order: uint32(i)}) {
			continue
		}
		if err = ops.SetFromDefault(computed.Keyword(h.Value), st.Style); err != nil {
			tracer().Infof("ignoring hint %s: %s: %v", h.Property, h.Value, err)
			st.drop(h.Property)
		}
	}
	for _, d := range decls {
		st.SetPriority(d.Priority)
		if err := run(d.Code, st); err != nil {
			if env.Strict || !errors.Is(err, bytecode.ErrMalformedBytecode) {
				return st.Style, err
			}
			tracer().Errorf("cascade: %v", err)
		}
	}
	return st.Style, nil
}

// run executes the instructions of a block. On malformed code, the property
// of the offending instruction is dropped and execution of the block stops.
func run(code bytecode.Block, st *SelectionState) error {
	c := code.Cursor()
	for !c.AtEnd() {
		opv, err := c.ReadOPV()
		if err != nil {
			return err
		}
		id := style.PropertyID(opv.Opcode())
		ops, err := Operations(id)
		if err != nil {
			return fmt.Errorf("%w: opcode %d", bytecode.ErrMalformedBytecode, opv.Opcode())
		}
		if err = ops.Cascade(opv, c, st); err != nil {
			st.drop(id)
			return err
		}
	}
	return nil
}
