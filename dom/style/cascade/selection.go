package cascade

import (
	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/computed"
)

// entry is the state of one property during a cascade pass.
type entry struct {
	set  bool
	prio Priority
}

// SelectionState is the scratch state of cascading a single element. It
// tracks, for every property, the priority of the currently winning
// declaration, and collects winning values in a computed style.
//
// A SelectionState must not be shared between goroutines.
type SelectionState struct {
	Style   *computed.Style       // the cascaded style
	strings *bytecode.StringTable // strings referenced by the code
	current Priority              // priority of the declaration being cascaded
	entries [style.PropertyCount]entry
}

// NewSelectionState creates the state for cascading an element whose code
// references strings of st.
func NewSelectionState(st *bytecode.StringTable) *SelectionState {
	if st == nil {
		st = bytecode.NewStringTable()
	}
	return &SelectionState{Style: computed.New(), strings: st}
}

// SetPriority sets the priority of the declaration whose instructions are
// cascaded next. Importance is taken from the instructions.
func (st *SelectionState) SetPriority(p Priority) {
	st.current = p
}

// Winner returns the priority of the declaration currently winning for a
// property, if any.
func (st *SelectionState) Winner(id style.PropertyID) (Priority, bool) {
	if !id.IsValid() {
		return Priority{}, false
	}
	e := st.entries[id]
	return e.prio, e.set
}

// outranksExisting decides if an instruction for property id replaces the
// current winner. If it does, its priority is recorded as the new winner.
func (st *SelectionState) outranksExisting(id style.PropertyID, opv bytecode.OPV) bool {
	p := st.current
	p.Important = p.Important || opv.IsImportant()
	return st.claim(id, p)
}

func (st *SelectionState) claim(id style.PropertyID, p Priority) bool {
	e := &st.entries[id]
	if e.set && !p.Outranks(e.prio) {
		tracer().Debugf("%s: %v loses against %v", id, p, e.prio)
		return false
	}
	e.set, e.prio = true, p
	return true
}

// drop forgets the winner of a property.
func (st *SelectionState) drop(id style.PropertyID) {
	if id.IsValid() {
		st.entries[id] = entry{}
		st.Style.Clear(id)
	}
}
