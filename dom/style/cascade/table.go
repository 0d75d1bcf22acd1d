package cascade

import (
	"fmt"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/computed"
)

// Handler is the set of operations of a property.
type Handler struct {
	// Cascade reads the operands of an instruction and, if the instruction
	// outranks the current winner, writes its value (or its deferred generic
	// keyword) to the selection state's style. It consumes exactly the
	// operands of the instruction, whether it wins or not.
	Cascade func(opv bytecode.OPV, c *bytecode.Cursor, st *SelectionState) error

	// Initial sets the property's initial value.
	Initial func(s *computed.Style, defaults DefaultProvider) error

	// Copy copies the property's slot. Copying a style onto itself does
	// nothing.
	Copy func(from, to *computed.Style)

	// Compose sets the property in result: to the parent's value if the
	// child's value is to be inherited, to the child's value otherwise.
	// A nil parent leaves an inherited slot untouched.
	Compose func(parent, child, result *computed.Style)

	// SetFromDefault sets a value supplied by the host, e.g. a
	// presentational hint.
	SetFromDefault func(v computed.Value, s *computed.Style) error

	// Inherited is true for properties which take the parent's value if no
	// declaration sets them.
	Inherited bool
}

// Operations returns the operations of a property.
func Operations(id style.PropertyID) (Handler, error) {
	if !id.IsValid() {
		return Handler{}, fmt.Errorf("%w: %d", ErrUnknownProperty, id)
	}
	return operations[id], nil
}

// initialFunc produces the initial value of a property.
type initialFunc func(id style.PropertyID, defaults DefaultProvider) (computed.Value, error)

func fixed(v computed.Value) initialFunc {
	return func(style.PropertyID, DefaultProvider) (computed.Value, error) {
		return v, nil
	}
}

func keyword(k style.Keyword) initialFunc {
	return fixed(computed.Keyword(k))
}

func zero() initialFunc {
	return fixed(computed.Px(0))
}

// fromDefaults requests the initial value from the host.
func fromDefaults() initialFunc {
	return func(id style.PropertyID, defaults DefaultProvider) (computed.Value, error) {
		if defaults == nil {
			return nil, fmt.Errorf("%w: %s (no provider)", ErrMissingDefault, id)
		}
		v, err := defaults.DefaultForProperty(id)
		if err != nil {
			return nil, err
		}
		if !computed.Accepts(id, v) {
			return nil, fmt.Errorf("%w: %s: provider returned %v", ErrMissingDefault, id, v)
		}
		return v, nil
	}
}

var operations = [style.PropertyCount]Handler{
	style.PropBackgroundColor:   newHandler(style.PropBackgroundColor, keyword(style.KeywordTransparent)),
	style.PropBorderTopColor:    newHandler(style.PropBorderTopColor, keyword(style.KeywordCurrentColor)),
	style.PropBorderRightColor:  newHandler(style.PropBorderRightColor, keyword(style.KeywordCurrentColor)),
	style.PropBorderBottomColor: newHandler(style.PropBorderBottomColor, keyword(style.KeywordCurrentColor)),
	style.PropBorderLeftColor:   newHandler(style.PropBorderLeftColor, keyword(style.KeywordCurrentColor)),
	style.PropBorderTopStyle:    newHandler(style.PropBorderTopStyle, keyword(style.KeywordNone)),
	style.PropBorderRightStyle:  newHandler(style.PropBorderRightStyle, keyword(style.KeywordNone)),
	style.PropBorderBottomStyle: newHandler(style.PropBorderBottomStyle, keyword(style.KeywordNone)),
	style.PropBorderLeftStyle:   newHandler(style.PropBorderLeftStyle, keyword(style.KeywordNone)),
	style.PropBorderTopWidth:    newHandler(style.PropBorderTopWidth, keyword(style.KeywordMedium)),
	style.PropBorderRightWidth:  newHandler(style.PropBorderRightWidth, keyword(style.KeywordMedium)),
	style.PropBorderBottomWidth: newHandler(style.PropBorderBottomWidth, keyword(style.KeywordMedium)),
	style.PropBorderLeftWidth:   newHandler(style.PropBorderLeftWidth, keyword(style.KeywordMedium)),
	style.PropBorderSpacing:     newHandler(style.PropBorderSpacing, fixed(computed.LengthPair{H: computed.Px(0), V: computed.Px(0)})),
	style.PropBottom:            newHandler(style.PropBottom, keyword(style.KeywordAuto)),
	style.PropClear:             newHandler(style.PropClear, keyword(style.KeywordNone)),
	style.PropColor:             colorHandler(style.PropColor, fromDefaults()),
	style.PropCounterIncrement:  newHandler(style.PropCounterIncrement, keyword(style.KeywordNone)),
	style.PropCounterReset:      newHandler(style.PropCounterReset, keyword(style.KeywordNone)),
	style.PropDirection:         newHandler(style.PropDirection, keyword(style.KeywordLTR)),
	style.PropDisplay:           newHandler(style.PropDisplay, keyword(style.KeywordInline)),
	style.PropFloat:             newHandler(style.PropFloat, keyword(style.KeywordNone)),
	style.PropFontFamily:        newHandler(style.PropFontFamily, fromDefaults()),
	style.PropFontSize:          newHandler(style.PropFontSize, keyword(style.KeywordMedium)),
	style.PropFontStyle:         newHandler(style.PropFontStyle, keyword(style.KeywordNormal)),
	style.PropFontWeight:        newHandler(style.PropFontWeight, keyword(style.KeywordNormal)),
	style.PropHeight:            newHandler(style.PropHeight, keyword(style.KeywordAuto)),
	style.PropLeft:              newHandler(style.PropLeft, keyword(style.KeywordAuto)),
	style.PropLetterSpacing:     newHandler(style.PropLetterSpacing, keyword(style.KeywordNormal)),
	style.PropLineHeight:        newHandler(style.PropLineHeight, keyword(style.KeywordNormal)),
	style.PropMarginTop:         newHandler(style.PropMarginTop, zero()),
	style.PropMarginRight:       newHandler(style.PropMarginRight, zero()),
	style.PropMarginBottom:      newHandler(style.PropMarginBottom, zero()),
	style.PropMarginLeft:        newHandler(style.PropMarginLeft, zero()),
	style.PropOpacity:           newHandler(style.PropOpacity, fixed(computed.Number(bytecode.FixedOne))),
	style.PropPaddingTop:        newHandler(style.PropPaddingTop, zero()),
	style.PropPaddingRight:      newHandler(style.PropPaddingRight, zero()),
	style.PropPaddingBottom:     newHandler(style.PropPaddingBottom, zero()),
	style.PropPaddingLeft:       newHandler(style.PropPaddingLeft, zero()),
	style.PropPosition:          newHandler(style.PropPosition, keyword(style.KeywordStatic)),
	style.PropQuotes:            newHandler(style.PropQuotes, fromDefaults()),
	style.PropRight:             newHandler(style.PropRight, keyword(style.KeywordAuto)),
	style.PropTextAlign:         newHandler(style.PropTextAlign, keyword(style.KeywordStart)),
	style.PropTop:               newHandler(style.PropTop, keyword(style.KeywordAuto)),
	style.PropVisibility:        newHandler(style.PropVisibility, keyword(style.KeywordVisible)),
	style.PropWhiteSpace:        newHandler(style.PropWhiteSpace, keyword(style.KeywordNormal)),
	style.PropWidth:             newHandler(style.PropWidth, keyword(style.KeywordAuto)),
	style.PropWordSpacing:       newHandler(style.PropWordSpacing, keyword(style.KeywordNormal)),
	style.PropZIndex:            newHandler(style.PropZIndex, keyword(style.KeywordAuto)),
}

// newHandler creates the operations of a property with the given initial
// value.
func newHandler(id style.PropertyID, initial initialFunc) Handler {
	return Handler{
		Cascade: func(opv bytecode.OPV, c *bytecode.Cursor, st *SelectionState) error {
			v, err := cascadeValue(id, opv, c, st)
			if err != nil {
				return err
			}
			if st.outranksExisting(id, opv) {
				write(id, opv, v, st.Style)
			}
			return nil
		},
		Initial: func(s *computed.Style, defaults DefaultProvider) error {
			v, err := initial(id, defaults)
			if err != nil {
				return err
			}
			s.SetSlot(id, computed.Slot{Value: v, Source: computed.SourceInitial})
			return nil
		},
		Copy: func(from, to *computed.Style) {
			if from == to {
				return
			}
			to.SetSlot(id, from.Slot(id))
		},
		Compose: func(parent, child, result *computed.Style) {
			sl := child.Slot(id)
			if !takesParentValue(id, sl) {
				result.SetSlot(id, sl)
				return
			}
			if parent == nil {
				return
			}
			psl := parent.Slot(id)
			psl.Source = computed.SourceInherited
			result.SetSlot(id, psl)
		},
		SetFromDefault: func(v computed.Value, s *computed.Style) error {
			return s.SetFrom(id, v, computed.SourceHint)
		},
		Inherited: id.IsInherited(),
	}
}

// colorHandler creates the operations of property color, for which
// 'currentcolor' computes to 'inherit'.
func colorHandler(id style.PropertyID, initial initialFunc) Handler {
	h := newHandler(id, initial)
	h.Cascade = func(opv bytecode.OPV, c *bytecode.Cursor, st *SelectionState) error {
		v, err := cascadeValue(id, opv, c, st)
		if err != nil {
			return err
		}
		if k, ok := v.(computed.Keyword); ok && style.Keyword(k) == style.KeywordCurrentColor {
			opv = bytecode.Encode(opv.Opcode(), bytecode.MakeFlags(opv.IsImportant(), bytecode.FlagValueInherit), 0)
		}
		if st.outranksExisting(id, opv) {
			write(id, opv, v, st.Style)
		}
		return nil
	}
	return h
}

// cascadeValue reads the operands of an instruction, if any. Operands are
// read before deciding about the winner, to keep the cursor in sync.
func cascadeValue(id style.PropertyID, opv bytecode.OPV, c *bytecode.Cursor, st *SelectionState) (computed.Value, error) {
	if opv.HasFlagValue() {
		return nil, nil
	}
	return readValue(id, opv.Value(), c, st.strings)
}

func write(id style.PropertyID, opv bytecode.OPV, v computed.Value, s *computed.Style) {
	if opv.HasFlagValue() {
		s.Defer(id, opv.FlagValue())
		return
	}
	s.SetSlot(id, computed.Slot{Value: v, Source: computed.SourceCascade})
}

// takesParentValue is true if a slot of a cascaded style stands for the
// parent's value: an explicit 'inherit', or 'unset' or no value at all for
// an inherited property.
func takesParentValue(id style.PropertyID, sl computed.Slot) bool {
	switch sl.Marker {
	case bytecode.FlagValueInherit:
		return true
	case bytecode.FlagValueUnset:
		return id.IsInherited()
	case bytecode.FlagValueNone:
		return !sl.IsSet() && id.IsInherited()
	}
	return false
}
