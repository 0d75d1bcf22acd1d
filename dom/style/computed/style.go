package computed

import (
	"fmt"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
)

// Source tells where the value of a slot came from.
type Source uint8

// Sources of slot values.
const (
	SourceNone      Source = iota // nothing written yet
	SourceCascade                 // a declaration won the cascade
	SourceHint                    // a presentational hint of the host
	SourceInherited               // copied from the parent element
	SourceInitial                 // the property's initial value
)

var sourceNames = [...]string{"none", "cascade", "hint", "inherited", "initial"}

func (src Source) String() string {
	if int(src) < len(sourceNames) {
		return sourceNames[src]
	}
	return fmt.Sprintf("source(%d)", uint8(src))
}

// Slot holds the state of one property of a computed style.
//
// During cascading a slot either carries a value or a deferred marker
// (Marker != FlagValueNone) with a nil value. Inheritance resolution
// clears all markers.
type Slot struct {
	Value  Value
	Marker bytecode.FlagValue
	Source Source
}

// IsSet is true if anything has been written to a slot.
func (sl Slot) IsSet() bool {
	return sl.Source != SourceNone || sl.Marker != bytecode.FlagValueNone
}

// IsDeferred is true if a slot carries a generic keyword awaiting resolution.
func (sl Slot) IsDeferred() bool {
	return sl.Marker != bytecode.FlagValueNone
}

// IsFinal is true if a slot holds a concrete value.
func (sl Slot) IsFinal() bool {
	return sl.Value != nil && sl.Marker == bytecode.FlagValueNone
}

// Equal compares slots by value, marker and source.
func (sl Slot) Equal(other Slot) bool {
	return sl.Marker == other.Marker && sl.Source == other.Source && Equal(sl.Value, other.Value)
}

func (sl Slot) String() string {
	if sl.IsDeferred() {
		return "<" + sl.Marker.String() + ">"
	}
	if sl.Value == nil {
		return "<unset>"
	}
	return sl.Value.String()
}

// Style is the computed style of an element.
// The zero value is an empty style, ready to use.
type Style struct {
	slots [style.PropertyCount]Slot
}

// New creates an empty style.
func New() *Style {
	return &Style{}
}

// Slot returns the slot of a property.
func (s *Style) Slot(id style.PropertyID) Slot {
	if !id.IsValid() {
		return Slot{}
	}
	return s.slots[id]
}

// SetSlot overwrites the slot of a property. Invalid ids are ignored.
func (s *Style) SetSlot(id style.PropertyID, sl Slot) {
	if id.IsValid() {
		s.slots[id] = sl
	}
}

// Get returns the concrete value of a property, or nil if the property is
// unset or deferred.
func (s *Style) Get(id style.PropertyID) Value {
	sl := s.Slot(id)
	if !sl.IsFinal() {
		return nil
	}
	return sl.Value
}

// Set writes a concrete value for a property, as if set by the cascade.
// Values the property does not accept are rejected with ErrInvalidValue.
func (s *Style) Set(id style.PropertyID, v Value) error {
	return s.SetFrom(id, v, SourceCascade)
}

// SetFrom writes a concrete value with a given source.
func (s *Style) SetFrom(id style.PropertyID, v Value, src Source) error {
	if !id.IsValid() {
		return fmt.Errorf("%w: unknown property %d", ErrInvalidValue, id)
	}
	if v == nil || !Accepts(id, v) {
		return fmt.Errorf("%w: %s does not accept %v", ErrInvalidValue, id, v)
	}
	s.slots[id] = Slot{Value: v, Source: src}
	return nil
}

// Defer records a generic keyword for later resolution.
func (s *Style) Defer(id style.PropertyID, fv bytecode.FlagValue) {
	if id.IsValid() {
		s.slots[id] = Slot{Marker: fv, Source: SourceCascade}
	}
}

// Clear empties the slot of a property.
func (s *Style) Clear(id style.PropertyID) {
	if id.IsValid() {
		s.slots[id] = Slot{}
	}
}

// IsFinal is true if every property holds a concrete, marker-free value.
func (s *Style) IsFinal() bool {
	for i := range s.slots {
		if !s.slots[i].IsFinal() {
			return false
		}
	}
	return true
}

// Clone returns a copy of a style. Slices of list values are shared, as
// values are never modified in place.
func (s *Style) Clone() *Style {
	c := *s
	return &c
}

// Equal compares two styles slot by slot.
func (s *Style) Equal(other *Style) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	for i := range s.slots {
		if !s.slots[i].Equal(other.slots[i]) {
			return false
		}
	}
	return true
}

// Unresolved returns the properties which are not yet final.
func (s *Style) Unresolved() []style.PropertyID {
	var ids []style.PropertyID
	for i := range s.slots {
		if !s.slots[i].IsFinal() {
			ids = append(ids, style.PropertyID(i))
		}
	}
	return ids
}
