package computed

import (
	"strconv"
	"strings"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
)

// Value is a computed property value. The set of implementations is closed.
type Value interface {
	String() string
	isValue()
}

// Keyword is an identifier value, e.g. 'block' for display.
type Keyword style.Keyword

// Length is a dimension or a percentage.
type Length struct {
	Value bytecode.Fixed
	Unit  bytecode.Unit
}

// Color is an RGBA color.
type Color style.Color

// Number is a unit-less real number, e.g. for opacity or line-height.
type Number bytecode.Fixed

// Integer is an integer value, e.g. for z-index.
type Integer int32

// Strings is a list of strings: font families or quote pairs.
type Strings []string

// Counter is a named counter together with an increment or reset value.
type Counter struct {
	Name  string
	Value int32
}

// Counters is a list of counters.
type Counters []Counter

// LengthPair is a pair of lengths, horizontal first.
type LengthPair struct {
	H, V Length
}

func (Keyword) isValue()    {}
func (Length) isValue()     {}
func (Color) isValue()      {}
func (Number) isValue()     {}
func (Integer) isValue()    {}
func (Strings) isValue()    {}
func (Counters) isValue()   {}
func (LengthPair) isValue() {}

func (k Keyword) String() string { return style.Keyword(k).String() }

func (l Length) String() string { return l.Value.String() + l.Unit.String() }

// Px creates a length in CSS pixels.
func Px(n int) Length {
	return Length{Value: bytecode.FixedFromInt(n), Unit: bytecode.UnitPX}
}

// Percent creates a percentage length.
func Percent(n int) Length {
	return Length{Value: bytecode.FixedFromInt(n), Unit: bytecode.UnitPCT}
}

func (c Color) String() string { return style.Color(c).String() }

func (n Number) String() string { return bytecode.Fixed(n).String() }

func (i Integer) String() string { return strconv.Itoa(int(i)) }

func (s Strings) String() string {
	q := make([]string, len(s))
	for i, str := range s {
		q[i] = strconv.Quote(str)
	}
	return strings.Join(q, ", ")
}

func (cs Counters) String() string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Name)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(int(c.Value)))
	}
	return b.String()
}

func (lp LengthPair) String() string { return lp.H.String() + " " + lp.V.String() }

// Equal compares two values. Nil values are equal to each other only.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Strings:
		y, ok := b.(Strings)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	case Counters:
		y, ok := b.(Counters)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	}
	return a == b
}

// Accepts checks if property id accepts a value.
func Accepts(id style.PropertyID, v Value) bool {
	acc := id.Accepts()
	switch x := v.(type) {
	case Keyword:
		_, ok := id.KeywordIndex(style.Keyword(x))
		return ok
	case Length:
		if x.Unit.IsPercentage() {
			return acc.Has(style.AcceptPercentage)
		}
		if !x.Unit.IsLength() || !acc.Has(style.AcceptLength) {
			return false
		}
		return x.Value >= 0 || acc.Has(style.AcceptNegative)
	case Color:
		return acc.Has(style.AcceptColor)
	case Number:
		return acc.Has(style.AcceptNumber)
	case Integer:
		return acc.Has(style.AcceptInteger) && (x >= 0 || acc.Has(style.AcceptNegative))
	case Strings:
		return acc.Has(style.AcceptFamilies) || acc.Has(style.AcceptQuotes)
	case Counters:
		return acc.Has(style.AcceptCounters)
	case LengthPair:
		return acc.Has(style.AcceptLengthPair)
	}
	return false
}
