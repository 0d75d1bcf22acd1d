package css

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

// ErrRelativeLength is returned for lengths which need a layout context to
// be converted, e.g. '2em' or '10vw'.
var ErrRelativeLength = errors.New("length is relative to layout context")

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| ViewRel unit
	| FontRel unit
	| ContentRel Min N
	| ContentRel Max N
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsNone is true for the zero value, i.e. a dimension which has not been set.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAbsolute is true for dimensions with a fixed value.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

func (d DimenT) String() string {
	switch {
	case d.flags == dimenNone:
		return "none"
	case d.flags&kindMask == dimenAuto:
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.flags&kindMask == dimenAbsolute:
		return fmt.Sprintf("%dsp", int32(d.d))
	case d.flags&relativeMask == dimenPercent:
		return fmt.Sprintf("%v%%", d.percent)
	}
	return fmt.Sprintf("dimen(%#x)", d.flags)
}

// --- Conversion from computed values ---------------------------------------

// pointsPer is the size of absolute CSS units in points. CSS fixes
// 1in = 96px = 72pt.
var pointsPer = map[bytecode.Unit]float64{
	bytecode.UnitPX: 0.75,
	bytecode.UnitPT: 1,
	bytecode.UnitPC: 12,
	bytecode.UnitIN: 72,
	bytecode.UnitCM: 72 / 2.54,
	bytecode.UnitMM: 72 / 25.4,
	bytecode.UnitQ:  72 / 101.6,
}

// Border widths for keywords 'thin', 'medium' and 'thick', in px.
var borderWidths = map[style.Keyword]int{
	style.KeywordThin:   1,
	style.KeywordMedium: 3,
	style.KeywordThick:  5,
}

// DimenFromLength converts a computed length value to a dimension.
// Absolute lengths are converted to design units, keyword 'auto' is
// converted to Auto() and border width keywords to their widths.
// Lengths relative to fonts or the viewport cannot be converted without
// layout context; for these an error wrapping ErrRelativeLength is returned.
func DimenFromLength(v computed.Value) (DimenT, error) {
	switch x := v.(type) {
	case computed.Length:
		if x.Unit.IsPercentage() {
			return Percentage(FromInt(int(math.Round(x.Value.Float())))), nil
		}
		pt, ok := pointsPer[x.Unit]
		if !ok {
			return DimenT{}, fmt.Errorf("%w: %s", ErrRelativeLength, x)
		}
		return JustDimen(dimen.DU(math.Round(x.Value.Float() * pt * float64(dimen.PT)))), nil
	case computed.Keyword:
		if style.Keyword(x) == style.KeywordAuto {
			return Auto(), nil
		}
		if px, ok := borderWidths[style.Keyword(x)]; ok {
			return JustDimen(dimen.DU(math.Round(float64(px) * 0.75 * float64(dimen.PT)))), nil
		}
	case nil:
		return DimenT{}, nil
	}
	return DimenT{}, fmt.Errorf("not a length: %v", v)
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenPercent > 0) != (d.flags&dimenPercent > 0) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&kindMask == dimenAuto:
		return patterns.Auto
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	case m.dimen.flags&relativeMask == dimenPercent:
		return patterns.Percent
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
