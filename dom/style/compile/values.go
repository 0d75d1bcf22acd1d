package compile

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
)

var errNoValue = errors.New("value does not match property grammar")

// value compiles a single value for longhand id. It consumes the tokens of
// one value; list-valued properties consume all remaining tokens.
func (c *Compiler) value(id style.PropertyID, ts *TokenStream) (valueCode, error) {
	tok := ts.Peek()
	if tok.Kind == TokenIdent {
		if kw, ok := style.KeywordFromString(tok.Ident()); ok {
			if n, ok := id.KeywordIndex(kw); ok {
				ts.Next()
				return keywordCode(n), nil
			}
		}
	}
	acc := id.Accepts()
	switch {
	case acc.Has(style.AcceptFamilies):
		return c.families(ts)
	case acc.Has(style.AcceptQuotes):
		return c.quotes(ts)
	case acc.Has(style.AcceptCounters):
		return c.counters(id, ts)
	case acc.Has(style.AcceptLengthPair):
		return lengthPair(ts)
	case acc.Has(style.AcceptColor):
		return color(ts)
	}
	return numeric(id, ts)
}

// numeric compiles lengths, percentages, numbers and integers.
func numeric(id style.PropertyID, ts *TokenStream) (valueCode, error) {
	acc := id.Accepts()
	tok := ts.Peek()
	negOK := acc.Has(style.AcceptNegative)
	switch tok.Kind {
	case TokenDimension:
		unit, ok := bytecode.UnitFromString(tok.Unit)
		if !ok || !unit.IsLength() || !acc.Has(style.AcceptLength) {
			return valueCode{}, fmt.Errorf("%s: unit %q not accepted", id, tok.Unit)
		}
		if tok.Num < 0 && !negOK {
			return valueCode{}, fmt.Errorf("%s: negative length", id)
		}
		ts.Next()
		return lengthCode(tok.Num, unit), nil
	case TokenPercentage:
		if !acc.Has(style.AcceptPercentage) {
			return valueCode{}, fmt.Errorf("%s: percentage not accepted", id)
		}
		if tok.Num < 0 && !negOK {
			return valueCode{}, fmt.Errorf("%s: negative percentage", id)
		}
		ts.Next()
		return lengthCode(tok.Num, bytecode.UnitPCT), nil
	case TokenNumber:
		return number(id, ts)
	}
	return valueCode{}, fmt.Errorf("%s: %w: %s", id, errNoValue, tok)
}

func number(id style.PropertyID, ts *TokenStream) (valueCode, error) {
	acc := id.Accepts()
	tok := ts.Peek()
	x := tok.Num
	switch {
	case acc.Has(style.AcceptNumber):
		if id == style.PropOpacity {
			x = math.Max(0, math.Min(1, x))
		} else if x < 0 && !acc.Has(style.AcceptNegative) {
			return valueCode{}, fmt.Errorf("%s: negative number", id)
		}
		ts.Next()
		return valueCode{tag: bytecode.ValueNumber,
			operands: []uint32{uint32(bytecode.FixedFromFloat(x))}}, nil
	case acc.Has(style.AcceptInteger):
		if x != math.Trunc(x) || x > math.MaxInt32 || x < math.MinInt32 {
			return valueCode{}, fmt.Errorf("%s: integer expected, have %s", id, tok)
		}
		if x < 0 && !acc.Has(style.AcceptNegative) {
			return valueCode{}, fmt.Errorf("%s: negative integer", id)
		}
		if id == style.PropFontWeight && (x < 1 || x > 1000) {
			return valueCode{}, fmt.Errorf("%s: weight %s out of range", id, tok)
		}
		ts.Next()
		return valueCode{tag: bytecode.ValueInteger, operands: []uint32{uint32(int32(x))}}, nil
	case acc.Has(style.AcceptLength) && x == 0:
		ts.Next()
		return lengthCode(0, bytecode.UnitPX), nil
	}
	return valueCode{}, fmt.Errorf("%s: unit-less number %s not accepted", id, tok)
}

func lengthCode(x float64, unit bytecode.Unit) valueCode {
	return valueCode{tag: bytecode.ValueLength,
		operands: []uint32{uint32(bytecode.FixedFromFloat(x)), uint32(unit)}}
}

// length reads a single non-negative length, accepting a unit-less zero.
func length(ts *TokenStream) (bytecode.Fixed, bytecode.Unit, error) {
	tok := ts.Peek()
	switch {
	case tok.Kind == TokenNumber && tok.Num == 0:
		ts.Next()
		return 0, bytecode.UnitPX, nil
	case tok.Kind == TokenDimension:
		unit, ok := bytecode.UnitFromString(tok.Unit)
		if !ok || !unit.IsLength() {
			return 0, 0, fmt.Errorf("length expected, have %s", tok)
		}
		if tok.Num < 0 {
			return 0, 0, fmt.Errorf("negative length %s", tok)
		}
		ts.Next()
		return bytecode.FixedFromFloat(tok.Num), unit, nil
	}
	return 0, 0, fmt.Errorf("length expected, have %s", tok)
}

// lengthPair compiles one or two lengths. A single length is used for
// both directions.
func lengthPair(ts *TokenStream) (valueCode, error) {
	h, hu, err := length(ts)
	if err != nil {
		return valueCode{}, err
	}
	v, vu := h, hu
	if !ts.AtEnd() {
		if v, vu, err = length(ts); err != nil {
			return valueCode{}, err
		}
	}
	return valueCode{tag: bytecode.ValueLengthPair,
		operands: []uint32{uint32(h), uint32(hu), uint32(v), uint32(vu)}}, nil
}

// families compiles a comma separated list of font families. A family is
// either a string or a sequence of identifiers, joined by single spaces.
func (c *Compiler) families(ts *TokenStream) (valueCode, error) {
	code := valueCode{tag: bytecode.ValueList}
	for {
		var name string
		switch tok := ts.Peek(); tok.Kind {
		case TokenString:
			ts.Next()
			name = tok.Text
		case TokenIdent:
			var words []string
			for ts.Peek().Kind == TokenIdent {
				w := ts.Next()
				if bytecode.FlagValueFromKeyword(w.Ident()) != bytecode.FlagValueNone {
					return valueCode{}, fmt.Errorf("generic keyword %s in family list", w)
				}
				words = append(words, w.Text)
			}
			name = strings.Join(words, " ")
		default:
			return valueCode{}, fmt.Errorf("font family expected, have %s", tok)
		}
		code.operands = append(code.operands, uint32(c.strings.Intern(name)))
		if ts.Peek().Kind != TokenComma {
			break
		}
		ts.Next()
	}
	code.operands = append(code.operands, uint32(bytecode.NoString))
	return code, nil
}

// quotes compiles pairs of strings.
func (c *Compiler) quotes(ts *TokenStream) (valueCode, error) {
	code := valueCode{tag: bytecode.ValueList}
	for ts.Peek().Kind == TokenString {
		code.operands = append(code.operands, uint32(c.strings.Intern(ts.Next().Text)))
	}
	if n := len(code.operands); n == 0 || n%2 != 0 {
		return valueCode{}, fmt.Errorf("quotes need pairs of strings, have %d", n)
	}
	code.operands = append(code.operands, uint32(bytecode.NoString))
	return code, nil
}

// counters compiles a list of counter names, each optionally followed by
// an integer. The default is 1 for counter-increment and 0 otherwise.
func (c *Compiler) counters(id style.PropertyID, ts *TokenStream) (valueCode, error) {
	dflt := int32(0)
	if id == style.PropCounterIncrement {
		dflt = 1
	}
	code := valueCode{tag: bytecode.ValueCounters}
	for ts.Peek().Kind == TokenIdent {
		tok := ts.Next()
		name := tok.Ident()
		if name == "none" || bytecode.FlagValueFromKeyword(name) != bytecode.FlagValueNone {
			return valueCode{}, fmt.Errorf("invalid counter name %s", tok)
		}
		n := dflt
		if next := ts.Peek(); next.Kind == TokenNumber {
			if next.Num != math.Trunc(next.Num) || math.Abs(next.Num) > math.MaxInt32 {
				return valueCode{}, fmt.Errorf("integer expected, have %s", next)
			}
			ts.Next()
			n = int32(next.Num)
		}
		code.operands = append(code.operands, uint32(c.strings.Intern(tok.Text)), uint32(n))
	}
	if len(code.operands) == 0 {
		return valueCode{}, fmt.Errorf("counter name expected, have %s", ts.Peek())
	}
	code.operands = append(code.operands, uint32(bytecode.NoString))
	return code, nil
}
