package compile

import (
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
)

// color compiles a color value: a hex color, rgb()/rgba() or a named color.
// The keywords transparent and currentcolor are part of the vocabulary of
// every color property and are handled before.
func color(ts *TokenStream) (valueCode, error) {
	tok := ts.Peek()
	var c style.Color
	var err error
	switch tok.Kind {
	case TokenHash:
		if c, err = hexColor(tok.Text); err != nil {
			return valueCode{}, err
		}
		ts.Next()
	case TokenIdent:
		var ok bool
		if c, ok = style.NamedColor(tok.Ident()); !ok {
			return valueCode{}, fmt.Errorf("unknown color %s", tok)
		}
		ts.Next()
	case TokenFunction:
		if tok.Text != "rgb" && tok.Text != "rgba" {
			return valueCode{}, fmt.Errorf("unsupported color function %s()", tok.Text)
		}
		pos := ts.Pos()
		ts.Next()
		if c, err = rgbFunction(ts); err != nil {
			ts.Reset(pos)
			return valueCode{}, err
		}
	default:
		return valueCode{}, fmt.Errorf("color expected, have %s", tok)
	}
	return valueCode{tag: bytecode.ValueColor, operands: []uint32{uint32(c)}}, nil
}

// hexColor parses #rgb, #rgba, #rrggbb and #rrggbbaa (without '#').
func hexColor(h string) (style.Color, error) {
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color #%s", h)
	}
	x := uint32(n)
	switch len(h) {
	case 3:
		return style.RGBA(dup(x>>8), dup(x>>4), dup(x), 0xff), nil
	case 4:
		return style.RGBA(dup(x>>12), dup(x>>8), dup(x>>4), dup(x)), nil
	case 6:
		return style.RGBA(uint8(x>>16), uint8(x>>8), uint8(x), 0xff), nil
	case 8:
		return style.RGBA(uint8(x>>24), uint8(x>>16), uint8(x>>8), uint8(x)), nil
	}
	return 0, fmt.Errorf("invalid hex color #%s", h)
}

// dup expands a hex digit d to dd.
func dup(d uint32) uint8 {
	d &= 0xf
	return uint8(d<<4 | d)
}

// rgbFunction parses the arguments of rgb()/rgba() up to and including the
// closing parenthesis. Components are numbers 0…255 or percentages, alpha
// is a number 0…1 or a percentage. Either all arguments are separated by
// commas, or the components by white space and alpha by '/'.
func rgbFunction(ts *TokenStream) (style.Color, error) {
	var args []Token
	var seps []string
	sep := ""
	for closed := false; !closed; {
		tok := ts.Next()
		switch tok.Kind {
		case TokenCloseParen:
			closed = true
		case TokenComma, TokenDelim:
			if tok.Kind == TokenDelim && tok.Text != "/" || sep != " " {
				return 0, fmt.Errorf("unexpected %s in rgb()", tok)
			}
			sep = tok.Text
		case TokenNumber, TokenPercentage:
			args = append(args, tok)
			seps = append(seps, sep)
			sep = " "
		default:
			return 0, fmt.Errorf("color component expected in rgb(), have %s", tok)
		}
	}
	if len(args) != 3 && len(args) != 4 {
		return 0, fmt.Errorf("rgb() needs 3 or 4 arguments, have %d", len(args))
	}
	if sep != " " || seps[1] != seps[2] {
		return 0, fmt.Errorf("inconsistent separators in rgb()")
	}
	if len(args) == 4 && !(seps[1] == "," && seps[3] == "," || seps[1] == " " && seps[3] == "/") {
		return 0, fmt.Errorf("inconsistent alpha separator in rgb()")
	}
	var b [4]uint8
	b[3] = 0xff
	for i, tok := range args {
		x := tok.Num / 100
		if tok.Kind == TokenNumber {
			if i == 3 {
				x = tok.Num
			} else {
				x = tok.Num / 255
			}
		}
		b[i] = uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
	}
	return style.RGBA(b[0], b[1], b[2], b[3]), nil
}
