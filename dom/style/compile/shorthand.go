package compile

import (
	"fmt"

	"github.com/npillmayer/csscascade/dom/style"
)

// compileShorthand returns one value code per longhand of sh, in the order
// of sh.Longhands.
func (c *Compiler) compileShorthand(sh *style.Shorthand, ts *TokenStream) ([]valueCode, error) {
	switch sh.Kind {
	case style.FourSides:
		return c.fourSides(sh, ts)
	case style.BorderSide, style.BorderAll:
		return c.border(sh, ts)
	}
	return nil, fmt.Errorf("unsupported shorthand %s", sh.Name)
}

// fourSides reads 1–4 values of the grammar of the first longhand and
// distributes them to top, right, bottom and left.
func (c *Compiler) fourSides(sh *style.Shorthand, ts *TokenStream) ([]valueCode, error) {
	var values []valueCode
	for !ts.AtEnd() && len(values) < 4 {
		code, err := c.value(sh.Longhands[0], ts)
		if err != nil {
			return nil, err
		}
		values = append(values, code)
	}
	if !ts.AtEnd() {
		return nil, fmt.Errorf("%s takes at most 4 values", sh.Name)
	}
	sides, err := style.ExpandFourSides(values)
	if err != nil {
		return nil, err
	}
	return sides[:], nil
}

// border reads width, style and color in any order, each at most once.
// Omitted components are reset to their initial values.
func (c *Compiler) border(sh *style.Shorthand, ts *TokenStream) ([]valueCode, error) {
	var triple [3]valueCode // width, style, color
	var seen [3]bool
	props := sh.Longhands[:3]
	for !ts.AtEnd() {
		matched := false
		for i, id := range props {
			if seen[i] {
				continue
			}
			pos := ts.Pos()
			code, err := c.value(id, ts)
			if err != nil {
				ts.Reset(pos)
				continue
			}
			triple[i], seen[i], matched = code, true, true
			break
		}
		if !matched {
			return nil, fmt.Errorf("%s: unexpected token %s", sh.Name, ts.Peek())
		}
	}
	codes := make([]valueCode, 0, len(sh.Longhands))
	for len(codes) < len(sh.Longhands) {
		for i := range triple {
			if seen[i] {
				codes = append(codes, triple[i])
			} else {
				codes = append(codes, initialCode)
			}
		}
	}
	return codes, nil
}
