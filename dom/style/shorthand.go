package style

import (
	"fmt"
	"strings"
)

// ShorthandKind classifies the expansion rule of a shorthand property.
type ShorthandKind uint8

// Kinds of shorthands
const (
	FourSides  ShorthandKind = iota + 1 // 1–4 values distributed to top, right, bottom, left
	BorderSide                          // width, style and color of one side, in any order
	BorderAll                           // width, style and color for all four sides
)

// Shorthand describes a shorthand property and the longhands it expands to.
// For FourSides the longhands are ordered top, right, bottom, left. For
// border shorthands they come in groups of (width, style, color) per side,
// sides again ordered top, right, bottom, left.
type Shorthand struct {
	Name      string
	Kind      ShorthandKind
	Longhands []PropertyID
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

var shorthands = map[string]*Shorthand{
	"margin":        fourSides("margin", "", FourSides),
	"padding":       fourSides("padding", "", FourSides),
	"border-color":  fourSides("border", "color", FourSides),
	"border-style":  fourSides("border", "style", FourSides),
	"border-width":  fourSides("border", "width", FourSides),
	"border-top":    borderSides("border-top", 0),
	"border-right":  borderSides("border-right", 1),
	"border-bottom": borderSides("border-bottom", 2),
	"border-left":   borderSides("border-left", 3),
	"border":        borderSides("border", 0, 1, 2, 3),
}

// ShorthandByName returns the shorthand description for a property name.
func ShorthandByName(name string) (*Shorthand, bool) {
	sh, ok := shorthands[strings.ToLower(name)]
	return sh, ok
}

// BorderSideProperties returns the width, style and color longhands of a
// border side (0 = top, 1 = right, 2 = bottom, 3 = left).
func BorderSideProperties(side int) [3]PropertyID {
	return [3]PropertyID{
		mustProperty(p("border", "width", fourDirs[side])),
		mustProperty(p("border", "style", fourDirs[side])),
		mustProperty(p("border", "color", fourDirs[side])),
	}
}

// ExpandFourSides distributes 1–4 values to the sides top, right, bottom
// and left, following the CSS edge-expansion rule:
//
//    1 value  → all four sides
//    2 values → top/bottom, right/left
//    3 values → top, right/left, bottom
//    4 values → top, right, bottom, left
func ExpandFourSides[T any](values []T) ([4]T, error) {
	var r [4]T
	l := len(values)
	if l == 0 || l > 4 {
		return r, fmt.Errorf("expecting 1-4 values, have %d", l)
	}
	r[0] = values[0]
	if l >= 2 {
		r[1] = values[1]
		if l >= 3 {
			r[2] = values[2]
			if l == 4 {
				r[3] = values[3]
			} else {
				r[3] = values[1]
			}
		} else {
			r[2] = values[0]
			r[3] = values[1]
		}
	} else {
		r[1] = values[0]
		r[2] = values[0]
		r[3] = values[0]
	}
	return r, nil
}

func fourSides(pre, suf string, kind ShorthandKind) *Shorthand {
	sh := &Shorthand{Name: pre, Kind: kind}
	if suf != "" {
		sh.Name = pre + "-" + suf
	}
	for _, dir := range fourDirs {
		sh.Longhands = append(sh.Longhands, mustProperty(p(pre, suf, dir)))
	}
	return sh
}

func borderSides(name string, sides ...int) *Shorthand {
	sh := &Shorthand{Name: name, Kind: BorderSide}
	if len(sides) > 1 {
		sh.Kind = BorderAll
	}
	for _, side := range sides {
		props := BorderSideProperties(side)
		sh.Longhands = append(sh.Longhands, props[:]...)
	}
	return sh
}

func mustProperty(name string) PropertyID {
	id, ok := PropertyByName(name)
	if !ok {
		panic(fmt.Sprintf("styling: unknown longhand property %q", name))
	}
	return id
}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
