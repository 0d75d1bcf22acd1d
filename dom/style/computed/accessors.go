package computed

import (
	"github.com/npillmayer/csscascade/dom/style"
)

// Side denotes one of the four edges of a box.
type Side uint8

// Box sides, in the order of CSS edge expansion.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

var (
	marginProps  = [4]style.PropertyID{style.PropMarginTop, style.PropMarginRight, style.PropMarginBottom, style.PropMarginLeft}
	paddingProps = [4]style.PropertyID{style.PropPaddingTop, style.PropPaddingRight, style.PropPaddingBottom, style.PropPaddingLeft}
	offsetProps  = [4]style.PropertyID{style.PropTop, style.PropRight, style.PropBottom, style.PropLeft}
)

// --- Generic typed getters --------------------------------------------------

// Keyword returns the keyword value of a property, if it holds one.
func (s *Style) Keyword(id style.PropertyID) (style.Keyword, bool) {
	k, ok := s.Get(id).(Keyword)
	return style.Keyword(k), ok
}

// Length returns the length value of a property, if it holds one.
func (s *Style) Length(id style.PropertyID) (Length, bool) {
	l, ok := s.Get(id).(Length)
	return l, ok
}

// Color returns the color value of a property, if it holds one.
// The keyword 'currentcolor' is resolved to the value of property color.
func (s *Style) Color(id style.PropertyID) (style.Color, bool) {
	switch v := s.Get(id).(type) {
	case Color:
		return style.Color(v), true
	case Keyword:
		switch style.Keyword(v) {
		case style.KeywordTransparent:
			return style.Transparent, true
		case style.KeywordCurrentColor:
			if id != style.PropColor {
				return s.Color(style.PropColor)
			}
		}
	}
	return 0, false
}

// --- Named getters -----------------------------------------------------------

// Display returns the display mode.
func (s *Style) Display() style.Keyword {
	k, _ := s.Keyword(style.PropDisplay)
	return k
}

// Position returns the positioning scheme.
func (s *Style) Position() style.Keyword {
	k, _ := s.Keyword(style.PropPosition)
	return k
}

// Float returns the float mode.
func (s *Style) Float() style.Keyword {
	k, _ := s.Keyword(style.PropFloat)
	return k
}

// Visibility returns the visibility.
func (s *Style) Visibility() style.Keyword {
	k, _ := s.Keyword(style.PropVisibility)
	return k
}

// TextColor returns the value of property color.
func (s *Style) TextColor() style.Color {
	c, _ := s.Color(style.PropColor)
	return c
}

// BackgroundColor returns the background color.
func (s *Style) BackgroundColor() style.Color {
	c, _ := s.Color(style.PropBackgroundColor)
	return c
}

// BorderColor returns the border color of a side, with currentcolor resolved.
func (s *Style) BorderColor(side Side) style.Color {
	c, _ := s.Color(style.BorderSideProperties(int(side) & 3)[2])
	return c
}

// BorderStyle returns the border style of a side.
func (s *Style) BorderStyle(side Side) style.Keyword {
	k, _ := s.Keyword(style.BorderSideProperties(int(side) & 3)[1])
	return k
}

// BorderWidth returns the border width of a side. Width keywords are
// returned as a keyword value, explicit widths as a length.
func (s *Style) BorderWidth(side Side) Value {
	return s.Get(style.BorderSideProperties(int(side) & 3)[0])
}

// Margin returns the margin of a side, either a length or 'auto'.
func (s *Style) Margin(side Side) Value {
	return s.Get(marginProps[side&3])
}

// Padding returns the padding of a side.
func (s *Style) Padding(side Side) Length {
	l, _ := s.Length(paddingProps[side&3])
	return l
}

// Offset returns one of the box offsets top, right, bottom, left.
func (s *Style) Offset(side Side) Value {
	return s.Get(offsetProps[side&3])
}

// Width returns the content width, a length or 'auto'.
func (s *Style) Width() Value {
	return s.Get(style.PropWidth)
}

// Height returns the content height, a length or 'auto'.
func (s *Style) Height() Value {
	return s.Get(style.PropHeight)
}

// FontFamily returns the list of font families.
func (s *Style) FontFamily() []string {
	l, _ := s.Get(style.PropFontFamily).(Strings)
	return l
}

// FontSize returns the font size, a length or a size keyword.
func (s *Style) FontSize() Value {
	return s.Get(style.PropFontSize)
}

// FontWeight returns the font weight, an integer or a keyword.
func (s *Style) FontWeight() Value {
	return s.Get(style.PropFontWeight)
}

// Opacity returns the opacity in the range 0…1.
func (s *Style) Opacity() Number {
	n, _ := s.Get(style.PropOpacity).(Number)
	return n
}

// ZIndex returns the stack level, an integer or 'auto'.
func (s *Style) ZIndex() Value {
	return s.Get(style.PropZIndex)
}

// Quotes returns the quote pairs, or nil for 'none'.
func (s *Style) Quotes() []string {
	l, _ := s.Get(style.PropQuotes).(Strings)
	return l
}

// CounterReset returns the counters reset by an element, or nil for 'none'.
func (s *Style) CounterReset() Counters {
	l, _ := s.Get(style.PropCounterReset).(Counters)
	return l
}

// CounterIncrement returns the counters incremented by an element, or nil
// for 'none'.
func (s *Style) CounterIncrement() Counters {
	l, _ := s.Get(style.PropCounterIncrement).(Counters)
	return l
}

// BorderSpacing returns the horizontal and vertical border spacing.
func (s *Style) BorderSpacing() LengthPair {
	lp, _ := s.Get(style.PropBorderSpacing).(LengthPair)
	return lp
}

// --- Named setters -----------------------------------------------------------

// SetKeyword sets a keyword value.
func (s *Style) SetKeyword(id style.PropertyID, k style.Keyword) error {
	return s.Set(id, Keyword(k))
}

// SetLength sets a length value.
func (s *Style) SetLength(id style.PropertyID, l Length) error {
	return s.Set(id, l)
}

// SetColor sets a color value.
func (s *Style) SetColor(id style.PropertyID, c style.Color) error {
	return s.Set(id, Color(c))
}

// SetDisplay sets the display mode.
func (s *Style) SetDisplay(k style.Keyword) error {
	return s.SetKeyword(style.PropDisplay, k)
}

// SetTextColor sets property color.
func (s *Style) SetTextColor(c style.Color) error {
	return s.SetColor(style.PropColor, c)
}

// SetMargin sets the margin of a side.
func (s *Style) SetMargin(side Side, v Value) error {
	return s.Set(marginProps[side&3], v)
}

// SetPadding sets the padding of a side.
func (s *Style) SetPadding(side Side, l Length) error {
	return s.Set(paddingProps[side&3], l)
}

// SetFontFamily sets the list of font families.
func (s *Style) SetFontFamily(families ...string) error {
	return s.Set(style.PropFontFamily, Strings(families))
}
