package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'css.dom'
func tracer() tracing.Trace {
	return tracing.Select("css.dom")
}

// --- Property identifiers -------------------------------------------------

// PropertyID is a dense enumeration of the longhand properties known to the
// engine. It doubles as the opcode of compiled instructions.
type PropertyID uint16

// Longhand properties, in alphabetical order.
const (
	PropBackgroundColor PropertyID = iota
	PropBorderTopColor
	PropBorderRightColor
	PropBorderBottomColor
	PropBorderLeftColor
	PropBorderTopStyle
	PropBorderRightStyle
	PropBorderBottomStyle
	PropBorderLeftStyle
	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderBottomWidth
	PropBorderLeftWidth
	PropBorderSpacing
	PropBottom
	PropClear
	PropColor
	PropCounterIncrement
	PropCounterReset
	PropDirection
	PropDisplay
	PropFloat
	PropFontFamily
	PropFontSize
	PropFontStyle
	PropFontWeight
	PropHeight
	PropLeft
	PropLetterSpacing
	PropLineHeight
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropOpacity
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropPosition
	PropQuotes
	PropRight
	PropTextAlign
	PropTop
	PropVisibility
	PropWhiteSpace
	PropWidth
	PropWordSpacing
	PropZIndex

	PropertyCount int = iota // number of longhand properties
)

// Accepts is a set of value kinds a property's grammar accepts in addition
// to its keywords.
type Accepts uint16

// Value kinds
const (
	AcceptLength     Accepts = 1 << iota // <length>
	AcceptPercentage                     // <percentage>
	AcceptNumber                         // <number>
	AcceptInteger                        // <integer>
	AcceptColor                          // <color>
	AcceptNegative                       // negative lengths/numbers are allowed
	AcceptFamilies                       // comma separated font families
	AcceptQuotes                         // pairs of strings
	AcceptCounters                       // ident [integer]
	AcceptLengthPair                     // one or two lengths
)

// Has is true if all kinds of k are accepted.
func (a Accepts) Has(k Accepts) bool {
	return a&k == k
}

type propertyInfo struct {
	name      string
	group     string
	inherited bool
	accepts   Accepts
	keywords  []Keyword
}

var lengthAuto = []Keyword{KeywordAuto}
var borderStyles = []Keyword{KeywordNone, KeywordHidden, KeywordDotted, KeywordDashed,
	KeywordSolid, KeywordDouble, KeywordGroove, KeywordRidge, KeywordInset, KeywordOutset}
var borderWidths = []Keyword{KeywordThin, KeywordMedium, KeywordThick}
var colorKeywords = []Keyword{KeywordTransparent, KeywordCurrentColor}

const (
	lengthPct     = AcceptLength | AcceptPercentage
	signedLength  = AcceptLength | AcceptNegative
	signedLenPct  = AcceptLength | AcceptPercentage | AcceptNegative
	colorAccepted = AcceptColor
)

var properties = [PropertyCount]propertyInfo{
	PropBackgroundColor:   {"background-color", PGColor, false, colorAccepted, colorKeywords},
	PropBorderTopColor:    {"border-top-color", PGBorder, false, colorAccepted, colorKeywords},
	PropBorderRightColor:  {"border-right-color", PGBorder, false, colorAccepted, colorKeywords},
	PropBorderBottomColor: {"border-bottom-color", PGBorder, false, colorAccepted, colorKeywords},
	PropBorderLeftColor:   {"border-left-color", PGBorder, false, colorAccepted, colorKeywords},
	PropBorderTopStyle:    {"border-top-style", PGBorder, false, 0, borderStyles},
	PropBorderRightStyle:  {"border-right-style", PGBorder, false, 0, borderStyles},
	PropBorderBottomStyle: {"border-bottom-style", PGBorder, false, 0, borderStyles},
	PropBorderLeftStyle:   {"border-left-style", PGBorder, false, 0, borderStyles},
	PropBorderTopWidth:    {"border-top-width", PGBorder, false, AcceptLength, borderWidths},
	PropBorderRightWidth:  {"border-right-width", PGBorder, false, AcceptLength, borderWidths},
	PropBorderBottomWidth: {"border-bottom-width", PGBorder, false, AcceptLength, borderWidths},
	PropBorderLeftWidth:   {"border-left-width", PGBorder, false, AcceptLength, borderWidths},
	PropBorderSpacing:     {"border-spacing", PGBorder, true, AcceptLengthPair, nil},
	PropBottom:            {"bottom", PGDisplay, false, signedLenPct, lengthAuto},
	PropClear:             {"clear", PGDisplay, false, 0, []Keyword{KeywordNone, KeywordLeft, KeywordRight, KeywordBoth}},
	PropColor:             {"color", PGColor, true, colorAccepted, colorKeywords},
	PropCounterIncrement:  {"counter-increment", PGContent, false, AcceptCounters, []Keyword{KeywordNone}},
	PropCounterReset:      {"counter-reset", PGContent, false, AcceptCounters, []Keyword{KeywordNone}},
	PropDirection:         {"direction", PGText, true, 0, []Keyword{KeywordLTR, KeywordRTL}},
	PropDisplay: {"display", PGDisplay, false, 0, []Keyword{KeywordInline, KeywordBlock, KeywordListItem,
		KeywordInlineBlock, KeywordTable, KeywordInlineTable, KeywordTableRowGroup, KeywordTableHeaderGroup,
		KeywordTableFooterGroup, KeywordTableRow, KeywordTableColumnGroup, KeywordTableColumn,
		KeywordTableCell, KeywordTableCaption, KeywordNone, KeywordFlex, KeywordInlineFlex,
		KeywordGrid, KeywordInlineGrid, KeywordFlowRoot}},
	PropFloat:      {"float", PGDisplay, false, 0, []Keyword{KeywordLeft, KeywordRight, KeywordNone}},
	PropFontFamily: {"font-family", PGFont, true, AcceptFamilies, nil},
	PropFontSize: {"font-size", PGFont, true, lengthPct, []Keyword{KeywordXXSmall, KeywordXSmall,
		KeywordSmall, KeywordMedium, KeywordLarge, KeywordXLarge, KeywordXXLarge, KeywordLarger,
		KeywordSmaller}},
	PropFontStyle:     {"font-style", PGFont, true, 0, []Keyword{KeywordNormal, KeywordItalic, KeywordOblique}},
	PropFontWeight:    {"font-weight", PGFont, true, AcceptInteger, []Keyword{KeywordNormal, KeywordBold, KeywordBolder, KeywordLighter}},
	PropHeight:        {"height", PGDimension, false, lengthPct, lengthAuto},
	PropLeft:          {"left", PGDisplay, false, signedLenPct, lengthAuto},
	PropLetterSpacing: {"letter-spacing", PGText, true, signedLength, []Keyword{KeywordNormal}},
	PropLineHeight:    {"line-height", PGText, true, lengthPct | AcceptNumber, []Keyword{KeywordNormal}},
	PropMarginTop:     {"margin-top", PGMargins, false, signedLenPct, lengthAuto},
	PropMarginRight:   {"margin-right", PGMargins, false, signedLenPct, lengthAuto},
	PropMarginBottom:  {"margin-bottom", PGMargins, false, signedLenPct, lengthAuto},
	PropMarginLeft:    {"margin-left", PGMargins, false, signedLenPct, lengthAuto},
	PropOpacity:       {"opacity", PGColor, false, AcceptNumber, nil},
	PropPaddingTop:    {"padding-top", PGPadding, false, lengthPct, nil},
	PropPaddingRight:  {"padding-right", PGPadding, false, lengthPct, nil},
	PropPaddingBottom: {"padding-bottom", PGPadding, false, lengthPct, nil},
	PropPaddingLeft:   {"padding-left", PGPadding, false, lengthPct, nil},
	PropPosition: {"position", PGDisplay, false, 0, []Keyword{KeywordStatic, KeywordRelative,
		KeywordAbsolute, KeywordFixed, KeywordSticky}},
	PropQuotes: {"quotes", PGContent, true, AcceptQuotes, []Keyword{KeywordNone}},
	PropRight:  {"right", PGDisplay, false, signedLenPct, lengthAuto},
	PropTextAlign: {"text-align", PGText, true, 0, []Keyword{KeywordLeft, KeywordRight, KeywordCenter,
		KeywordJustify, KeywordStart, KeywordEnd}},
	PropTop:        {"top", PGDisplay, false, signedLenPct, lengthAuto},
	PropVisibility: {"visibility", PGDisplay, true, 0, []Keyword{KeywordVisible, KeywordHidden, KeywordCollapse}},
	PropWhiteSpace: {"white-space", PGText, true, 0, []Keyword{KeywordNormal, KeywordPre, KeywordNowrap,
		KeywordPreWrap, KeywordPreLine}},
	PropWidth:       {"width", PGDimension, false, lengthPct, lengthAuto},
	PropWordSpacing: {"word-spacing", PGText, true, signedLength, []Keyword{KeywordNormal}},
	PropZIndex:      {"z-index", PGDisplay, false, AcceptInteger | AcceptNegative, lengthAuto},
}

var propertiesByName = func() map[string]PropertyID {
	m := make(map[string]PropertyID, PropertyCount)
	for i, p := range properties {
		m[p.name] = PropertyID(i)
	}
	return m
}()

// PropertyByName returns the property id for a longhand property name.
// Names are matched case-insensitively.
func PropertyByName(name string) (PropertyID, bool) {
	id, ok := propertiesByName[strings.ToLower(name)]
	return id, ok
}

// IsValid is true for known properties.
func (id PropertyID) IsValid() bool {
	return int(id) < PropertyCount
}

func (id PropertyID) String() string {
	if !id.IsValid() {
		return fmt.Sprintf("property(%d)", uint16(id))
	}
	return properties[id].name
}

// IsInherited returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., an unset value takes the parent's value.
func (id PropertyID) IsInherited() bool {
	return id.IsValid() && properties[id].inherited
}

// Accepts returns the value kinds a property accepts besides its keywords.
func (id PropertyID) Accepts() Accepts {
	if !id.IsValid() {
		return 0
	}
	return properties[id].accepts
}

// Keywords returns the keyword vocabulary of a property. The position of
// a keyword within this slice is its value tag index in compiled code.
func (id PropertyID) Keywords() []Keyword {
	if !id.IsValid() {
		return nil
	}
	return properties[id].keywords
}

// KeywordIndex returns the position of k within the vocabulary of a property.
func (id PropertyID) KeywordIndex(k Keyword) (int, bool) {
	for i, kw := range id.Keywords() {
		if kw == k {
			return i, true
		}
	}
	return -1, false
}

// Group returns the style property group name for a style property.
// Example:
//    PropMarginTop.Group() => "Margins"
func (id PropertyID) Group() string {
	if !id.IsValid() {
		return PGX
	}
	return properties[id].group
}

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGFont      = "Font"
	PGContent   = "Content"
	PGX         = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// property name. Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if id, ok := PropertyByName(key); ok {
		return id.Group()
	}
	return PGX
}

// Properties returns all property ids of a group, in id order.
func Properties(group string) []PropertyID {
	var ids []PropertyID
	for i := range properties {
		if properties[i].group == group {
			ids = append(ids, PropertyID(i))
		}
	}
	return ids
}
