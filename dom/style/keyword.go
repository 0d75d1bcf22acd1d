package style

import "fmt"

// Keyword is an identifier value of a CSS property, e.g. 'auto' or
// 'inline-block'. Keywords form a vocabulary shared by all properties;
// each property restricts it to a subset (see PropertyID.Keywords).
type Keyword uint16

// Keywords
const (
	NoKeyword Keyword = iota
	KeywordAbsolute
	KeywordAuto
	KeywordBlock
	KeywordBold
	KeywordBolder
	KeywordBoth
	KeywordCenter
	KeywordCollapse
	KeywordCurrentColor
	KeywordDashed
	KeywordDotted
	KeywordDouble
	KeywordEnd
	KeywordFixed
	KeywordFlex
	KeywordFlowRoot
	KeywordGrid
	KeywordGroove
	KeywordHidden
	KeywordInline
	KeywordInlineBlock
	KeywordInlineFlex
	KeywordInlineGrid
	KeywordInlineTable
	KeywordInset
	KeywordItalic
	KeywordJustify
	KeywordLarge
	KeywordLarger
	KeywordLeft
	KeywordLighter
	KeywordListItem
	KeywordLTR
	KeywordMedium
	KeywordNone
	KeywordNormal
	KeywordNowrap
	KeywordOblique
	KeywordOutset
	KeywordPre
	KeywordPreLine
	KeywordPreWrap
	KeywordRelative
	KeywordRidge
	KeywordRight
	KeywordRTL
	KeywordSmall
	KeywordSmaller
	KeywordSolid
	KeywordStart
	KeywordStatic
	KeywordSticky
	KeywordTable
	KeywordTableCaption
	KeywordTableCell
	KeywordTableColumn
	KeywordTableColumnGroup
	KeywordTableFooterGroup
	KeywordTableHeaderGroup
	KeywordTableRow
	KeywordTableRowGroup
	KeywordThick
	KeywordThin
	KeywordTransparent
	KeywordVisible
	KeywordXLarge
	KeywordXSmall
	KeywordXXLarge
	KeywordXXSmall

	keywordCount
)

var keywordNames = [keywordCount]string{
	NoKeyword:               "",
	KeywordAbsolute:         "absolute",
	KeywordAuto:             "auto",
	KeywordBlock:            "block",
	KeywordBold:             "bold",
	KeywordBolder:           "bolder",
	KeywordBoth:             "both",
	KeywordCenter:           "center",
	KeywordCollapse:         "collapse",
	KeywordCurrentColor:     "currentcolor",
	KeywordDashed:           "dashed",
	KeywordDotted:           "dotted",
	KeywordDouble:           "double",
	KeywordEnd:              "end",
	KeywordFixed:            "fixed",
	KeywordFlex:             "flex",
	KeywordFlowRoot:         "flow-root",
	KeywordGrid:             "grid",
	KeywordGroove:           "groove",
	KeywordHidden:           "hidden",
	KeywordInline:           "inline",
	KeywordInlineBlock:      "inline-block",
	KeywordInlineFlex:       "inline-flex",
	KeywordInlineGrid:       "inline-grid",
	KeywordInlineTable:      "inline-table",
	KeywordInset:            "inset",
	KeywordItalic:           "italic",
	KeywordJustify:          "justify",
	KeywordLarge:            "large",
	KeywordLarger:           "larger",
	KeywordLeft:             "left",
	KeywordLighter:          "lighter",
	KeywordListItem:         "list-item",
	KeywordLTR:              "ltr",
	KeywordMedium:           "medium",
	KeywordNone:             "none",
	KeywordNormal:           "normal",
	KeywordNowrap:           "nowrap",
	KeywordOblique:          "oblique",
	KeywordOutset:           "outset",
	KeywordPre:              "pre",
	KeywordPreLine:          "pre-line",
	KeywordPreWrap:          "pre-wrap",
	KeywordRelative:         "relative",
	KeywordRidge:            "ridge",
	KeywordRight:            "right",
	KeywordRTL:              "rtl",
	KeywordSmall:            "small",
	KeywordSmaller:          "smaller",
	KeywordSolid:            "solid",
	KeywordStart:            "start",
	KeywordStatic:           "static",
	KeywordSticky:           "sticky",
	KeywordTable:            "table",
	KeywordTableCaption:     "table-caption",
	KeywordTableCell:        "table-cell",
	KeywordTableColumn:      "table-column",
	KeywordTableColumnGroup: "table-column-group",
	KeywordTableFooterGroup: "table-footer-group",
	KeywordTableHeaderGroup: "table-header-group",
	KeywordTableRow:         "table-row",
	KeywordTableRowGroup:    "table-row-group",
	KeywordThick:            "thick",
	KeywordThin:             "thin",
	KeywordTransparent:      "transparent",
	KeywordVisible:          "visible",
	KeywordXLarge:           "x-large",
	KeywordXSmall:           "x-small",
	KeywordXXLarge:          "xx-large",
	KeywordXXSmall:          "xx-small",
}

var keywordsByName = func() map[string]Keyword {
	m := make(map[string]Keyword, keywordCount)
	for k := Keyword(1); k < keywordCount; k++ {
		m[keywordNames[k]] = k
	}
	return m
}()

// KeywordFromString returns the keyword for a (lower-case) identifier.
func KeywordFromString(ident string) (Keyword, bool) {
	k, ok := keywordsByName[ident]
	return k, ok
}

func (k Keyword) String() string {
	if k < keywordCount {
		return keywordNames[k]
	}
	return fmt.Sprintf("keyword(%d)", uint16(k))
}
