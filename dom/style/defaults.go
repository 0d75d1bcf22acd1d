package style

import (
	"golang.org/x/net/html"
)

// Hint is a presentational default the host supplies for an element, e.g.
// 'display: block' for a <div>. Hints rank below every declaration of any
// stylesheet.
type Hint struct {
	Property PropertyID
	Value    Keyword
}

// HintsForHTMLNode returns the presentational hints for an HTML element.
// Non-element nodes have no hints.
func HintsForHTMLNode(node *html.Node) []Hint {
	if node == nil || node.Type != html.ElementNode {
		return nil
	}
	hints := []Hint{{PropDisplay, DisplayForHTMLNode(node)}}
	switch node.Data {
	case "b", "strong", "th", "h1", "h2", "h3", "h4", "h5", "h6":
		hints = append(hints, Hint{PropFontWeight, KeywordBold})
	case "i", "em", "cite", "var", "address":
		hints = append(hints, Hint{PropFontStyle, KeywordItalic})
	case "pre":
		hints = append(hints, Hint{PropWhiteSpace, KeywordPre})
	case "center":
		hints = append(hints, Hint{PropTextAlign, KeywordCenter})
	}
	return hints
}

// DisplayForHTMLNode returns the default `display` keyword for an HTML node.
func DisplayForHTMLNode(node *html.Node) Keyword {
	if node == nil {
		return KeywordNone
	}
	if node.Type == html.DocumentNode {
		return KeywordBlock
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return KeywordNone
	}
	switch node.Data {
	case "head", "script", "style", "title", "meta", "link", "template":
		return KeywordNone
	case "html", "aside", "body", "div", "h1", "h2", "h3", "h4", "h5", "h6",
		"ol", "ul", "section", "article", "header", "footer", "nav", "main",
		"p", "pre", "blockquote", "figure", "form", "address", "center", "hr":
		return KeywordBlock
	case "li":
		return KeywordListItem
	case "table":
		return KeywordTable
	case "tr":
		return KeywordTableRow
	case "td", "th":
		return KeywordTableCell
	case "thead":
		return KeywordTableHeaderGroup
	case "tbody":
		return KeywordTableRowGroup
	case "tfoot":
		return KeywordTableFooterGroup
	case "caption":
		return KeywordTableCaption
	case "i", "b", "span", "strong", "em", "a", "code", "cite", "var",
		"small", "sub", "sup", "abbr", "label", "img":
		return KeywordInline
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: inline",
		node.Data, node.Type)
	return KeywordInline
}
