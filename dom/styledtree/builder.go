package styledtree

import (
	"errors"
	"strings"

	"github.com/npillmayer/csscascade/tree"
	"golang.org/x/net/html"
)

// ErrNoRootElement is returned for HTML documents without any element.
var ErrNoRootElement = errors.New("HTML document has no root element")

// BuildFromHTML creates an (unstyled) styled tree for an HTML parse tree.
// The root of the styled tree is the document's root element. Elements and
// text nodes are included; comments, doctypes and text nodes consisting of
// white space only are skipped.
func BuildFromHTML(doc *html.Node) (*tree.Node[*StyNode], error) {
	root := doc
	if root != nil && root.Type == html.DocumentNode {
		root = root.FirstChild
		for root != nil && root.Type != html.ElementNode {
			root = root.NextSibling
		}
	}
	if root == nil || root.Type != html.ElementNode {
		return nil, ErrNoRootElement
	}
	sroot := NewNodeForHTMLNode(root)
	build(sroot, root)
	return sroot, nil
}

func build(sn *tree.Node[*StyNode], h *html.Node) {
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			chnode := NewNodeForHTMLNode(ch)
			sn.AddChild(chnode)
			build(chnode, ch)
		case html.TextNode:
			if strings.TrimSpace(ch.Data) != "" {
				sn.AddChild(NewNodeForHTMLNode(ch))
			}
		}
	}
}
