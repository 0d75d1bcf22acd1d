package styledtree

import (
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/csscascade/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	computedStyles      *computed.Style
	err                 error // styling error of this node
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.Payload.htmlNode
}

// Styles returns the computed style of a styled node. It is nil before the
// node has been styled, or if styling the node failed (see Err).
func (sn *StyNode) Styles() *computed.Style {
	return sn.computedStyles
}

// SetStyles sets the computed style of a styled node.
func (sn *StyNode) SetStyles(styles *computed.Style) {
	sn.computedStyles = styles
}

// Err returns the error which occured when styling this node, if any.
func (sn *StyNode) Err() error {
	return sn.err
}

// ParentStyles returns the computed style of the parent node, or nil for
// the root node.
func (sn *StyNode) ParentStyles() *computed.Style {
	if p := sn.Parent(); p != nil {
		return p.Payload.Styles()
	}
	return nil
}
