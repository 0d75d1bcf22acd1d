package dom

import (
	"errors"
	"strings"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/csscascade/dom/styledtree"
	"github.com/npillmayer/csscascade/dom/w3cdom"
	"github.com/npillmayer/csscascade/tree"
	"golang.org/x/net/html"
)

// ErrNilNode is returned for operations on an empty node.
var ErrNilNode = errors.New("DOM node is nil")

// W3CNode is a type implementing the w3cdom.Node interface on top of a
// styled tree.
type W3CNode struct {
	stylednode *tree.Node[*styledtree.StyNode]
}

var _ w3cdom.Node = &W3CNode{}

// FromStyledTree wraps a node of a styled tree. It returns nil for nil.
func FromStyledTree(sn *tree.Node[*styledtree.StyNode]) *W3CNode {
	if sn == nil {
		return nil
	}
	return &W3CNode{stylednode: sn}
}

// StyledNode returns the underlying node of the styled tree.
func (w *W3CNode) StyledNode() *tree.Node[*styledtree.StyNode] {
	if w == nil {
		return nil
	}
	return w.stylednode
}

// HTMLNode returns the HTML parse tree node of this DOM node.
func (w *W3CNode) HTMLNode() *html.Node {
	if w == nil {
		return nil
	}
	return styledtree.Node(w.stylednode).HTMLNode()
}

// NodeType is part of interface w3cdom.Node.
func (w *W3CNode) NodeType() html.NodeType {
	if w == nil {
		return html.ErrorNode
	}
	return w.HTMLNode().Type
}

// NodeName is part of interface w3cdom.Node. Elements return their tag
// name, other nodes a name starting with '#'.
func (w *W3CNode) NodeName() string {
	if w == nil {
		return ""
	}
	h := w.HTMLNode()
	switch h.Type {
	case html.ElementNode:
		return h.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	}
	return "#undefined"
}

// NodeValue is part of interface w3cdom.Node. It returns the text of text
// nodes and "" for all other nodes.
func (w *W3CNode) NodeValue() string {
	if w == nil || w.HTMLNode().Type != html.TextNode {
		return ""
	}
	return w.HTMLNode().Data
}

// HasAttributes is part of interface w3cdom.Node.
func (w *W3CNode) HasAttributes() bool {
	return w != nil && len(w.HTMLNode().Attr) > 0
}

// ParentNode is part of interface w3cdom.Node.
func (w *W3CNode) ParentNode() w3cdom.Node {
	if w == nil {
		return nil
	}
	if p := w.stylednode.Parent(); p != nil {
		return FromStyledTree(p)
	}
	return nil
}

// HasChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) HasChildNodes() bool {
	return w != nil && w.stylednode.ChildCount() > 0
}

// ChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	return w.children(false)
}

// Children is part of interface w3cdom.Node. It lists element children only.
func (w *W3CNode) Children() w3cdom.NodeList {
	return w.children(true)
}

func (w *W3CNode) children(elementsOnly bool) *nodeList {
	if w == nil {
		return &nodeList{}
	}
	chs := w.stylednode.Children()
	list := &nodeList{nodes: make([]*W3CNode, 0, len(chs))}
	for _, ch := range chs {
		if elementsOnly && styledtree.Node(ch).HTMLNode().Type != html.ElementNode {
			continue
		}
		list.nodes = append(list.nodes, FromStyledTree(ch))
	}
	return list
}

// FirstChild is part of interface w3cdom.Node.
func (w *W3CNode) FirstChild() w3cdom.Node {
	if w == nil {
		return nil
	}
	if ch, ok := w.stylednode.Child(0); ok && ch != nil {
		return FromStyledTree(ch)
	}
	return nil
}

// NextSibling is part of interface w3cdom.Node.
func (w *W3CNode) NextSibling() w3cdom.Node {
	if w == nil {
		return nil
	}
	p := w.stylednode.Parent()
	if p == nil {
		return nil
	}
	i := p.IndexOfChild(w.stylednode)
	if i < 0 {
		return nil
	}
	if sibling, ok := p.Child(i + 1); ok && sibling != nil {
		return FromStyledTree(sibling)
	}
	return nil
}

// Attributes is part of interface w3cdom.Node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	if w == nil {
		return emptyNodeMap
	}
	return nodeMap(w.HTMLNode().Attr)
}

// ComputedStyles is part of interface w3cdom.Node.
func (w *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	if w == nil {
		return computedStyles{}
	}
	return computedStyles{styledtree.Node(w.stylednode).Styles()}
}

// TextContent is part of interface w3cdom.Node. It concatenates the text
// of all descendent text nodes of the HTML parse tree, including white
// space.
func (w *W3CNode) TextContent() (string, error) {
	if w == nil {
		return "", ErrNilNode
	}
	var sb strings.Builder
	collectText(w.HTMLNode(), &sb)
	return sb.String(), nil
}

func collectText(h *html.Node, sb *strings.Builder) {
	if h.Type == html.TextNode {
		sb.WriteString(h.Data)
		return
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		collectText(ch, sb)
	}
}

// --- Node lists -------------------------------------------------------

type nodeList struct {
	nodes []*W3CNode
}

func (nl *nodeList) Length() int {
	return len(nl.nodes)
}

func (nl *nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(nl.nodes) {
		return nil
	}
	return nl.nodes[i]
}

func (nl *nodeList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range nl.nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.NodeName())
	}
	sb.WriteByte(']')
	return sb.String()
}

// --- Attributes -------------------------------------------------------

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string { return a.a.Namespace }
func (a attr) Key() string       { return a.a.Key }
func (a attr) Value() string     { return a.a.Val }

type nodeMap []html.Attribute

var emptyNodeMap = nodeMap(nil)

func (m nodeMap) Length() int {
	return len(m)
}

func (m nodeMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return attr{m[i]}
}

func (m nodeMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

// --- Styles -----------------------------------------------------------

type computedStyles struct {
	styles *computed.Style
}

func (cs computedStyles) GetPropertyValue(name string) string {
	id, ok := style.PropertyByName(name)
	if !ok || cs.styles == nil {
		return ""
	}
	if v := cs.styles.Get(id); v != nil {
		return v.String()
	}
	return ""
}

func (cs computedStyles) Styles() *computed.Style {
	return cs.styles
}
