package dom

import (
	"github.com/npillmayer/csscascade/dom/w3cdom"
	"golang.org/x/net/html"
)

// Predicate is a filter for DOM nodes.
type Predicate func(n w3cdom.Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
func NodeIsText(n w3cdom.Node) bool {
	return n != nil && n.NodeType() == html.TextNode
}

// IsElement returns a predicate matching elements with a given tag name.
// An empty tag matches all elements.
func IsElement(tag string) Predicate {
	return func(n w3cdom.Node) bool {
		if n == nil || n.NodeType() != html.ElementNode {
			return false
		}
		return tag == "" || n.NodeName() == tag
	}
}

// HasID returns a predicate matching the element with a given id.
func HasID(id string) Predicate {
	return func(n w3cdom.Node) bool {
		if n == nil || !n.HasAttributes() {
			return false
		}
		a := n.Attributes().GetNamedItem("id")
		return a != nil && a.Value() == id
	}
}

// FindAll collects the nodes of a DOM matching a predicate, in document
// order. root itself is included.
func FindAll(root w3cdom.Node, pred Predicate) []w3cdom.Node {
	var found []w3cdom.Node
	walk(root, func(n w3cdom.Node) bool {
		if pred(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// FindFirst returns the first node of a DOM in document order matching a
// predicate, or nil.
func FindFirst(root w3cdom.Node, pred Predicate) w3cdom.Node {
	var found w3cdom.Node
	walk(root, func(n w3cdom.Node) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// walk visits nodes depth first until visit returns false.
func walk(n w3cdom.Node, visit func(w3cdom.Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if !walk(ch, visit) {
			return false
		}
	}
	return true
}
