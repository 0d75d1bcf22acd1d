package dom

import (
	"context"
	"io"

	"github.com/npillmayer/csscascade/dom/styledtree"
	"github.com/npillmayer/schuko"
	"golang.org/x/net/html"
)

// Parse reads an HTML document and returns it as a styled DOM. Styles
// are taken from the document's <style> elements and style attributes.
// conf may be nil; see package styledtree for configuration keys.
//
// If single nodes could not be styled, the DOM is returned together with
// the error.
func Parse(ctx context.Context, r io.Reader, conf schuko.Configuration) (*W3CNode, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	root, err := styledtree.StyleDocument(ctx, h, conf)
	if root == nil {
		return nil, err
	}
	tracer().Debugf("parsed and styled document")
	return FromStyledTree(root), err
}
