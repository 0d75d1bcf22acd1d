/*
Package dom provides a W3C-style view of styled HTML documents.

Overview

Styling of HTML involves operations on different trees. We implement the
various trees on top of a general purpose tree type (package tree), which
offers concurrent operations to manipulate tree nodes. The styled tree
(package dom/styledtree) holds the computed style of every element and
text node.

In a fully object oriented programming language we would subclass this
tree type for every type of tree in use, but in Go we resort to
composition, thus including a generic tree node in every node (sub-)type.
Clients interested in a DOM rather than in a tree get it from type
W3CNode, an implementation of interface w3cdom.Node wrapping a styled tree:

    root, err := styledtree.StyleDocument(ctx, htmldoc, conf)
    ...
    doc := dom.FromStyledTree(root)
    p := dom.FindFirst(doc, dom.HasID("intro"))
    color := p.ComputedStyles().GetPropertyValue("color")

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'css.dom'.
func tracer() tracing.Trace {
	return tracing.Select("css.dom")
}
