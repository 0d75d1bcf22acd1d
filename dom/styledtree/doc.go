/*
Package styledtree is a straightforward default implementation of a styled document tree.

# Overview

A styled tree mirrors the elements and text nodes of an HTML parse tree.
Every node carries the computed style of its HTML node. Styling is done by
a Styler: for every element, the compiled declarations matching it are
cascaded and the result is resolved against the style of the parent node.
As a node can only be resolved after its parent, the tree is styled level
by level, with the nodes of a level styled concurrently.

# Configuration

A Styler reads the following configuration keys (see package
github.com/npillmayer/schuko):

	css.workers          number of concurrent workers per level (default: number of CPUs)
	css.strict           fail on malformed bytecode instead of dropping properties
	css.bytecode.limit   maximum size in bytes of compiled stylesheets (0 = unlimited)
	css.default.*        user agent defaults, see cascade.NewUADefaults

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'css.dom'.
func tracer() tracing.Trace {
	return tracing.Select("css.dom")
}
