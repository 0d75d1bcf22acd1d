/*
Package tree implements a general purpose tree of mutable nodes, safe for
concurrent modification of children, and a parallel top-down traversal.

Styling of an HTML document involves operations on trees where a node
may only be processed after its parent. TopDownLevels processes a tree
level by level: all nodes of one depth are processed concurrently, and the
next level starts only after the previous one is complete.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'css.tree'.
func tracer() tracing.Trace {
	return tracing.Select("css.tree")
}
