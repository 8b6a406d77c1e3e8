/*
Package tree implements a generic tree of mutable nodes, together with a
Walker to operate concurrently on (sub-)trees.

Trees are used to hold the styled nodes of a document. Styles are
resolved top-down: the style of a parent has to be complete before the
styles of its children can be computed, but siblings are independent of
each other. A Walker exploits this and processes nodes with a bounded
number of concurrent workers.

	w := tree.NewWalker(root)
	future := w.TopDown(resolveStyle).Promise()
	nodes, err := future()

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.tree")
}
