/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

A styled tree mirrors the elements and text runs of an HTML parse tree.
Every styled node carries the computed style of its HTML node, plus the
styles of pseudo-elements (::before, ::after) where style rules exist for
them. Styled nodes are built on top of the generic tree of package tree,
which allows for resolving styles concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
