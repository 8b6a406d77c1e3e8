/*
Package dom styles HTML documents.

Overview

StyleDocument takes an HTML parse tree and creates a styled tree from it.
Style sheets are collected from the built-in user-agent style sheet,
from user style sheets and from the <style> elements of the document.
Every element and every text run is then resolved to its computed style,
top-down and concurrently for siblings.

Links are elements which may be in a visited state. Which links count as
visited is decided by a History, handed to StyleDocument as an option.
Visited links (and their descendants) carry a separate visited style in
addition to their regular style; consumers painting a node should use
styledtree.StyNode.GetPropertyValue, which respects the link state.

Tree Implementation

Styling of HTML/CSS involves a lot of operations on different trees.
We implement the various trees on top of a general purpose tree type
(package tree), which offers concurrent operations to manipulate
tree nodes.

In a fully object oriented programming language we would subclass this
tree type for every type of tree in use (styled tree, layout tree,
render tree), but in Go we resort to composition, thus including a
generic tree node in every node (sub-)type. The downside of this approach
is that we will have to provide an adapter for every node sub-type
to return the sub-type from the generic type.

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

// tracer will return a tracer. We are tracing to 'cascade.dom'
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
