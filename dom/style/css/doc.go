/*
Package css resolves computed styles.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

Resolving the style of an element is done in three steps:

    cascade   ⟶  adjust  ⟶  build

The cascade walks the properties in a fixed order and determines, for each of
them, the value of the winning declaration, the inherited value or the
initial value. Afterwards a fixed sequence of adjustments is applied, which
encode exceptions from ordinary cascading, like blockification of flex
items.

For links and their descendants, a second cascade pass computes the visited
style, restricted to visited-dependent properties. Whether it may be used
for painting is recorded by flag IsRelevantLinkVisited on the regular style
only, during adjustment. Values readable by scripts never reveal the
visited state of a link.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.css'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.css")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("css: "+msg, msgargs...)
		panic(msg)
	}
}
