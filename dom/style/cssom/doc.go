/*
Package cssom provides the CSS object model of the cascade: style sheets,
their rules, and the matching of rules against elements of an HTML parse
tree.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Parsing of
CSS syntax is left to external libraries; CSS handling is de-coupled by
introducing interfaces StyleSheet and Rule. A concrete implementation
wrapping the douceur CSS parser may be found in sub-package douceuradapter.
Simple rules may be created programmatically (see NewRule), which is how
the user-agent style sheet is built.

Selector matching relies on the great work of
https://godoc.org/github.com/andybalholm/cascadia.
A Matcher compiles the rules of a set of style sheets, tagged with their
origin, and returns the declarations matching an element, ordered by
cascade priority. It implements css.DeclarationMatcher.

Links

Pseudo-classes :link and :visited are not handed to cascadia. They are
stripped from selectors and turned into a requirement for the link state
of the cascade pass: rules with :link take part in the regular pass only,
rules with :visited in the visited pass only. Either kind of rule applies
only to elements with a relevant link, i.e. to links and their
descendants. Whether a link has actually been visited is never visible to
selector matching.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}
