package css

import "github.com/npillmayer/cascade/dom/style"

// Element is the view of a DOM element the style resolver needs.
// Implementations lacking a concept (e.g., visited links) return false.
type Element interface {
	IsRoot() bool
	IsLink() bool
	IsVisitedLink() bool
	IsNativeAnonymous() bool
	SkipRootAndItemBasedDisplayFixup() bool
}

// VisitedMode selects the style pass: the regular one or the one computing
// the visited style.
type VisitedMode uint8

// Visited modes.
const (
	Unvisited VisitedMode = iota
	Visited
)

func (m VisitedMode) String() string {
	if m == Visited {
		return "visited"
	}
	return "unvisited"
}

// DeclarationMatcher returns the declarations matching an element or one
// of its pseudo-elements, ordered highest priority first. In mode Visited,
// rules are matched as if the relevant link of el were visited; otherwise
// as if it were unvisited.
type DeclarationMatcher interface {
	MatchedDeclarations(el Element, pseudo style.PseudoElement, mode VisitedMode) style.Declarations
}

// CascadeFlagsFor assembles the cascade flags for resolving the style of
// an element or a pseudo-element of it.
//
// IsVisitedLink is set for the regular pass of visited links only.
// Pseudo-elements cannot be links, therefore it is never set for them.
func CascadeFlagsFor(el Element, pseudo style.PseudoElement, mode VisitedMode) CascadeFlags {
	var flags CascadeFlags
	if pseudo == style.PseudoNone && el.IsRoot() {
		flags |= IsRootElement
	}
	if el.SkipRootAndItemBasedDisplayFixup() {
		flags |= SkipRootAndItemBasedDisplayFixup
	}
	if pseudo == style.PseudoNone && mode == Unvisited && el.IsVisitedLink() {
		flags |= IsVisitedLink
	}
	if el.IsNativeAnonymous() || pseudo.IsAnonymousBox() {
		flags |= ProhibitDisplayContents
	}
	if pseudo == style.PseudoFieldsetContent {
		flags |= IsFieldsetContent
	}
	if mode == Visited {
		flags |= VisitedDependentOnly
	}
	return flags
}
