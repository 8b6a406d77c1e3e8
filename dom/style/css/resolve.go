package css

import "github.com/npillmayer/cascade/dom/style"

// Resolver resolves the computed styles of elements. A resolver holds no
// mutable state; it may be used concurrently for different elements, as long
// as the DeclarationMatcher may be.
type Resolver struct {
	matcher DeclarationMatcher
	opts    []Option
	props   props
}

// NewResolver creates a style resolver using a declaration matcher.
func NewResolver(matcher DeclarationMatcher, opts ...Option) *Resolver {
	assertThat(matcher != nil, "resolver needs a declaration matcher")
	r := &Resolver{matcher: matcher, opts: opts, props: defaultProps()}
	for _, option := range opts {
		r.props = option.config(r.props)
	}
	return r
}

// ResolveStyle resolves the style of an element or of one of its
// pseudo-elements. parent is the style of the parent element (for
// pseudo-elements: the style of the originating element); for the root
// element it may be nil.
//
// If visited styles are enabled, links and elements whose parent style
// has a visited style get a visited style as well, computed in a second
// cascade pass. Adjustments apply to the regular style only.
func (r *Resolver) ResolveStyle(el Element, parent *style.ComputedStyle, pseudo style.PseudoElement) *style.ComputedStyle {
	if parent == nil {
		parent = style.DefaultStyle()
	}
	flags := CascadeFlagsFor(el, pseudo, Unvisited)
	b := NewStyleBuilder(parent, pseudo)
	Cascade(r.matcher.MatchedDeclarations(el, pseudo, Unvisited), b, flags)
	if r.needsVisitedStyle(el, parent, pseudo) {
		vb := b.AddVisitedStyle()
		vflags := CascadeFlagsFor(el, pseudo, Visited)
		Cascade(r.matcher.MatchedDeclarations(el, pseudo, Visited), vb, vflags)
	}
	NewStyleAdjuster(el, r.opts...).Adjust(b, flags)
	cs := b.Build()
	tracer().Debugf("resolved style for %v%s, flags=%s, cascade=%s, visited=%v",
		el, pseudoSuffix(pseudo), cs.Flags(), flags, cs.HasVisitedStyle())
	return cs
}

// ResolveTextStyle resolves the style of a text run, which inherits all
// properties from its parent. Text styles get a visited style if the parent
// has one, but are not adjusted for visited links (see AdjustForVisited).
func (r *Resolver) ResolveTextStyle(parent *style.ComputedStyle) *style.ComputedStyle {
	if parent == nil {
		parent = style.DefaultStyle()
	}
	b := NewStyleBuilder(parent, style.PseudoNone)
	Cascade(nil, b, InheritAll)
	if r.props.visitedStyles && parent.HasVisitedStyle() {
		Cascade(nil, b.AddVisitedStyle(), InheritAll|VisitedDependentOnly)
	}
	AdjustForText(b)
	return b.Build()
}

func (r *Resolver) needsVisitedStyle(el Element, parent *style.ComputedStyle, pseudo style.PseudoElement) bool {
	if !r.props.visitedStyles {
		return false
	}
	return (pseudo == style.PseudoNone && el.IsLink()) || parent.HasVisitedStyle()
}

func pseudoSuffix(pseudo style.PseudoElement) string {
	if pseudo.IsPseudo() {
		return "::" + pseudo.String()
	}
	return ""
}
