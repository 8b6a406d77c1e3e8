package css

import (
	"strings"

	"github.com/npillmayer/cascade/dom/style"
)

// StyleAdjuster applies the post-cascade fixups to the style of an element.
// Every adjustment modifies the adjusted style only, never the parent's.
// Adjustments are idempotent.
type StyleAdjuster struct {
	element Element // may be nil
	props   props
}

// NewStyleAdjuster creates an adjuster for the style of an element. el may
// be nil if the style does not belong to an element.
func NewStyleAdjuster(el Element, opts ...Option) *StyleAdjuster {
	a := &StyleAdjuster{element: el, props: defaultProps()}
	for _, option := range opts {
		a.props = option.config(a.props)
	}
	return a
}

// Adjust applies all adjustments, in a fixed order:
//
//     1. visited-link flag propagation
//     2. prohibited display: contents
//     3. fieldset content
//     4. float of out-of-flow elements
//     5. blockification, including the root element
//     6. overflow
//     7. border and outline widths
//     8. text decoration flag
//     9. display: none flag
//    10. pseudo-element flag
//    11. platform adjustments for native anonymous elements
//    12. additional adjustments
//
func (a *StyleAdjuster) Adjust(b *StyleBuilder, flags CascadeFlags) {
	AdjustForVisited(b, flags)
	AdjustForProhibitedDisplayContents(b, flags)
	AdjustForFieldsetContent(b, flags)
	AdjustForPosition(b, flags)
	Blockify(b, flags)
	AdjustForOverflow(b, flags)
	AdjustForBorderWidth(b, flags)
	AdjustForTextDecorationLines(b, flags)
	AdjustForDisplayNone(b, flags)
	AdjustForPseudoElement(b, flags)
	if a.element != nil && a.element.IsNativeAnonymous() {
		for _, f := range a.props.platform {
			f(b, flags)
		}
	}
	for _, f := range a.props.adjusters {
		f(b, flags)
	}
}

// AdjustForVisited marks a style with IsRelevantLinkVisited if it has a
// visited style and either belongs to a visited link (flag IsVisitedLink)
// or inherits from a style marked with IsRelevantLinkVisited.
//
// Styles without a visited style are never marked, even if their parent is.
//
// Text styles do not get this adjustment. This is questionable, as text of
// a visited link would need the mark as well, but consumers of text styles
// rely on it and look at the parent's style instead.
func AdjustForVisited(b *StyleBuilder, flags CascadeFlags) {
	if !b.HasVisitedStyle() {
		return
	}
	relevantLinkVisited := flags.Contains(IsVisitedLink) ||
		b.InheritedStyle().Flags().Contains(style.IsRelevantLinkVisited)
	if relevantLinkVisited {
		tracer().Debugf("adjust: relevant link visited")
		b.SetFlags(style.IsRelevantLinkVisited)
	}
}

// AdjustForProhibitedDisplayContents turns display: contents into inline
// for elements which may not have it, e.g. native anonymous elements.
func AdjustForProhibitedDisplayContents(b *StyleBuilder, flags CascadeFlags) {
	if flags.Contains(ProhibitDisplayContents) && b.Get("display") == "contents" {
		b.Set("display", "inline")
	}
}

// AdjustForFieldsetContent lets the anonymous content box of a fieldset
// take over flex and grid layout from the fieldset.
func AdjustForFieldsetContent(b *StyleBuilder, flags CascadeFlags) {
	if !flags.Contains(IsFieldsetContent) {
		return
	}
	switch b.InheritedStyle().Get("display") {
	case "flex", "inline-flex":
		b.Set("display", "flex")
	case "grid", "inline-grid":
		b.Set("display", "grid")
	}
}

// AdjustForPosition removes floating from absolutely positioned elements.
// See https://www.w3.org/TR/CSS2/visuren.html#dis-pos-flo .
func AdjustForPosition(b *StyleBuilder, flags CascadeFlags) {
	switch m := PositionOf(b).Match(); m {
	case m.Absolute(nil), m.Fixed(nil):
		if b.Get("float") != "none" {
			b.Set("float", "none")
		}
	}
}

// Blockify blockifies the display of the root element, of floats, of
// absolutely positioned elements and of children of flex and grid
// containers. The latter two cases are skipped with
// SkipRootAndItemBasedDisplayFixup.
func Blockify(b *StyleBuilder, flags CascadeFlags) {
	isRoot := flags.Contains(IsRootElement)
	if isRoot {
		b.SetFlags(style.IsRootElementStyle)
	}
	display := b.Get("display")
	if display == "none" {
		return
	}
	skip := flags.Contains(SkipRootAndItemBasedDisplayFixup)
	blockify := false
	if !skip {
		if isRoot {
			blockify = true
			if display == "contents" {
				b.Set("display", "block")
				return
			}
		} else if DisplayOf(b.InheritedStyle().Get("display")).IsItemContainer() {
			blockify = true
		}
	}
	outOfFlow := PositionPattern[bool](PositionOf(b)).OneOf(PositionPatterns[bool]{
		Absolute: true,
		Fixed:    true,
	})
	if b.Get("float") != "none" || outOfFlow {
		blockify = true
	}
	if blockify {
		b.Set("display", BlockifyDisplay(display))
	}
}

func isScrollable(overflow style.Property) bool {
	return overflow == "hidden" || overflow == "scroll" || overflow == "auto"
}

// AdjustForOverflow adjusts mixed overflow values: if one axis is
// scrollable, visible becomes auto and clip becomes hidden for the other
// axis. See https://www.w3.org/TR/css-overflow-3/#overflow-properties .
func AdjustForOverflow(b *StyleBuilder, flags CascadeFlags) {
	x, y := b.Get("overflow-x"), b.Get("overflow-y")
	if isScrollable(x) == isScrollable(y) {
		return
	}
	fix := func(key string, v style.Property) {
		switch v {
		case "visible":
			b.Set(key, "auto")
		case "clip":
			b.Set(key, "hidden")
		}
	}
	fix("overflow-x", x)
	fix("overflow-y", y)
}

var borderSides = []string{"top", "right", "bottom", "left"}

// AdjustForBorderWidth sets border widths to zero for border styles none
// and hidden, and the outline width for outline style none.
func AdjustForBorderWidth(b *StyleBuilder, flags CascadeFlags) {
	zero := style.DimenProperty(0)
	for _, side := range borderSides {
		bstyle := b.Get("border-" + side + "-style")
		if bstyle == "none" || bstyle == "hidden" {
			b.Set("border-"+side+"-width", zero)
		}
	}
	if b.Get("outline-style") == "none" {
		b.Set("outline-width", zero)
	}
}

// AdjustForTextDecorationLines flags styles with text decoration lines,
// which are propagated to descendants.
func AdjustForTextDecorationLines(b *StyleBuilder, flags CascadeFlags) {
	if line := b.Get("text-decoration-line"); line != "none" && !line.IsEmpty() {
		b.SetFlags(style.HasTextDecorationLines)
	}
}

// AdjustForDisplayNone flags styles with display: none, which is
// propagated to descendants.
func AdjustForDisplayNone(b *StyleBuilder, flags CascadeFlags) {
	if b.Get("display") == "none" {
		b.SetFlags(style.IsInDisplayNoneSubtree)
	}
}

// AdjustForPseudoElement flags styles of pseudo-elements, which is
// propagated to descendants. Anonymous boxes are not pseudo-elements.
func AdjustForPseudoElement(b *StyleBuilder, flags CascadeFlags) {
	if b.Pseudo().IsPseudo() && !b.Pseudo().IsAnonymousBox() {
		b.SetFlags(style.IsInPseudoElementSubtree)
	}
}

// AdjustForText adjusts the style of a text run. If the parent combines
// text upright in a vertical writing mode, the text is marked with
// IsTextCombined and laid out horizontally.
func AdjustForText(b *StyleBuilder) {
	parent := b.InheritedStyle()
	if parent.Get("text-combine-upright") == "all" && isVerticalWritingMode(parent.Get("writing-mode")) {
		b.SetFlags(style.IsTextCombined)
		b.Set("writing-mode", "horizontal-tb")
	}
}

func isVerticalWritingMode(wm style.Property) bool {
	return strings.HasPrefix(wm.String(), "vertical") || strings.HasPrefix(wm.String(), "sideways")
}
