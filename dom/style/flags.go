package style

import "strings"

// ComputedValueFlags is a bitset of facts derived during the resolution of
// a computed style. Flags are set by the style builder or by style
// adjustment and are never cleared within a single resolution.
type ComputedValueFlags uint16

// Computed value flags. The bits are independent of each other.
const (
	// Text of this style is combined upright (text-combine-upright: all).
	IsTextCombined ComputedValueFlags = 1 << iota
	// The style belongs to a visited link or to a descendant of one.
	// Visited-dependent properties have to be read from the visited style.
	IsRelevantLinkVisited
	// Some ancestor-or-self has display: none.
	IsInDisplayNoneSubtree
	// The style belongs to a pseudo-element or a descendant of one.
	IsInPseudoElementSubtree
	// Some ancestor-or-self has text decoration lines.
	HasTextDecorationLines
	// The style is the style of the root element.
	IsRootElementStyle
)

// InheritedFlags are the flags a style builder copies from the parent style.
const InheritedFlags = IsInDisplayNoneSubtree | IsInPseudoElementSubtree | HasTextDecorationLines

// Contains is true if all of the flags of other are set.
func (f ComputedValueFlags) Contains(other ComputedValueFlags) bool {
	return f&other == other
}

// Inherited returns the subset of f which is copied from a parent style.
func (f ComputedValueFlags) Inherited() ComputedValueFlags {
	return f & InheritedFlags
}

var flagNames = []string{
	"text-combined",
	"relevant-link-visited",
	"in-display-none",
	"in-pseudo",
	"text-decoration",
	"root",
}

func (f ComputedValueFlags) String() string {
	if f == 0 {
		return "[]"
	}
	var names []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return "[" + strings.Join(names, "|") + "]"
}
