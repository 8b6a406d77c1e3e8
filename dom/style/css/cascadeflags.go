package css

import "strings"

// CascadeFlags alter the behaviour of a single cascade and adjustment call.
// The bits are independent of each other; callers are responsible for
// meaningful combinations.
type CascadeFlags uint8

// Cascade flags.
const (
	// Inherit all properties from the parent style if not declared,
	// including non-inherited ones.
	InheritAll CascadeFlags = 1 << iota
	// Do not blockify the root element and the children of flex/grid containers.
	SkipRootAndItemBasedDisplayFixup
	// Cascade visited-dependent properties only.
	VisitedDependentOnly
	// The element is the root element of the document.
	IsRootElement
	// display: contents is not allowed for the element.
	ProhibitDisplayContents
	// The style is for the anonymous box wrapping the content of a fieldset.
	IsFieldsetContent
	// The element is a visited link and the regular style is being resolved.
	IsVisitedLink
)

// Contains checks if all flags of other are set.
func (cf CascadeFlags) Contains(other CascadeFlags) bool {
	return cf&other == other
}

var cascadeFlagNames = []string{
	"inherit-all",
	"skip-fixup",
	"visited-only",
	"root",
	"no-contents",
	"fieldset-content",
	"visited-link",
}

func (cf CascadeFlags) String() string {
	if cf == 0 {
		return "[]"
	}
	var names []string
	for i, name := range cascadeFlagNames {
		if cf&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return "[" + strings.Join(names, "|") + "]"
}
