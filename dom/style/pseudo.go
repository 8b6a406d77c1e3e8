package style

// PseudoElement identifies a pseudo-element a style is resolved for.
type PseudoElement uint8

// Pseudo-elements. PseudoFieldsetContent denotes the anonymous box
// wrapping the content of a fieldset.
const (
	PseudoNone PseudoElement = iota
	PseudoBefore
	PseudoAfter
	PseudoFirstLine
	PseudoFirstLetter
	PseudoMarker
	PseudoFieldsetContent
)

var pseudoNames = [...]string{"", "before", "after", "first-line", "first-letter",
	"marker", "-fieldset-content"}

func (pe PseudoElement) String() string {
	if int(pe) < len(pseudoNames) {
		return pseudoNames[pe]
	}
	return "?"
}

// IsPseudo is true for every pseudo-element except PseudoNone.
func (pe PseudoElement) IsPseudo() bool {
	return pe != PseudoNone
}

// IsAnonymousBox is true for pseudo-elements which denote internal
// anonymous boxes, i.e. which are not visible to authors.
func (pe PseudoElement) IsAnonymousBox() bool {
	return pe == PseudoFieldsetContent
}

// ParsePseudoElement converts the name of a pseudo-element, as found in a
// selector, to a PseudoElement. Leading colons are ignored.
func ParsePseudoElement(name string) (PseudoElement, bool) {
	for len(name) > 0 && name[0] == ':' {
		name = name[1:]
	}
	if name == "" {
		return PseudoNone, true
	}
	for i, n := range pseudoNames {
		if i > 0 && n == name {
			return PseudoElement(i), true
		}
	}
	return PseudoNone, false
}
