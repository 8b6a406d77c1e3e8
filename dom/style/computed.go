package style

import (
	"fmt"
	"strings"
)

// StyleValues is a set of computed property values, together with the
// custom properties and flags of a style.
//
// StyleValues is the type of the visited style nested in a ComputedStyle.
// As it has no visited style itself, visited styles nest one level only.
type StyleValues struct {
	props  *PropertyMap
	custom *CustomProperties
	flags  ComputedValueFlags
}

// NewStyleValues creates a set of style values. The property map and the
// custom properties are taken over, not copied. Clients must not modify them
// afterwards.
func NewStyleValues(props *PropertyMap, custom *CustomProperties, flags ComputedValueFlags) StyleValues {
	if props == nil {
		props = NewPropertyMap()
	}
	return StyleValues{props: props, custom: custom, flags: flags}
}

// Get returns the computed value of a property. Custom properties are
// looked up by their name, including the leading dashes. Unset properties
// return the property's initial value.
func (sv *StyleValues) Get(key string) Property {
	if IsCustomProperty(key) {
		v, _ := sv.custom.Get(key)
		return v
	}
	if p, ok := sv.props.Property(key); ok {
		return p
	}
	return InitialValue(key)
}

// Flags returns the computed value flags.
func (sv *StyleValues) Flags() ComputedValueFlags {
	return sv.flags
}

// Styles returns the property map of computed values. Clients must not
// modify it.
func (sv *StyleValues) Styles() *PropertyMap {
	return sv.props
}

// CustomProperties returns the custom properties. Clients must not modify them.
func (sv *StyleValues) CustomProperties() *CustomProperties {
	return sv.custom
}

// CustomProperty returns the value of a custom property.
func (sv *StyleValues) CustomProperty(name string) (Property, bool) {
	return sv.custom.Get(name)
}

// Equal compares property values, custom properties and flags.
func (sv *StyleValues) Equal(other *StyleValues) bool {
	if sv == nil || other == nil {
		return sv == other
	}
	return sv.flags == other.flags && sv.props.Equal(other.props) &&
		sv.custom.Equal(other.custom)
}

func (sv *StyleValues) String() string {
	var b strings.Builder
	b.WriteString("flags=" + sv.flags.String() + "\n")
	b.WriteString(sv.props.String())
	for _, name := range sv.custom.Names() {
		v, _ := sv.custom.Get(name)
		b.WriteString(fmt.Sprintf("\n%s: %s", name, v))
	}
	return b.String()
}

// --- Computed Style -------------------------------------------------------

// ComputedStyle is the result of resolving the style of an element or
// pseudo-element. A computed style is immutable.
//
// For links and their descendants, a computed style may own a visited
// style, holding the values of visited-dependent properties as if the
// relevant link were visited. The visited style is never consulted by Get;
// see VisitedDependentValue.
type ComputedStyle struct {
	StyleValues
	visited *StyleValues
	pseudo  PseudoElement
}

// NewComputedStyle creates a computed style from a set of style values and
// an optional visited style.
func NewComputedStyle(values StyleValues, visited *StyleValues, pseudo PseudoElement) *ComputedStyle {
	return &ComputedStyle{
		StyleValues: values,
		visited:     visited,
		pseudo:      pseudo,
	}
}

// HasVisitedStyle is true if this style owns a visited style.
func (cs *ComputedStyle) HasVisitedStyle() bool {
	return cs.visited != nil
}

// VisitedStyle returns the visited style or nil.
func (cs *ComputedStyle) VisitedStyle() *StyleValues {
	return cs.visited
}

// Pseudo returns the pseudo-element this style has been resolved for.
func (cs *ComputedStyle) Pseudo() PseudoElement {
	return cs.pseudo
}

// VisitedDependentValue returns the value of a property to be used for
// painting. If the style is flagged with IsRelevantLinkVisited and a
// visited style exists, visited-dependent properties are taken from the
// visited style.
func (cs *ComputedStyle) VisitedDependentValue(key string) Property {
	if cs.visited != nil && cs.flags.Contains(IsRelevantLinkVisited) && IsVisitedDependent(key) {
		return cs.visited.Get(key)
	}
	return cs.Get(key)
}

// Equal compares two computed styles, including their visited styles.
func (cs *ComputedStyle) Equal(other *ComputedStyle) bool {
	if cs == nil || other == nil {
		return cs == other
	}
	return cs.pseudo == other.pseudo && cs.StyleValues.Equal(&other.StyleValues) &&
		cs.visited.Equal(other.visited)
}

func (cs *ComputedStyle) String() string {
	s := cs.StyleValues.String()
	if cs.visited != nil {
		s += "\nvisited:\n" + cs.visited.String()
	}
	return s
}
