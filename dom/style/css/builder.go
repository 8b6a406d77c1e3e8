package css

import (
	"strings"

	"github.com/npillmayer/cascade/dom/style"
)

// StyleBuilder accumulates computed values while resolving the style of an
// element. A builder is used for one resolution only.
//
// A builder starts out sharing every property group: inherited groups with
// the parent style and non-inherited groups with the initial values. Groups
// are forked on the first write of a differing value.
//
// A builder may hold a nested builder for the visited style. Nested
// builders never hold a further visited builder.
type StyleBuilder struct {
	parent       *style.ComputedStyle // borrowed, never modified
	inherited    *style.StyleValues   // values to inherit from
	pseudo       style.PseudoElement
	pmap         *style.PropertyMap
	forked       map[string]bool
	custom       *style.CustomProperties
	customForked bool
	flags        style.ComputedValueFlags
	visited      *StyleBuilder
	isVisited    bool
	built        bool
}

// NewStyleBuilder creates a builder for a style with a given parent style.
// If parent is nil, the default style will serve as the parent.
func NewStyleBuilder(parent *style.ComputedStyle, pseudo style.PseudoElement) *StyleBuilder {
	if parent == nil {
		parent = style.DefaultStyle()
	}
	b := newBuilder(parent, &parent.StyleValues, pseudo)
	b.flags = parent.Flags().Inherited()
	return b
}

func newBuilder(parent *style.ComputedStyle, inherited *style.StyleValues, pseudo style.PseudoElement) *StyleBuilder {
	b := &StyleBuilder{
		parent:    parent,
		inherited: inherited,
		pseudo:    pseudo,
		pmap:      style.NewPropertyMap(),
		forked:    make(map[string]bool),
		custom:    inherited.CustomProperties(),
	}
	initial := style.InitialValues()
	for _, name := range initial.GroupNames() {
		if style.IsGroupInherited(name) {
			if g := inherited.Styles().Group(name); g != nil {
				b.pmap.SetGroup(g)
				continue
			}
		}
		b.pmap.SetGroup(initial.Group(name))
	}
	return b
}

// AddVisitedStyle creates the nested builder for the visited style. The
// visited style inherits from the parent's visited style, if present, and
// from the parent style otherwise. It starts out with the values
// accumulated so far by b, so b should have completed its cascade.
//
// The visited style is never adjusted. Only its visited-dependent values
// are read (see style.ComputedStyle.VisitedDependentValue), and these are
// not touched by any adjustment; all other values keep their cascaded,
// unadjusted state.
func (b *StyleBuilder) AddVisitedStyle() *StyleBuilder {
	assertThat(!b.isVisited, "visited style builder may not have a visited style")
	assertThat(!b.built, "style builder already used")
	inherited := b.parent.VisitedStyle()
	if inherited == nil {
		inherited = &b.parent.StyleValues
	}
	v := &StyleBuilder{
		parent:    b.parent,
		inherited: inherited,
		pseudo:    b.pseudo,
		pmap:      b.pmap.ShallowCopy(),
		forked:    make(map[string]bool),
		custom:    b.custom,
		flags:     b.flags,
		isVisited: true,
	}
	b.forked = make(map[string]bool) // groups are shared with v from now on
	b.customForked = false
	b.visited = v
	return v
}

// HasVisitedStyle is true if a visited style is tracked for the element.
func (b *StyleBuilder) HasVisitedStyle() bool {
	return b.visited != nil
}

// VisitedStyle returns the nested builder for the visited style, or nil.
func (b *StyleBuilder) VisitedStyle() *StyleBuilder {
	return b.visited
}

// IsVisitedStyle is true for nested builders of visited styles.
func (b *StyleBuilder) IsVisitedStyle() bool {
	return b.isVisited
}

// InheritedStyle returns the parent style. It is never nil.
func (b *StyleBuilder) InheritedStyle() *style.ComputedStyle {
	return b.parent
}

// InheritedValues returns the values inheritance draws from. For visited
// style builders this is the parent's visited style, if present.
func (b *StyleBuilder) InheritedValues() *style.StyleValues {
	return b.inherited
}

// Pseudo returns the pseudo-element the style is built for.
func (b *StyleBuilder) Pseudo() style.PseudoElement {
	return b.pseudo
}

// Get returns the current value of a property.
func (b *StyleBuilder) Get(key string) style.Property {
	if style.IsCustomProperty(key) {
		v, _ := b.custom.Get(key)
		return v
	}
	if p, ok := b.pmap.Property(key); ok {
		return p
	}
	return style.InitialValue(key)
}

// Set records the value of a property. The last write wins.
func (b *StyleBuilder) Set(key string, value style.Property) {
	assertThat(!b.built, "style builder already used")
	if style.IsCustomProperty(key) {
		if cur, ok := b.custom.Get(key); ok && cur == value {
			return
		} else if !ok && value.IsEmpty() {
			return
		}
		if !b.customForked {
			b.custom = b.custom.Copy()
			b.customForked = true
		}
		b.custom.Set(key, value)
		return
	}
	value = style.Property(strings.ToLower(value.String()))
	groupname := style.GroupNameFromPropertyKey(key)
	group := b.pmap.Group(groupname)
	if cur, ok := group.Get(key); ok && cur == value {
		return
	} else if !ok && value.IsEmpty() {
		return
	}
	if !b.forked[groupname] {
		if group == nil {
			group = style.NewPropertyGroup(groupname)
		} else {
			group = group.Fork()
		}
		b.pmap.SetGroup(group)
		b.forked[groupname] = true
	}
	group.Set(key, value)
}

// Flags returns the computed value flags accumulated so far.
func (b *StyleBuilder) Flags() style.ComputedValueFlags {
	return b.flags
}

// SetFlags adds flags. Flags are never cleared.
func (b *StyleBuilder) SetFlags(f style.ComputedValueFlags) {
	b.flags |= f
}

// Build produces the immutable computed style. The builder may not be
// used afterwards.
func (b *StyleBuilder) Build() *style.ComputedStyle {
	assertThat(!b.isVisited, "visited style builders are built by their owner")
	assertThat(!b.built, "style builder already used")
	b.built = true
	var visited *style.StyleValues
	if b.visited != nil {
		b.visited.built = true
		v := style.NewStyleValues(b.visited.pmap, b.visited.custom, b.visited.flags)
		visited = &v
	}
	values := style.NewStyleValues(b.pmap, b.custom, b.flags)
	return style.NewComputedStyle(values, visited, b.pseudo)
}
