package style

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// CustomProperties holds the values of CSS custom properties ('--*'),
// ordered by name. Custom properties always inherit.
//
// A CustomProperties set which is part of a computed style must be treated
// as immutable. nil is a legal empty set.
type CustomProperties struct {
	m *treemap.Map
}

// NewCustomProperties creates an empty set of custom properties.
func NewCustomProperties() *CustomProperties {
	return &CustomProperties{m: treemap.NewWithStringComparator()}
}

// Size returns the number of custom properties.
func (cp *CustomProperties) Size() int {
	if cp == nil || cp.m == nil {
		return 0
	}
	return cp.m.Size()
}

// Get returns the value of a custom property.
func (cp *CustomProperties) Get(name string) (Property, bool) {
	if cp == nil || cp.m == nil {
		return NullStyle, false
	}
	v, found := cp.m.Get(name)
	if !found {
		return NullStyle, false
	}
	return v.(Property), true
}

// Set sets the value of a custom property. An empty value removes the
// property.
func (cp *CustomProperties) Set(name string, value Property) {
	if cp.m == nil {
		cp.m = treemap.NewWithStringComparator()
	}
	if value.IsEmpty() {
		cp.m.Remove(name)
		return
	}
	cp.m.Put(name, value)
}

// Names returns the names of all custom properties in ascending order.
func (cp *CustomProperties) Names() []string {
	if cp == nil || cp.m == nil {
		return nil
	}
	keys := cp.m.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Copy creates a private copy of a set of custom properties.
func (cp *CustomProperties) Copy() *CustomProperties {
	c := NewCustomProperties()
	if cp == nil || cp.m == nil {
		return c
	}
	cp.m.Each(func(k, v interface{}) {
		c.m.Put(k, v)
	})
	return c
}

// Equal compares two sets of custom properties.
func (cp *CustomProperties) Equal(other *CustomProperties) bool {
	if cp.Size() != other.Size() {
		return false
	}
	for _, name := range cp.Names() {
		v, _ := cp.Get(name)
		if w, ok := other.Get(name); !ok || v != w {
			return false
		}
	}
	return true
}

// --- var() substitution ----------------------------------------------------

// HasVarReference is a predicate for values containing var() functions.
func HasVarReference(value Property) bool {
	return strings.Contains(string(value), "var(")
}

// SubstituteVars replaces every var(--name[, fallback]) reference in value.
// lookup is called for each referenced name. If a referenced property is
// undefined and the reference has no fallback, the value is invalid and ok
// is false.
func SubstituteVars(value Property, lookup func(name string) (Property, bool)) (Property, bool) {
	s := string(value)
	var b strings.Builder
	for {
		start := strings.Index(s, "var(")
		if start < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:start])
		end := matchingParen(s, start+3)
		if end < 0 {
			return NullStyle, false
		}
		name, fallback, hasFallback := splitVarArgs(s[start+4 : end])
		if v, found := lookup(name); found {
			b.WriteString(string(v))
		} else if hasFallback {
			fb, ok := SubstituteVars(Property(fallback), lookup)
			if !ok {
				return NullStyle, false
			}
			b.WriteString(string(fb))
		} else {
			return NullStyle, false
		}
		s = s[end+1:]
	}
	return Property(strings.TrimSpace(b.String())), true
}

// matchingParen returns the index of the parenthesis closing the one at open.
func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func splitVarArgs(args string) (name, fallback string, hasFallback bool) {
	if comma := strings.IndexByte(args, ','); comma >= 0 {
		return strings.TrimSpace(args[:comma]), strings.TrimSpace(args[comma+1:]), true
	}
	return strings.TrimSpace(args), "", false
}
