package style

import (
	"fmt"
	"sort"

	"github.com/npillmayer/cascade/maybe"
)

// Origin is the origin of a style sheet.
type Origin uint8

// Style sheet origins, see https://www.w3.org/TR/CSS22/cascade.html#cascade .
const (
	OriginUserAgent Origin = iota
	OriginUser
	OriginAuthor
)

func (o Origin) String() string {
	switch o {
	case OriginUserAgent:
		return "user-agent"
	case OriginUser:
		return "user"
	}
	return "author"
}

// Precedence combines origin and importance of a declaration. Higher values
// take precedence over lower ones (CSS 2.2 §6.4.1, with user-agent important
// declarations on top).
type Precedence uint8

// Precedence levels, ascending.
const (
	PrecedenceUserAgent Precedence = iota
	PrecedenceUser
	PrecedenceAuthor
	PrecedenceAuthorImportant
	PrecedenceUserImportant
	PrecedenceUserAgentImportant
)

// PrecedenceOf returns the precedence for a declaration of a given origin
// and importance.
func PrecedenceOf(origin Origin, important bool) Precedence {
	switch origin {
	case OriginUserAgent:
		if important {
			return PrecedenceUserAgentImportant
		}
		return PrecedenceUserAgent
	case OriginUser:
		if important {
			return PrecedenceUserImportant
		}
		return PrecedenceUser
	}
	if important {
		return PrecedenceAuthorImportant
	}
	return PrecedenceAuthor
}

// Priority is the cascade priority of a declaration.
type Priority struct {
	Precedence  Precedence
	Inline      bool   // declared in a style attribute
	Specificity [3]int // selector specificity (ids, classes, types)
	Order       int    // source order
}

// Less is true if p has a lower priority than q.
func (p Priority) Less(q Priority) bool {
	if p.Precedence != q.Precedence {
		return p.Precedence < q.Precedence
	}
	if p.Inline != q.Inline {
		return !p.Inline
	}
	for i := 0; i < 3; i++ {
		if p.Specificity[i] != q.Specificity[i] {
			return p.Specificity[i] < q.Specificity[i]
		}
	}
	return p.Order < q.Order
}

// Declaration is a single matched declaration for a longhand property.
type Declaration struct {
	Key      string
	Value    Property
	Priority Priority
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s: %s (prec=%d, spec=%v, #%d)", d.Key, d.Value,
		d.Priority.Precedence, d.Priority.Specificity, d.Priority.Order)
}

// Declarations is a list of declarations, ordered highest priority first.
type Declarations []Declaration

// Sort orders a list of declarations by priority, highest first.
// Declarations of equal priority keep their relative order.
func (decls Declarations) Sort() {
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[j].Priority.Less(decls[i].Priority)
	})
}

// IsSorted checks if a list of declarations is ordered highest priority first.
func (decls Declarations) IsSorted() bool {
	for i := 1; i < len(decls); i++ {
		if decls[i-1].Priority.Less(decls[i].Priority) {
			return false
		}
	}
	return true
}

// Winning returns the declaration with the highest priority for a property,
// which is the first occurrence of key in the list.
func (decls Declarations) Winning(key string) maybe.Maybe[Declaration] {
	for _, d := range decls {
		if d.Key == key {
			return maybe.Just(d)
		}
	}
	return maybe.Nothing[Declaration]()
}

// Winners returns the winning declaration for every property declared,
// keyed by property.
func (decls Declarations) Winners() map[string]Declaration {
	w := make(map[string]Declaration, len(decls))
	for _, d := range decls {
		if _, ok := w[d.Key]; !ok {
			w[d.Key] = d
		}
	}
	return w
}
