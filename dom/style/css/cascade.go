package css

import (
	"sort"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/maybe"
)

var earlyProperties = []string{"font-size", "writing-mode", "direction"}

// Cascade resolves the computed values of an element's properties from its
// matched declarations, which have to be ordered highest priority first,
// and records them into a style builder.
//
// Properties are processed in a fixed order: custom properties first, then
// properties other properties depend on (font-size, writing-mode,
// direction), then all remaining properties ordered by key. For every
// property the first declaration in decls wins. Properties without a
// declaration take the parent's value if they inherit (or if InheritAll is
// set), and their initial value otherwise.
//
// With VisitedDependentOnly, only visited-dependent properties are
// resolved. All other values stay as b has been seeded with.
func Cascade(decls style.Declarations, b *StyleBuilder, flags CascadeFlags) {
	assertThat(decls.IsSorted(), "declarations must be ordered highest priority first")
	winners := winnerTable(decls.Winners())
	if flags.Contains(VisitedDependentOnly) {
		for _, key := range style.VisitedDependentProperties() {
			cascadeProperty(key, winners, b, flags)
		}
		return
	}
	cascadeCustomProperties(winners, b)
	for _, key := range earlyProperties {
		cascadeProperty(key, winners, b, flags)
	}
	for _, key := range style.KnownProperties() {
		if info, _ := style.LookupProperty(key); info.Phase == style.PhaseOther {
			cascadeProperty(key, winners, b, flags)
		}
	}
	for _, key := range unknownProperties(winners, b, flags) {
		cascadeProperty(key, winners, b, flags)
	}
}

// winnerTable holds the winning declaration per property key.
type winnerTable map[string]style.Declaration

func (w winnerTable) lookup(key string) maybe.Maybe[style.Declaration] {
	if d, ok := w[key]; ok {
		return maybe.Just(d)
	}
	return maybe.Nothing[style.Declaration]()
}

// unknownProperties collects declared properties not in the registry,
// ordered by key. With InheritAll, unknown properties of the parent
// are included.
func unknownProperties(winners winnerTable, b *StyleBuilder, flags CascadeFlags) []string {
	seen := make(map[string]bool)
	var keys []string
	for key := range winners {
		if _, known := style.LookupProperty(key); !known && !style.IsCustomProperty(key) {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	if flags.Contains(InheritAll) {
		if x := b.InheritedValues().Styles().Group(style.PGX); x != nil {
			for _, kv := range x.Properties() {
				if !seen[kv.Key] {
					keys = append(keys, kv.Key)
				}
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func cascadeProperty(key string, winners winnerTable, b *StyleBuilder, flags CascadeFlags) {
	info, _ := style.LookupProperty(key)
	var decl style.Declaration
	switch m := winners.lookup(key).Match(); m {
	case m.Nothing():
		if info.Inherited || flags.Contains(InheritAll) {
			b.Set(key, b.InheritedValues().Get(key))
		} else {
			b.Set(key, info.Initial)
		}
		return
	case m.Just(&decl):
	}
	value := decl.Value
	if style.HasVarReference(value) {
		var ok bool
		if value, ok = style.SubstituteVars(value, b.customValue); !ok {
			tracer().Debugf("cascade: invalid variable reference in %s: %s", key, decl.Value)
			value = "unset"
		}
	}
	switch {
	case value.IsInherit():
		value = b.InheritedValues().Get(key)
	case value.IsInitial():
		value = info.Initial
	case value.IsUnset():
		if info.Inherited {
			value = b.InheritedValues().Get(key)
		} else {
			value = info.Initial
		}
	default:
		computed, ok := computeValue(key, value, b)
		if !ok {
			tracer().Debugf("cascade: invalid value for %s: %s", key, value)
			computed = info.Initial
		}
		value = computed
	}
	b.Set(key, value)
}

// cascadeCustomProperties resolves declared custom properties. References
// between custom properties are resolved depth first. All properties taking
// part in a reference cycle become invalid, i.e. unset, even if their
// references carry a fallback.
func cascadeCustomProperties(winners winnerTable, b *StyleBuilder) {
	var names []string
	for key := range winners {
		if style.IsCustomProperty(key) {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	done := make(map[string]bool)
	inCycle := make(map[string]bool)
	var stack []string // properties currently being resolved
	var resolve func(name string) (style.Property, bool)
	resolve = func(name string) (style.Property, bool) {
		if done[name] {
			return b.customValue(name)
		}
		var decl style.Declaration
		switch m := winners.lookup(name).Match(); m {
		case m.Nothing():
			return b.customValue(name)
		case m.Just(&decl):
		}
		for i, n := range stack {
			if n == name {
				tracer().Debugf("cascade: reference cycle for custom property %s", name)
				for _, member := range stack[i:] {
					inCycle[member] = true
				}
				return style.NullStyle, false
			}
		}
		stack = append(stack, name)
		value := decl.Value
		switch {
		case value.IsInherit(), value.IsUnset():
			value, _ = b.InheritedValues().CustomProperty(name)
		case value.IsInitial():
			value = style.NullStyle
		case style.HasVarReference(value):
			var ok bool
			if value, ok = style.SubstituteVars(value, resolve); !ok {
				value = style.NullStyle
			}
		}
		stack = stack[:len(stack)-1]
		if inCycle[name] {
			value = style.NullStyle
		}
		done[name] = true
		b.Set(name, value)
		return value, !value.IsEmpty()
	}
	for _, name := range names {
		resolve(name)
	}
}

func (b *StyleBuilder) customValue(name string) (style.Property, bool) {
	v := b.Get(name)
	return v, !v.IsEmpty()
}
