package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyGroupFork(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	pg := NewPropertyGroup(PGMargins)
	pg.Set("margin-top", "3PX")
	pg.Add("margin-top", "7px") // Add does not overwrite
	pg.Add("margin-left", "0")
	v, ok := pg.Get("margin-top")
	assert.True(t, ok)
	assert.Equal(t, Property("3px"), v, "values are lowercased")
	fork := pg.Fork()
	assert.True(t, fork.Equal(pg))
	fork.Set("margin-top", "1px")
	assert.False(t, fork.Equal(pg))
	v, _ = pg.Get("margin-top")
	assert.Equal(t, Property("3px"), v, "fork must not change the original")
	var nilGroup *PropertyGroup
	assert.False(t, nilGroup.IsSet("margin-top"))
	_, ok = nilGroup.Get("margin-top")
	assert.False(t, ok)
	assert.Equal(t, []KeyValue{{"margin-left", "0"}, {"margin-top", "3px"}}, pg.Properties())
}

func TestSplitCompoundProperty(t *testing.T) {
	for _, tc := range []struct {
		key, value string
		want       []string
	}{
		{"margin", "1px", []string{"1px", "1px", "1px", "1px"}},
		{"margin", "1px 2px", []string{"1px", "2px", "1px", "2px"}},
		{"padding", "1px 2px 3px", []string{"1px", "2px", "3px", "2px"}},
		{"padding", "1px 2px 3px 4px", []string{"1px", "2px", "3px", "4px"}},
		{"border-width", "inherit", []string{"inherit", "inherit", "inherit", "inherit"}},
	} {
		kvs, err := SplitCompoundProperty(tc.key, Property(tc.value))
		require.NoError(t, err, tc.key)
		require.Len(t, kvs, 4)
		for i, kv := range kvs {
			assert.Equal(t, Property(tc.want[i]), kv.Value, "%s: %s", tc.key, kv.Key)
		}
	}
	kvs, err := SplitCompoundProperty("border-color", "red")
	require.NoError(t, err)
	assert.Equal(t, "border-top-color", kvs[0].Key)
	assert.Equal(t, "border-left-color", kvs[3].Key)
	kvs, err = SplitCompoundProperty("border-radius", "2px 4px")
	require.NoError(t, err)
	assert.Equal(t, KeyValue{"border-top-left-radius", "2px"}, kvs[0])
	assert.Equal(t, KeyValue{"border-bottom-left-radius", "4px"}, kvs[3])
	kvs, err = SplitCompoundProperty("overflow", "hidden scroll")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{{"overflow-x", "hidden"}, {"overflow-y", "scroll"}}, kvs)
	_, err = SplitCompoundProperty("margin", "1px 2px 3px 4px 5px")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("font", "serif")
	assert.Error(t, err)
	assert.True(t, IsCompoundProperty("border-style"))
	assert.False(t, IsCompoundProperty("border-top-style"))
}

func TestPropertyMap(t *testing.T) {
	pmap := NewPropertyMap()
	pmap.Add("color", "red")
	pmap.Add("margin-top", "1px")
	assert.Equal(t, 2, pmap.Size())
	assert.Equal(t, []string{PGMargins, PGText}, pmap.GroupNames())
	cp := pmap.ShallowCopy()
	assert.True(t, cp.Equal(pmap))
	assert.Same(t, pmap.Group(PGText), cp.Group(PGText), "groups are shared")
	v, ok := cp.Property("color")
	assert.True(t, ok)
	assert.Equal(t, Property("red"), v)
	_, ok = cp.Property("padding-top")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	info, ok := LookupProperty("font-size")
	require.True(t, ok)
	assert.Equal(t, PGFont, info.Group)
	assert.True(t, info.Inherited)
	assert.Equal(t, PhaseEarly, info.Phase)
	assert.Equal(t, DimenProperty(DefaultFontSize), InitialValue("font-size"))
	assert.False(t, IsInherited("margin-top"))
	assert.True(t, IsInherited("color"))
	assert.Equal(t, PGX, GroupNameFromPropertyKey("-webkit-weird"))
	assert.True(t, IsCustomProperty("--main-color"))
	assert.False(t, IsCustomProperty("-moz-thing"))
	assert.True(t, IsGroupInherited(PGFont))
	assert.False(t, IsGroupInherited(PGBorder))
	known := KnownProperties()
	assert.Contains(t, known, "border-top-width")
	assert.IsIncreasing(t, known)
	visited := VisitedDependentProperties()
	assert.Contains(t, visited, "color")
	assert.Contains(t, visited, "outline-color")
	assert.NotContains(t, visited, "font-size")
	for _, key := range visited {
		assert.True(t, IsVisitedDependent(key), key)
	}
}

func TestCustomProperties(t *testing.T) {
	cp := NewCustomProperties()
	cp.Set("--b", "2")
	cp.Set("--a", "1")
	assert.Equal(t, []string{"--a", "--b"}, cp.Names())
	cp2 := cp.Copy()
	cp2.Set("--a", "")
	assert.Equal(t, 1, cp2.Size(), "empty value removes")
	assert.Equal(t, 2, cp.Size(), "copy is independent")
	assert.False(t, cp.Equal(cp2))
	var none *CustomProperties
	assert.Equal(t, 0, none.Size())
	_, ok := none.Get("--a")
	assert.False(t, ok)
	assert.True(t, none.Equal(NewCustomProperties()))
}

func TestSubstituteVars(t *testing.T) {
	vars := map[string]Property{"--size": "3px", "--color": "red"}
	lookup := func(name string) (Property, bool) {
		v, ok := vars[name]
		return v, ok
	}
	for _, tc := range []struct {
		in, out string
		ok      bool
	}{
		{"var(--size)", "3px", true},
		{"var(--size) var(--color)", "3px red", true},
		{"calc(var(--size) + 1px)", "calc(3px + 1px)", true},
		{"var(--missing, 4px)", "4px", true},
		{"var(--missing, var(--color))", "red", true},
		{"var(--missing)", "", false},
		{"var(--missing, var(--nope))", "", false},
		{"var(--size", "", false},
		{"solid", "solid", true},
	} {
		v, ok := SubstituteVars(Property(tc.in), lookup)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, Property(tc.out), v, tc.in)
	}
	assert.True(t, HasVarReference("1px var(--x)"))
	assert.False(t, HasVarReference("1px"))
}

func TestDeclarationPriority(t *testing.T) {
	ua := Priority{Precedence: PrecedenceOf(OriginUserAgent, false)}
	author := Priority{Precedence: PrecedenceOf(OriginAuthor, false), Specificity: [3]int{0, 0, 1}}
	authorID := Priority{Precedence: PrecedenceOf(OriginAuthor, false), Specificity: [3]int{1, 0, 0}}
	inline := Priority{Precedence: PrecedenceOf(OriginAuthor, false), Inline: true}
	important := Priority{Precedence: PrecedenceOf(OriginAuthor, true)}
	userImportant := Priority{Precedence: PrecedenceOf(OriginUser, true)}
	uaImportant := Priority{Precedence: PrecedenceOf(OriginUserAgent, true)}
	ordered := []Priority{ua, author, authorID, inline, important, userImportant, uaImportant}
	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i-1].Less(ordered[i]), "priority #%d < #%d", i-1, i)
		assert.False(t, ordered[i].Less(ordered[i-1]), "priority #%d > #%d", i, i-1)
	}
	later := author
	later.Order = 5
	assert.True(t, author.Less(later), "source order")
}

func TestDeclarationsWinning(t *testing.T) {
	decls := Declarations{
		{Key: "color", Value: "red", Priority: Priority{Precedence: PrecedenceUserAgent}},
		{Key: "color", Value: "blue", Priority: Priority{Precedence: PrecedenceAuthor}},
		{Key: "color", Value: "green", Priority: Priority{Precedence: PrecedenceAuthor}},
		{Key: "display", Value: "block", Priority: Priority{Precedence: PrecedenceUserAgent}},
	}
	assert.False(t, decls.IsSorted())
	decls.Sort()
	assert.True(t, decls.IsSorted())
	var d Declaration
	switch m := decls.Winning("color").Match(); m {
	case m.Just(&d):
	case m.Nothing():
		t.Fatal("expected a winning declaration for color")
	}
	assert.Equal(t, Property("blue"), d.Value, "stable sort keeps the first of equal priority")
	assert.False(t, decls.Winning("margin-top").IsJust())
	winners := decls.Winners()
	assert.Len(t, winners, 2)
	assert.Equal(t, Property("block"), winners["display"].Value)
}

func TestFlags(t *testing.T) {
	f := IsRelevantLinkVisited | IsInDisplayNoneSubtree | IsRootElementStyle
	assert.True(t, f.Contains(IsInDisplayNoneSubtree))
	assert.False(t, f.Contains(IsTextCombined))
	assert.Equal(t, IsInDisplayNoneSubtree, f.Inherited())
	assert.Equal(t, "[relevant-link-visited|in-display-none|root]", f.String())
	assert.Equal(t, "[]", ComputedValueFlags(0).String())
}

func TestConvert(t *testing.T) {
	p := DimenProperty(12 * PX)
	d, ok := p.Dimen()
	assert.True(t, ok)
	assert.Equal(t, 12*PX, d)
	_, ok = Property("12px").Dimen()
	assert.False(t, ok)
	assert.Equal(t, color.RGBA{0, 0, 0xff, 0xff}, Property("blue").Color())
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0xff}, Property("#123").Color())
	assert.Equal(t, color.RGBA{}, Property("transparent").Color())
	assert.Nil(t, Property("currentcolor").Color())
	assert.Equal(t, "purple", ColorString(Property("#800080").Color()))
	assert.Equal(t, "transparent", ColorString(color.RGBA{}))
	assert.Equal(t, "currentcolor", ColorString(nil))
}

func TestPseudoElements(t *testing.T) {
	pe, ok := ParsePseudoElement("::before")
	assert.True(t, ok)
	assert.Equal(t, PseudoBefore, pe)
	assert.Equal(t, "before", pe.String())
	_, ok = ParsePseudoElement("::selection")
	assert.False(t, ok)
	assert.True(t, PseudoFieldsetContent.IsAnonymousBox())
	assert.False(t, PseudoMarker.IsAnonymousBox())
	assert.False(t, PseudoNone.IsPseudo())
}

func TestDefaultStyle(t *testing.T) {
	def := DefaultStyle()
	assert.Same(t, def, DefaultStyle())
	assert.Equal(t, Property("inline"), def.Get("display"))
	assert.Equal(t, Property("black"), def.Get("color"))
	assert.False(t, def.HasVisitedStyle())
	cs := InitializeDefaultPropertyValues([]KeyValue{{"color", "navy"}})
	assert.Equal(t, Property("navy"), cs.Get("color"))
	assert.Equal(t, Property("black"), DefaultStyle().Get("color"), "defaults are unchanged")
	kvs := HTMLDisplayDefaults()
	assert.Contains(t, kvs, KeyValue{"div", "block"})
}

func TestComputedStyleVisited(t *testing.T) {
	props := InitialValues().ShallowCopy()
	visitedProps := InitialValues().ShallowCopy()
	g := visitedProps.Group(PGText).Fork()
	g.Set("color", "purple")
	visitedProps.SetGroup(g)
	visited := NewStyleValues(visitedProps, nil, 0)
	cs := NewComputedStyle(NewStyleValues(props, nil, 0), &visited, PseudoNone)
	assert.True(t, cs.HasVisitedStyle())
	assert.Equal(t, Property("black"), cs.VisitedDependentValue("color"), "not a visited link")
	linked := NewComputedStyle(NewStyleValues(props, nil, IsRelevantLinkVisited), &visited, PseudoNone)
	assert.Equal(t, Property("purple"), linked.VisitedDependentValue("color"))
	assert.Equal(t, Property("inline"), linked.VisitedDependentValue("display"), "not visited dependent")
	assert.False(t, cs.Equal(linked))
}
