package cssom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/css"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type testNode struct {
	h *html.Node
}

func (n testNode) IsRoot() bool {
	return n.h.Parent != nil && n.h.Parent.Type == html.DocumentNode
}
func (n testNode) IsLink() bool                           { return cssom.IsHyperlink(n.h) }
func (n testNode) IsVisitedLink() bool                    { return false }
func (n testNode) IsNativeAnonymous() bool                { return false }
func (n testNode) SkipRootAndItemBasedDisplayFixup() bool { return false }
func (n testNode) HTMLNode() *html.Node                   { return n.h }

var testDoc = `<html><head></head><body>
<p id="intro" class="lead">Intro</p>
<p class="lead" style="color: green; margin: 1px 2px">Styled</p>
<a href="https://example.com/" id="link"><span id="inner">Link</span></a>
<a id="anchor">Anchor</a>
</body></html>`

func parseDoc(t *testing.T) *html.Node {
	doc, err := html.Parse(strings.NewReader(testDoc))
	require.NoError(t, err)
	return doc
}

// find returns the n-th element (0-based) with a given tag.
func find(doc *html.Node, tag string, n int) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		if found != nil {
			return
		}
		if h.Type == html.ElementNode && h.Data == tag {
			if n == 0 {
				found = h
				return
			}
			n--
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(doc)
	return found
}

func winning(decls style.Declarations, key string) style.Property {
	var d style.Declaration
	switch m := decls.Winning(key).Match(); m {
	case m.Just(&d):
		return d.Value
	case m.Nothing():
	}
	return style.NullStyle
}

func authorSheet(t *testing.T, source string) cssom.StyleSheet {
	sheet, err := douceuradapter.Parse(source)
	require.NoError(t, err)
	return sheet
}

func TestMatcherPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	doc := parseDoc(t)
	m := cssom.NewMatcher()
	require.NoError(t, m.AddStyleSheet(cssom.UserAgentStyleSheet(), style.OriginUserAgent))
	require.NoError(t, m.AddStyleSheet(authorSheet(t, `
		p { color: black; font-size: 12pt !important; }
		.lead { color: navy; }
		#intro { color: red; }
		p { color: gray; }
	`), style.OriginAuthor))
	intro := testNode{find(doc, "p", 0)}
	decls := m.MatchedDeclarations(intro, style.PseudoNone, css.Unvisited)
	require.True(t, decls.IsSorted())
	assert.Equal(t, style.Property("red"), winning(decls, "color"), "id selector wins")
	assert.Equal(t, style.Property("block"), winning(decls, "display"), "user-agent default")
	assert.Equal(t, style.Property("12pt"), winning(decls, "font-size"))
	styled := testNode{find(doc, "p", 1)}
	decls = m.MatchedDeclarations(styled, style.PseudoNone, css.Unvisited)
	assert.Equal(t, style.Property("green"), winning(decls, "color"), "inline style wins")
	assert.Equal(t, style.Property("2px"), winning(decls, "margin-left"), "shorthand expanded")
	assert.Equal(t, style.Property("1px"), winning(decls, "margin-bottom"))
	assert.Equal(t, style.NullStyle, winning(decls, "margin"))
}

func TestMatcherImportant(t *testing.T) {
	doc := parseDoc(t)
	m := cssom.NewMatcher()
	require.NoError(t, m.AddStyleSheet(cssom.NewRuleSheet(
		cssom.NewRule("p", style.KeyValue{Key: "color!", Value: "maroon"}),
	), style.OriginUser))
	require.NoError(t, m.AddStyleSheet(authorSheet(t, `
		#intro { color: red !important; }
		p { margin-top: 3px !important; }
	`), style.OriginAuthor))
	intro := testNode{find(doc, "p", 0)}
	decls := m.MatchedDeclarations(intro, style.PseudoNone, css.Unvisited)
	assert.Equal(t, style.Property("maroon"), winning(decls, "color"), "user !important wins")
	styled := testNode{find(doc, "p", 1)}
	decls = m.MatchedDeclarations(styled, style.PseudoNone, css.Unvisited)
	assert.Equal(t, style.Property("3px"), winning(decls, "margin-top"), "!important beats inline")
}

func TestMatcherInlineStyleTerminators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><body>
<p style="margin-left: 7px">open</p>
<p style="margin-left: 7px;">closed</p>
<p style="color: maroon; margin-left: 9px ">spaced</p>
<p style="color: ; margin-left:">empty</p>
</body></html>`))
	require.NoError(t, err)
	m := cssom.NewMatcher()
	require.NoError(t, m.AddStyleSheet(authorSheet(t, `p { margin-left: 5px; color: navy; }`),
		style.OriginAuthor))
	for i, expected := range []style.Property{"7px", "7px", "9px"} {
		decls := m.MatchedDeclarations(testNode{find(doc, "p", i)}, style.PseudoNone, css.Unvisited)
		assert.Equal(t, expected, winning(decls, "margin-left"), "paragraph #%d", i)
	}
	decls := m.MatchedDeclarations(testNode{find(doc, "p", 2)}, style.PseudoNone, css.Unvisited)
	assert.Equal(t, style.Property("maroon"), winning(decls, "color"))
	decls = m.MatchedDeclarations(testNode{find(doc, "p", 3)}, style.PseudoNone, css.Unvisited)
	assert.Equal(t, style.Property("5px"), winning(decls, "margin-left"), "empty inline values are dropped")
	assert.Equal(t, style.Property("navy"), winning(decls, "color"))
	for _, d := range decls {
		assert.NotEqual(t, style.NullStyle, d.Value, "declaration %s has no value", d.Key)
	}
}

func TestMatcherLinkStates(t *testing.T) {
	doc := parseDoc(t)
	m := cssom.NewMatcher()
	require.NoError(t, m.AddStyleSheet(cssom.UserAgentStyleSheet(), style.OriginUserAgent))
	require.NoError(t, m.AddStyleSheet(authorSheet(t, `
		a:visited span { color: orange; }
		:link { background-color: yellow; }
		a:link:visited { color: white; }
	`), style.OriginAuthor))
	link := testNode{find(doc, "a", 0)}
	anchor := testNode{find(doc, "a", 1)}
	inner := testNode{find(doc, "span", 0)}
	decls := m.MatchedDeclarations(link, style.PseudoNone, css.Unvisited)
	assert.Equal(t, style.Property("blue"), winning(decls, "color"))
	assert.Equal(t, style.Property("yellow"), winning(decls, "background-color"))
	decls = m.MatchedDeclarations(link, style.PseudoNone, css.Visited)
	assert.Equal(t, style.Property("purple"), winning(decls, "color"))
	assert.Equal(t, style.NullStyle, winning(decls, "background-color"))
	decls = m.MatchedDeclarations(inner, style.PseudoNone, css.Unvisited)
	assert.Equal(t, style.NullStyle, winning(decls, "color"))
	decls = m.MatchedDeclarations(inner, style.PseudoNone, css.Visited)
	assert.Equal(t, style.Property("orange"), winning(decls, "color"), "relevant link is an ancestor")
	decls = m.MatchedDeclarations(anchor, style.PseudoNone, css.Unvisited)
	assert.Equal(t, style.NullStyle, winning(decls, "color"), "anchor without href is no link")
	assert.False(t, cssom.HasLinkAncestor(link.h))
	assert.True(t, cssom.HasLinkAncestor(inner.h))
	assert.Same(t, link.h, cssom.NearestLink(inner.h))
}

func TestMatcherPseudoElements(t *testing.T) {
	doc := parseDoc(t)
	m := cssom.NewMatcher()
	require.NoError(t, m.AddStyleSheet(authorSheet(t, `
		p::before { content: "»"; color: red; }
		.lead:after { content: "«"; }
		p { color: blue; }
	`), style.OriginAuthor))
	p := testNode{find(doc, "p", 0)}
	decls := m.MatchedDeclarations(p, style.PseudoBefore, css.Unvisited)
	assert.Equal(t, style.Property("red"), winning(decls, "color"))
	decls = m.MatchedDeclarations(p, style.PseudoAfter, css.Unvisited)
	assert.Equal(t, style.Property(`"«"`), winning(decls, "content"))
	assert.Equal(t, style.NullStyle, winning(decls, "color"), "element rules do not apply")
	assert.True(t, m.HasMatchingRules(p, style.PseudoBefore))
	assert.False(t, m.HasMatchingRules(p, style.PseudoFirstLine))
	span := testNode{find(doc, "span", 0)}
	assert.False(t, m.HasMatchingRules(span, style.PseudoBefore))
}

func TestMatcherDropsBadRules(t *testing.T) {
	doc := parseDoc(t)
	m := cssom.NewMatcher()
	require.NoError(t, m.AddStyleSheet(cssom.NewRuleSheet(
		cssom.NewRule("p >> [", style.KeyValue{Key: "color", Value: "red"}),
		cssom.NewRule("p, ", style.KeyValue{Key: "color", Value: "blue"}),
		cssom.NewRule("p::selection", style.KeyValue{Key: "color", Value: "lime"}),
		cssom.NewRule("div", style.KeyValue{Key: "margin", Value: "1px 2px 3px 4px 5px"}),
	), style.OriginAuthor))
	assert.Equal(t, 1, m.Size(), "only p compiled")
	p := testNode{find(doc, "p", 0)}
	decls := m.MatchedDeclarations(p, style.PseudoNone, css.Unvisited)
	assert.Equal(t, style.Property("blue"), winning(decls, "color"))
	err := m.AddStyleSheet(nil, style.OriginAuthor)
	assert.True(t, errors.Is(err, cssom.ErrNoStylesheet))
	err = m.AddStyleSheet(cssom.NewRuleSheet(), style.OriginAuthor)
	assert.True(t, errors.Is(err, cssom.ErrNoStylesheet))
}

func TestUserAgentStyleSheet(t *testing.T) {
	ua := cssom.UserAgentStyleSheet()
	assert.Same(t, ua, cssom.UserAgentStyleSheet())
	assert.False(t, ua.Empty())
	found := false
	for _, r := range ua.Rules() {
		if r.Selector() == "a:visited" {
			found = true
			assert.Equal(t, style.Property("purple"), r.Value("color"))
		}
	}
	assert.True(t, found)
}
