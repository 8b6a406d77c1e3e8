package styledtree

import (
	"testing"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestStyledNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelError)
	div := NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"})
	span := NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, DataAtom: atom.Span, Data: "span"})
	text := NewNodeForHTMLNode(&html.Node{Type: html.TextNode, Data: "Hello"})
	div.AddChild(span)
	span.AddChild(text)
	assert.True(t, Node(div).IsElement())
	assert.True(t, Node(text).IsText())
	assert.False(t, Node(text).IsElement())
	assert.Same(t, Node(span), span.Payload, "payload references the node itself")
	assert.Nil(t, Node(nil))
	//
	assert.Nil(t, Node(text).ParentStyle())
	assert.Nil(t, Node(text).Styles())
	assert.Equal(t, style.NullStyle, Node(text).GetPropertyValue("color"))
	cs := style.DefaultStyle()
	Node(div).SetComputedStyle(cs)
	assert.Same(t, cs, Node(text).ParentStyle(), "unstyled span is skipped")
	assert.NotNil(t, Node(div).Styles())
	assert.Equal(t, cs.Get("color"), Node(div).GetPropertyValue("color"))
}

func TestPseudoStyles(t *testing.T) {
	sn := Node(NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, DataAtom: atom.P, Data: "p"}))
	_, ok := sn.PseudoStyle(style.PseudoBefore)
	assert.False(t, ok)
	cs := style.DefaultStyle()
	sn.SetPseudoStyle(style.PseudoBefore, cs)
	before, ok := sn.PseudoStyle(style.PseudoBefore)
	require.True(t, ok)
	assert.Same(t, cs, before)
	_, ok = sn.PseudoStyle(style.PseudoAfter)
	assert.False(t, ok)
}
