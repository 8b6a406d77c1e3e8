package dom_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestW3CNode(t *testing.T) {
	root := styleTestDocument(t, dom.WithHistory(dom.VisitedURLs{"/seen": true}))
	doc, err := dom.NodeFromTreeNode(root)
	require.NoError(t, err)
	assert.Equal(t, "html", doc.NodeName())
	assert.Equal(t, html.ElementNode, doc.NodeType())
	assert.Nil(t, doc.ParentNode())
	assert.True(t, doc.HasChildNodes())
	assert.Equal(t, "[head body]", doc.ChildNodes().String())
	//
	p := dom.NodeFromStyledNode(findStyled(t, root, "p", 0))
	assert.True(t, p.HasAttributes())
	require.NotNil(t, p.Attributes().GetNamedItem("class"))
	assert.Equal(t, "warn", p.Attributes().GetNamedItem("class").Value())
	assert.Nil(t, p.Attributes().GetNamedItem("id"))
	assert.Equal(t, "[#text a #text a]", p.ChildNodes().String())
	assert.Equal(t, 2, p.Children().Length())
	assert.Equal(t, "#text", p.FirstChild().NodeName())
	assert.Equal(t, "Hello ", p.FirstChild().NodeValue())
	assert.Equal(t, "a", p.FirstChild().NextSibling().NodeName())
	assert.Equal(t, "body", p.ParentNode().NodeName())
	text, err := p.TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Hello seen and new", text)
	//
	require.NotNil(t, p.ComputedStyles())
	assert.Equal(t, style.Property("red"), p.ComputedStyles().GetPropertyValue("color"))
	assert.NotNil(t, p.PseudoStyles(style.PseudoBefore))
	assert.Nil(t, p.PseudoStyles(style.PseudoAfter))
	a := p.Children().Item(0)
	assert.Equal(t, style.Property("orange"), a.ComputedStyles().GetPropertyValue("color"))
	assert.True(t, a.ComputedStyles().Flags().Contains(style.IsRelevantLinkVisited))
	assert.Nil(t, p.Children().Item(5))
}

func TestW3CNodeErrors(t *testing.T) {
	_, err := dom.NodeFromTreeNode(nil)
	assert.True(t, errors.Is(err, dom.ErrNilNode))
	assert.Nil(t, dom.NodeFromStyledNode(nil))
	var w *dom.W3CNode
	_, err = w.TextContent()
	assert.True(t, errors.Is(err, dom.ErrNilNode))
	n, err := dom.NodeFromTreeNode(styledtree.NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, Data: "div"}))
	require.NoError(t, err)
	assert.Nil(t, n.ComputedStyles(), "unstyled node")
}
