package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/cascade/dom/w3cdom"
	"golang.org/x/net/html"
)

// W3CNode is the W3C view of a node of a styled tree.
// It implements w3cdom.Node.
type W3CNode struct {
	stylednode *styledtree.StyNode
}

var _ w3cdom.Node = &W3CNode{}

// ErrNilNode is flagged for operations on a nil node.
var ErrNilNode = errors.New("node is nil")

// NodeFromStyledNode creates a W3C node for a styled node.
func NodeFromStyledNode(sn *styledtree.StyNode) *W3CNode {
	if sn == nil {
		return nil
	}
	return &W3CNode{stylednode: sn}
}

// NodeFromTreeNode creates a W3C node for a node of a styled tree.
func NodeFromTreeNode(n *StyledNode) (*W3CNode, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	return NodeFromStyledNode(styledtree.Node(n)), nil
}

// StyledNode returns the styled node underlying this W3C node.
func (w *W3CNode) StyledNode() *styledtree.StyNode {
	return w.stylednode
}

// HTMLNode returns the HTML node underlying this W3C node.
func (w *W3CNode) HTMLNode() *html.Node {
	return w.stylednode.HTMLNode()
}

// NodeType is part of interface w3cdom.Node.
func (w *W3CNode) NodeType() html.NodeType {
	return w.HTMLNode().Type
}

// NodeName is part of interface w3cdom.Node.
// Elements return their tag name, text nodes return "#text".
func (w *W3CNode) NodeName() string {
	h := w.HTMLNode()
	switch h.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.ElementNode:
		return h.Data
	}
	return "<node>"
}

// NodeValue is part of interface w3cdom.Node. It returns the text of text
// nodes and "" for elements.
func (w *W3CNode) NodeValue() string {
	if h := w.HTMLNode(); h.Type == html.TextNode {
		return h.Data
	}
	return ""
}

// HasAttributes is part of interface w3cdom.Node.
func (w *W3CNode) HasAttributes() bool {
	return len(w.HTMLNode().Attr) > 0
}

// ParentNode is part of interface w3cdom.Node.
func (w *W3CNode) ParentNode() w3cdom.Node {
	if p := w.stylednode.Parent(); p != nil {
		return NodeFromStyledNode(styledtree.Node(p))
	}
	return nil
}

// HasChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) HasChildNodes() bool {
	return len(w.stylednode.Children(true)) > 0
}

// ChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	children := w.stylednode.Children(true)
	list := make(nodeList, 0, len(children))
	for _, ch := range children {
		list = append(list, NodeFromStyledNode(styledtree.Node(ch)))
	}
	return list
}

// Children is part of interface w3cdom.Node.
func (w *W3CNode) Children() w3cdom.NodeList {
	var list nodeList
	for _, ch := range w.stylednode.Children(true) {
		if sn := styledtree.Node(ch); sn.IsElement() {
			list = append(list, NodeFromStyledNode(sn))
		}
	}
	return list
}

// FirstChild is part of interface w3cdom.Node.
func (w *W3CNode) FirstChild() w3cdom.Node {
	if children := w.stylednode.Children(true); len(children) > 0 {
		return NodeFromStyledNode(styledtree.Node(children[0]))
	}
	return nil
}

// NextSibling is part of interface w3cdom.Node.
func (w *W3CNode) NextSibling() w3cdom.Node {
	parent := w.stylednode.Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.Children(true)
	for i, sib := range siblings {
		if styledtree.Node(sib) == w.stylednode && i+1 < len(siblings) {
			return NodeFromStyledNode(styledtree.Node(siblings[i+1]))
		}
	}
	return nil
}

// Attributes is part of interface w3cdom.Node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return attrMap(w.HTMLNode().Attr)
}

// ComputedStyles is part of interface w3cdom.Node. It returns nil for
// nodes which have not been styled.
func (w *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	if cs := w.stylednode.ComputedStyle(); cs != nil {
		return computedStyles{cs}
	}
	return nil
}

// PseudoStyles is part of interface w3cdom.Node.
func (w *W3CNode) PseudoStyles(pseudo style.PseudoElement) w3cdom.ComputedStyles {
	if cs, ok := w.stylednode.PseudoStyle(pseudo); ok {
		return computedStyles{cs}
	}
	return nil
}

// TextContent is part of interface w3cdom.Node. It returns the text of the
// node and all of its descendents, including whitespace.
func (w *W3CNode) TextContent() (string, error) {
	if w == nil || w.stylednode == nil {
		return "", ErrNilNode
	}
	var b strings.Builder
	collectText(w.HTMLNode(), &b)
	return b.String(), nil
}

func collectText(h *html.Node, b *strings.Builder) {
	if h.Type == html.TextNode {
		b.WriteString(h.Data)
		return
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func (w *W3CNode) String() string {
	if w == nil {
		return "<nil>"
	}
	return fmt.Sprintf("W3C node %s", w.NodeName())
}

// --- Helper types ----------------------------------------------------------

type nodeList []*W3CNode

func (nl nodeList) Length() int {
	return len(nl)
}

func (nl nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(nl) {
		return nil
	}
	return nl[i]
}

func (nl nodeList) String() string {
	names := make([]string, len(nl))
	for i, n := range nl {
		names[i] = n.NodeName()
	}
	return "[" + strings.Join(names, " ") + "]"
}

type attrMap []html.Attribute

func (am attrMap) Length() int {
	return len(am)
}

func (am attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(am) {
		return nil
	}
	return attr{am[i]}
}

func (am attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range am {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string { return a.a.Namespace }
func (a attr) Key() string       { return a.a.Key }
func (a attr) Value() string     { return a.a.Val }

// computedStyles respects the link state: visited-dependent properties of
// visited links are reported from the visited style.
type computedStyles struct {
	cs *style.ComputedStyle
}

func (c computedStyles) GetPropertyValue(key string) style.Property {
	return c.cs.VisitedDependentValue(key)
}

func (c computedStyles) Styles() *style.PropertyMap {
	return c.cs.Styles()
}

func (c computedStyles) Flags() style.ComputedValueFlags {
	return c.cs.Flags()
}
