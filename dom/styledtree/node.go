package styledtree

import (
	"sync"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	mx                  sync.RWMutex
	computed            *style.ComputedStyle
	pseudo              map[style.PseudoElement]*style.ComputedStyle
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// IsText is true for styled nodes of text runs.
func (sn *StyNode) IsText() bool {
	return sn.htmlNode != nil && sn.htmlNode.Type == html.TextNode
}

// IsElement is true for styled nodes of elements.
func (sn *StyNode) IsElement() bool {
	return sn.htmlNode != nil && sn.htmlNode.Type == html.ElementNode
}

// ComputedStyle returns the computed style of a node, or nil if it has not
// been resolved yet.
func (sn *StyNode) ComputedStyle() *style.ComputedStyle {
	sn.mx.RLock()
	defer sn.mx.RUnlock()
	return sn.computed
}

// SetComputedStyle sets the computed style of a styled node.
func (sn *StyNode) SetComputedStyle(cs *style.ComputedStyle) {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.computed = cs
}

// Styles returns the property map of the computed style, or nil.
func (sn *StyNode) Styles() *style.PropertyMap {
	if cs := sn.ComputedStyle(); cs != nil {
		return cs.Styles()
	}
	return nil
}

// PseudoStyle returns the style of a pseudo-element of this node, if one
// has been resolved.
func (sn *StyNode) PseudoStyle(pseudo style.PseudoElement) (*style.ComputedStyle, bool) {
	sn.mx.RLock()
	defer sn.mx.RUnlock()
	cs, ok := sn.pseudo[pseudo]
	return cs, ok
}

// SetPseudoStyle sets the style of a pseudo-element of this node.
func (sn *StyNode) SetPseudoStyle(pseudo style.PseudoElement, cs *style.ComputedStyle) {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	if sn.pseudo == nil {
		sn.pseudo = make(map[style.PseudoElement]*style.ComputedStyle)
	}
	sn.pseudo[pseudo] = cs
}

// ParentStyle returns the computed style of the nearest ancestor which has
// one, or nil.
func (sn *StyNode) ParentStyle() *style.ComputedStyle {
	for p := sn.Parent(); p != nil; p = p.Parent() {
		if cs := Node(p).ComputedStyle(); cs != nil {
			return cs
		}
	}
	return nil
}

// GetPropertyValue returns the property value to be used for a given key.
// Visited-dependent properties of visited links are taken from the visited
// style. Returns NullStyle if the node has not been styled.
func (sn *StyNode) GetPropertyValue(key string) style.Property {
	cs := sn.ComputedStyle()
	if cs == nil {
		tracer().Debugf("styled node for %v has no computed style", sn.htmlNode)
		return style.NullStyle
	}
	return cs.VisitedDependentValue(key)
}
