package dom

import (
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/cascade/tree"
)

// StyledNode is a node of a styled tree.
type StyledNode = tree.Node[*styledtree.StyNode]

// NodeIsText is a predicate to match text-nodes of a styled tree.
// It is intended to be used in a tree.Walker.
var NodeIsText = func(n *StyledNode, unused *StyledNode) (match *StyledNode, err error) {
	if styledtree.Node(n).IsText() {
		return n, nil
	}
	return nil, nil
}

// NodeIsElement is a predicate to match element nodes of a styled tree.
var NodeIsElement = func(n *StyledNode, unused *StyledNode) (match *StyledNode, err error) {
	if styledtree.Node(n).IsElement() {
		return n, nil
	}
	return nil, nil
}

// NodeHasVisitedStyle is a predicate to match nodes which own a visited
// style, i.e. links and their descendants.
var NodeHasVisitedStyle = func(n *StyledNode, unused *StyledNode) (match *StyledNode, err error) {
	if cs := styledtree.Node(n).ComputedStyle(); cs != nil && cs.HasVisitedStyle() {
		return n, nil
	}
	return nil, nil
}

// NodeIsDisplayed is a predicate to match nodes which are not part of a
// subtree with display 'none'.
var NodeIsDisplayed = func(n *StyledNode, unused *StyledNode) (match *StyledNode, err error) {
	cs := styledtree.Node(n).ComputedStyle()
	if cs == nil || cs.Flags().Contains(style.IsInDisplayNoneSubtree) {
		return nil, nil
	}
	return n, nil
}

// TextNodes collects the text runs of a styled tree in document order.
func TextNodes(root StyledTree) ([]*StyledNode, error) {
	return tree.NewWalker(root).DescendentsWith(NodeIsText).Promise()()
}
