package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/dom/style/cssom"
	"golang.org/x/net/html"
)

// ErrNotAnElement is flagged if an HTML node is expected to be an element,
// but is not.
var ErrNotAnElement = errors.New("HTML node is not an element")

// History tells which URLs have been visited.
type History interface {
	IsVisited(url string) bool
}

// VisitedURLs is a simple History holding a set of URLs. URLs are compared
// verbatim with the href attribute of links.
type VisitedURLs map[string]bool

// IsVisited is part of interface History.
func (v VisitedURLs) IsVisited(url string) bool {
	return v[url]
}

// HTMLElement wraps an HTML element node for the style resolver.
// It implements css.Element as well as cssom.Node.
type HTMLElement struct {
	h       *html.Node
	history History
}

var _ cssom.Node = &HTMLElement{}

// NewHTMLElement wraps an HTML element node. history may be nil, in which
// case no link is visited.
func NewHTMLElement(h *html.Node, history History) (*HTMLElement, error) {
	if h == nil || h.Type != html.ElementNode {
		return nil, ErrNotAnElement
	}
	return &HTMLElement{h: h, history: history}, nil
}

// HTMLNode returns the wrapped HTML node.
func (e *HTMLElement) HTMLNode() *html.Node {
	return e.h
}

// IsRoot is true for the document element.
func (e *HTMLElement) IsRoot() bool {
	return e.h.Parent == nil || e.h.Parent.Type == html.DocumentNode
}

// IsLink is true for hyperlinks, i.e. <a>, <area> and <link> elements with
// an href attribute.
func (e *HTMLElement) IsLink() bool {
	return cssom.IsHyperlink(e.h)
}

// IsVisitedLink is true for links whose target is contained in the history.
func (e *HTMLElement) IsVisitedLink() bool {
	if e.history == nil || !e.IsLink() {
		return false
	}
	href, _ := cssom.Attribute(e.h, "href")
	return e.history.IsVisited(href)
}

// IsNativeAnonymous is false, as elements of an HTML parse tree are never
// created by the platform.
func (e *HTMLElement) IsNativeAnonymous() bool {
	return false
}

// SkipRootAndItemBasedDisplayFixup is false for HTML elements.
func (e *HTMLElement) SkipRootAndItemBasedDisplayFixup() bool {
	return false
}

func (e *HTMLElement) String() string {
	var b strings.Builder
	b.WriteString(e.h.Data)
	if id, ok := cssom.Attribute(e.h, "id"); ok && id != "" {
		b.WriteString("#" + id)
	}
	if class, ok := cssom.Attribute(e.h, "class"); ok {
		for _, c := range strings.Fields(class) {
			b.WriteString("." + c)
		}
	}
	return fmt.Sprintf("<%s>", b.String())
}
