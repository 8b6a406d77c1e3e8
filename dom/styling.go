package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/css"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/cascade/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyledTree is the root of a styled tree.
type StyledTree = *tree.Node[*styledtree.StyNode]

type stylingProps struct {
	history     History
	uaStyles    bool
	userSheets  []cssom.StyleSheet
	extraSheets []cssom.StyleSheet
	resolverOps []css.Option
	walkerOps   []tree.Option
}

// Option configures document styling.
type Option struct {
	config func(stylingProps) stylingProps
}

// WithHistory sets the history deciding which links are visited.
func WithHistory(h History) Option {
	return Option{config: func(p stylingProps) stylingProps {
		p.history = h
		return p
	}}
}

// WithUserAgentStyles switches the built-in user-agent style sheet on or
// off. It is on by default.
func WithUserAgentStyles(enabled bool) Option {
	return Option{config: func(p stylingProps) stylingProps {
		p.uaStyles = enabled
		return p
	}}
}

// WithUserStyles adds style sheets of origin 'user'.
func WithUserStyles(sheets ...cssom.StyleSheet) Option {
	return Option{config: func(p stylingProps) stylingProps {
		p.userSheets = append(p.userSheets, sheets...)
		return p
	}}
}

// WithAuthorStyles adds author style sheets, ordered after the style
// elements of the document.
func WithAuthorStyles(sheets ...cssom.StyleSheet) Option {
	return Option{config: func(p stylingProps) stylingProps {
		p.extraSheets = append(p.extraSheets, sheets...)
		return p
	}}
}

// WithResolverOptions hands options to the style resolver.
func WithResolverOptions(opts ...css.Option) Option {
	return Option{config: func(p stylingProps) stylingProps {
		p.resolverOps = append(p.resolverOps, opts...)
		return p
	}}
}

// WithWorkers sets the number of concurrent workers styling the tree.
func WithWorkers(n int) Option {
	return Option{config: func(p stylingProps) stylingProps {
		p.walkerOps = append(p.walkerOps, tree.WithWorkers(n))
		return p
	}}
}

// StyleDocument creates a styled tree for an HTML document and resolves the
// computed style of every element and every text run. For elements with
// ::before or ::after rules, the styles of these pseudo-elements are
// resolved as well.
//
// doc may be a document node or an element; for a document node, styling
// starts at the document element.
func StyleDocument(doc *html.Node, opts ...Option) (StyledTree, error) {
	props := stylingProps{uaStyles: true}
	for _, opt := range opts {
		props = opt.config(props)
	}
	rootElem := documentElement(doc)
	if rootElem == nil {
		return nil, fmt.Errorf("cannot style document: %w", ErrNotAnElement)
	}
	matcher := buildMatcher(doc, props)
	resolver := css.NewResolver(matcher, props.resolverOps...)
	root := buildStyledTree(rootElem)
	action := func(n, parent *tree.Node[*styledtree.StyNode], position int) (*tree.Node[*styledtree.StyNode], error) {
		return n, styleNode(styledtree.Node(n), matcher, resolver, props.history)
	}
	_, err := tree.NewWalker(root, props.walkerOps...).TopDown(action).Promise()()
	if err != nil {
		return root, err
	}
	tracer().Infof("styled document with %d selectors", matcher.Size())
	return root, nil
}

// styleNode resolves the style of a single styled node. Its parent has
// already been styled.
func styleNode(sn *styledtree.StyNode, matcher *cssom.Matcher, resolver *css.Resolver,
	history History) error {
	//
	parentStyle := sn.ParentStyle()
	if sn.IsText() {
		sn.SetComputedStyle(resolver.ResolveTextStyle(parentStyle))
		return nil
	}
	el, err := NewHTMLElement(sn.HTMLNode(), history)
	if err != nil {
		return err
	}
	cs := resolver.ResolveStyle(el, parentStyle, style.PseudoNone)
	sn.SetComputedStyle(cs)
	for _, pseudo := range []style.PseudoElement{style.PseudoBefore, style.PseudoAfter} {
		if matcher.HasMatchingRules(el, pseudo) {
			sn.SetPseudoStyle(pseudo, resolver.ResolveStyle(el, cs, pseudo))
		}
	}
	return nil
}

// buildMatcher collects style sheets in cascade order: user-agent, user,
// then author sheets.
func buildMatcher(doc *html.Node, props stylingProps) *cssom.Matcher {
	m := cssom.NewMatcher()
	add := func(sheet cssom.StyleSheet, origin style.Origin) {
		if err := m.AddStyleSheet(sheet, origin); err != nil {
			tracer().Debugf("skipping %s style sheet: %v", origin, err)
		}
	}
	if props.uaStyles {
		add(cssom.UserAgentStyleSheet(), style.OriginUserAgent)
	}
	for _, sheet := range props.userSheets {
		add(sheet, style.OriginUser)
	}
	for _, sheet := range douceuradapter.ExtractStyleElements(doc) {
		add(sheet, style.OriginAuthor)
	}
	for _, sheet := range props.extraSheets {
		add(sheet, style.OriginAuthor)
	}
	return m
}

func documentElement(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == html.ElementNode {
		return doc
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// buildStyledTree mirrors the elements and text runs of an HTML tree.
// Comments, whitespace-only text and the raw text of <style> and <script>
// elements are left out.
func buildStyledTree(h *html.Node) *tree.Node[*styledtree.StyNode] {
	sn := styledtree.NewNodeForHTMLNode(h)
	rawText := h.DataAtom == atom.Style || h.DataAtom == atom.Script
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			sn.AddChild(buildStyledTree(c))
		case html.TextNode:
			if !rawText && strings.TrimSpace(c.Data) != "" {
				sn.AddChild(styledtree.NewNodeForHTMLNode(c))
			}
		}
	}
	return sn
}
