package cssom

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is an element which is backed by a node of an HTML parse tree.
// Matchers need access to the parse tree for selector matching.
type Node interface {
	css.Element
	HTMLNode() *html.Node
}

// linkState is the link state a rule requires.
type linkState uint8

const (
	anyLinkState linkState = iota
	linkUnvisited
	linkVisited
)

func (ls linkState) String() string {
	switch ls {
	case linkUnvisited:
		return ":link"
	case linkVisited:
		return ":visited"
	}
	return ""
}

type matcherDecl struct {
	key       string
	value     style.Property
	important bool
	order     int
}

// compiledRule is a single selector of a rule, with the declarations of
// the rule expanded to longhand properties.
type compiledRule struct {
	selector    cascadia.Sel
	source      string
	pseudo      style.PseudoElement
	link        linkState
	origin      style.Origin
	specificity [3]int
	decls       []matcherDecl
}

// Matcher matches the rules of a set of style sheets against elements.
// Style sheets have to be added before the first call to
// MatchedDeclarations; after that a matcher may be used concurrently.
type Matcher struct {
	rules []compiledRule
	order int // source order of declarations over all sheets
}

// NewMatcher creates a matcher for style sheets.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Size returns the number of compiled selectors.
func (m *Matcher) Size() int {
	return len(m.rules)
}

// AddStyleSheet compiles the rules of a style sheet of a given origin.
// Rules with selectors which cannot be parsed are dropped.
// Sheets have to be added in source order.
func (m *Matcher) AddStyleSheet(sheet StyleSheet, origin style.Origin) error {
	if sheet == nil || sheet.Empty() {
		return ErrNoStylesheet
	}
	before, dropped := len(m.rules), 0
	for _, rule := range sheet.Rules() {
		decls := m.expandDeclarations(rule)
		if len(decls) == 0 {
			continue
		}
		for _, sel := range splitSelectorGroup(rule.Selector()) {
			cr, err := compileSelector(sel)
			if err != nil {
				tracer().Errorf("dropping rule: %v", err)
				dropped++
				continue
			}
			cr.origin = origin
			cr.decls = decls
			m.rules = append(m.rules, cr)
		}
	}
	tracer().Infof("added %s style sheet, %d selectors compiled, %d dropped",
		origin, len(m.rules)-before, dropped)
	return nil
}

// expandDeclarations expands shorthand properties and assigns a source
// order to every declaration of a rule.
func (m *Matcher) expandDeclarations(rule Rule) []matcherDecl {
	var decls []matcherDecl
	add := func(key string, value style.Property, important bool) {
		decls = append(decls, matcherDecl{
			key:       key,
			value:     value,
			important: important,
			order:     m.order,
		})
		m.order++
	}
	for _, key := range rule.Properties() {
		value := rule.Value(key)
		important := rule.IsImportant(key)
		key = strings.ToLower(strings.TrimSpace(key))
		if value == style.NullStyle {
			tracer().Debugf("dropping declaration %s without value", key)
			continue
		}
		if !style.IsCompoundProperty(key) {
			add(key, value, important)
			continue
		}
		kvs, err := style.SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Errorf("dropping declaration %s: %v", key, err)
			continue
		}
		for _, kv := range kvs {
			add(kv.Key, kv.Value, important)
		}
	}
	return decls
}

var (
	linkPseudoClass   = regexp.MustCompile(`:(any-link|link|visited)\b`)
	legacyPseudoElems = regexp.MustCompile(`(^|[^:]):(before|after|first-line|first-letter)\b`)
)

// compileSelector parses a single complex selector. Pseudo-classes for
// links are replaced by an attribute test for href.
func compileSelector(source string) (compiledRule, error) {
	cr := compiledRule{source: source}
	s := legacyPseudoElems.ReplaceAllString(source, "$1::$2")
	for _, m := range linkPseudoClass.FindAllStringSubmatch(s, -1) {
		var state linkState
		switch m[1] {
		case "link":
			state = linkUnvisited
		case "visited":
			state = linkVisited
		default:
			continue
		}
		if cr.link != anyLinkState && cr.link != state {
			return cr, fmt.Errorf("selector %q requires contradicting link states", source)
		}
		cr.link = state
	}
	s = linkPseudoClass.ReplaceAllString(s, "[href]")
	sel, err := cascadia.ParseWithPseudoElement(s)
	if err != nil {
		return cr, fmt.Errorf("cannot compile selector %q: %w", source, err)
	}
	cr.selector = sel
	if name := sel.PseudoElement(); name != "" {
		pseudo, ok := style.ParsePseudoElement(name)
		if !ok {
			return cr, fmt.Errorf("unsupported pseudo-element in selector %q", source)
		}
		cr.pseudo = pseudo
	}
	spec := sel.Specificity()
	cr.specificity = [3]int{int(spec[0]), int(spec[1]), int(spec[2])}
	return cr, nil
}

// splitSelectorGroup splits a selector list at top-level commas.
func splitSelectorGroup(group string) []string {
	var sels []string
	depth, start := 0, 0
	for i, r := range group {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				if s := strings.TrimSpace(group[start:i]); s != "" {
					sels = append(sels, s)
				}
				start = i + 1
			}
		}
	}
	if s := strings.TrimSpace(group[start:]); s != "" {
		sels = append(sels, s)
	}
	return sels
}

// MatchedDeclarations returns the declarations of all rules matching an
// element (or one of its pseudo-elements), ordered highest priority first.
// For pseudo-element PseudoNone, declarations of the element's style
// attribute are included.
//
// Part of interface css.DeclarationMatcher.
func (m *Matcher) MatchedDeclarations(el css.Element, pseudo style.PseudoElement,
	mode css.VisitedMode) style.Declarations {
	//
	node, ok := el.(Node)
	if !ok || node.HTMLNode() == nil {
		tracer().Errorf("cannot match element %v: not backed by an HTML node", el)
		return nil
	}
	h := node.HTMLNode()
	relevantLink := el.IsLink() || HasLinkAncestor(h)
	var decls style.Declarations
	for i := range m.rules {
		r := &m.rules[i]
		if r.pseudo != pseudo || !linkStateMatches(r.link, relevantLink, mode) {
			continue
		}
		if !r.selector.Match(h) {
			continue
		}
		for _, d := range r.decls {
			decls = append(decls, style.Declaration{
				Key:   d.key,
				Value: d.value,
				Priority: style.Priority{
					Precedence:  style.PrecedenceOf(r.origin, d.important),
					Specificity: r.specificity,
					Order:       d.order,
				},
			})
		}
	}
	if pseudo == style.PseudoNone {
		decls = append(decls, m.inlineDeclarations(h)...)
	}
	decls.Sort()
	return decls
}

// HasMatchingRules is a predicate for elements which have rules for a
// pseudo-element, in the regular cascade pass.
func (m *Matcher) HasMatchingRules(el css.Element, pseudo style.PseudoElement) bool {
	node, ok := el.(Node)
	if !ok || node.HTMLNode() == nil {
		return false
	}
	h := node.HTMLNode()
	relevantLink := el.IsLink() || HasLinkAncestor(h)
	for i := range m.rules {
		r := &m.rules[i]
		if r.pseudo == pseudo && linkStateMatches(r.link, relevantLink, css.Unvisited) &&
			r.selector.Match(h) {
			return true
		}
	}
	return false
}

func linkStateMatches(required linkState, relevantLink bool, mode css.VisitedMode) bool {
	switch required {
	case linkUnvisited:
		return relevantLink && mode == css.Unvisited
	case linkVisited:
		return relevantLink && mode == css.Visited
	}
	return true
}

// inlineDeclarations parses the style attribute of an element. Inline
// declarations are author declarations, ordered after all rules.
func (m *Matcher) inlineDeclarations(h *html.Node) style.Declarations {
	attr, ok := attribute(h, "style")
	if !ok || strings.TrimSpace(attr) == "" {
		return nil
	}
	// douceur drops the value of a final declaration without ';'
	if !strings.HasSuffix(strings.TrimSpace(attr), ";") {
		attr += ";"
	}
	parsed, err := parser.ParseDeclarations(attr)
	if err != nil {
		tracer().Errorf("cannot parse style attribute %q: %v", attr, err)
		return nil
	}
	var decls style.Declarations
	order := m.order
	add := func(key string, value style.Property, important bool) {
		decls = append(decls, style.Declaration{
			Key:   key,
			Value: value,
			Priority: style.Priority{
				Precedence: style.PrecedenceOf(style.OriginAuthor, important),
				Inline:     true,
				Order:      order,
			},
		})
		order++
	}
	for _, d := range parsed {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		value := style.Property(strings.TrimSpace(d.Value))
		if value == style.NullStyle {
			tracer().Debugf("dropping inline declaration %s without value", key)
			continue
		}
		if !style.IsCompoundProperty(key) {
			add(key, value, d.Important)
			continue
		}
		kvs, err := style.SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Errorf("dropping inline declaration %s: %v", key, err)
			continue
		}
		for _, kv := range kvs {
			add(kv.Key, kv.Value, d.Important)
		}
	}
	return decls
}

var _ css.DeclarationMatcher = &Matcher{}

// --- HTML helpers ----------------------------------------------------------

// IsHyperlink is a predicate for HTML elements which are the source anchor
// of a hyperlink: <a>, <area> and <link> elements with an href attribute.
func IsHyperlink(h *html.Node) bool {
	if h == nil || h.Type != html.ElementNode {
		return false
	}
	switch h.DataAtom {
	case atom.A, atom.Area, atom.Link:
		_, ok := attribute(h, "href")
		return ok
	}
	return false
}

// HasLinkAncestor is true if some ancestor of h is a hyperlink.
func HasLinkAncestor(h *html.Node) bool {
	for p := h.Parent; p != nil; p = p.Parent {
		if IsHyperlink(p) {
			return true
		}
	}
	return false
}

// NearestLink returns the hyperlink h belongs to, i.e. h itself or its
// nearest ancestor which is a link, or nil.
func NearestLink(h *html.Node) *html.Node {
	for n := h; n != nil; n = n.Parent {
		if IsHyperlink(n) {
			return n
		}
	}
	return nil
}

func attribute(h *html.Node, key string) (string, bool) {
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Attribute returns the value of an attribute of an HTML element.
func Attribute(h *html.Node, key string) (string, bool) {
	if h == nil {
		return "", false
	}
	return attribute(h, key)
}
