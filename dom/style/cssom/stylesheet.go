package cssom

import (
	"errors"
	"strings"

	"github.com/npillmayer/cascade/dom/style"
)

// ErrNoStylesheet is returned when a nil or empty style sheet is handed to
// a matcher.
var ErrNoStylesheet = errors.New("no style sheet")

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the styled node tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// --- Programmatic rules ----------------------------------------------------

// BasicRule is a rule created programmatically. Keys ending in "!" are
// marked important, e.g. "color!".
type BasicRule struct {
	selector  string
	keys      []string
	values    map[string]style.Property
	important map[string]bool
}

// NewRule creates a rule for a selector from a list of declarations.
func NewRule(selector string, decls ...style.KeyValue) *BasicRule {
	r := &BasicRule{
		selector:  selector,
		values:    make(map[string]style.Property, len(decls)),
		important: make(map[string]bool),
	}
	for _, d := range decls {
		key := d.Key
		if strings.HasSuffix(key, "!") {
			key = strings.TrimSuffix(key, "!")
			r.important[key] = true
		}
		if _, dup := r.values[key]; !dup {
			r.keys = append(r.keys, key)
		}
		r.values[key] = d.Value
	}
	return r
}

// Selector is part of interface Rule.
func (r *BasicRule) Selector() string { return r.selector }

// Properties is part of interface Rule.
func (r *BasicRule) Properties() []string { return r.keys }

// Value is part of interface Rule.
func (r *BasicRule) Value(key string) style.Property { return r.values[key] }

// IsImportant is part of interface Rule.
func (r *BasicRule) IsImportant(key string) bool { return r.important[key] }

var _ Rule = &BasicRule{}

// RuleSheet is a style sheet made up of arbitrary rules.
type RuleSheet struct {
	rules []Rule
}

// NewRuleSheet creates a style sheet from a list of rules.
func NewRuleSheet(rules ...Rule) *RuleSheet {
	return &RuleSheet{rules: rules}
}

// AppendRules is part of interface StyleSheet.
func (sheet *RuleSheet) AppendRules(other StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// Empty is part of interface StyleSheet.
func (sheet *RuleSheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// Rules is part of interface StyleSheet.
func (sheet *RuleSheet) Rules() []Rule {
	if sheet == nil {
		return nil
	}
	return sheet.rules
}

var _ StyleSheet = &RuleSheet{}
