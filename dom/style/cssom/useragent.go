package cssom

import (
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/cascade/dom/style"
)

var userAgent struct {
	once  sync.Once
	sheet *RuleSheet
}

// UserAgentStyleSheet returns the built-in user-agent style sheet. It sets
// the display defaults of HTML elements, some typographic defaults and the
// colors of links. The sheet is shared and must not be modified.
func UserAgentStyleSheet() StyleSheet {
	userAgent.once.Do(func() {
		userAgent.sheet = NewRuleSheet(userAgentRules()...)
	})
	return userAgent.sheet
}

func userAgentRules() []Rule {
	byDisplay := make(map[style.Property][]string)
	for _, kv := range style.HTMLDisplayDefaults() {
		byDisplay[kv.Value] = append(byDisplay[kv.Value], kv.Key)
	}
	displays := make([]string, 0, len(byDisplay))
	for d := range byDisplay {
		displays = append(displays, string(d))
	}
	sort.Strings(displays)
	var rules []Rule
	for _, d := range displays {
		elements := byDisplay[style.Property(d)]
		rules = append(rules, NewRule(strings.Join(elements, ", "),
			style.KeyValue{Key: "display", Value: style.Property(d)}))
	}
	kv := func(k, v string) style.KeyValue {
		return style.KeyValue{Key: k, Value: style.Property(v)}
	}
	rules = append(rules,
		NewRule("body", kv("margin", "8px")),
		NewRule("p, blockquote, pre, ul, ol, figure", kv("margin-top", "1em"), kv("margin-bottom", "1em")),
		NewRule("h1", kv("font-size", "2em"), kv("font-weight", "bold"), kv("margin-top", "0.67em"), kv("margin-bottom", "0.67em")),
		NewRule("h2", kv("font-size", "1.5em"), kv("font-weight", "bold"), kv("margin-top", "0.83em"), kv("margin-bottom", "0.83em")),
		NewRule("h3", kv("font-size", "1.17em"), kv("font-weight", "bold"), kv("margin-top", "1em"), kv("margin-bottom", "1em")),
		NewRule("h4, h5, h6, b, strong, th", kv("font-weight", "bold")),
		NewRule("i, em", kv("font-style", "italic")),
		NewRule("pre, code", kv("font-family", "monospace")),
		NewRule("pre", kv("white-space", "pre")),
		NewRule("ul, ol", kv("padding-left", "40px")),
		NewRule("fieldset", kv("margin", "0 2px"), kv("padding", "0.35em 0.75em 0.625em"),
			kv("border-style", "groove"), kv("border-width", "2px")),
		NewRule("a:link", kv("color", "blue"), kv("text-decoration-line", "underline")),
		NewRule("a:visited", kv("color", "purple"), kv("text-decoration-line", "underline")),
	)
	return rules
}
