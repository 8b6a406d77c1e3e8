package style

import (
	"sort"
	"sync"

	"golang.org/x/net/html"
)

var initialValues struct {
	once  sync.Once
	pmap  *PropertyMap
	style *ComputedStyle
}

func initializeDefaults() {
	initialValues.once.Do(func() {
		pmap := NewPropertyMap()
		for _, key := range KnownProperties() {
			info := registry[key]
			group := pmap.Group(info.Group)
			if group == nil {
				group = NewPropertyGroup(info.Group)
				pmap.SetGroup(group)
			}
			group.Set(key, info.Initial)
		}
		pmap.SetGroup(NewPropertyGroup(PGX))
		initialValues.pmap = pmap
		initialValues.style = NewComputedStyle(NewStyleValues(pmap, nil, 0), nil, PseudoNone)
	})
}

// InitialValues returns a property map holding the initial values of all
// known properties, in computed form. The map and its groups are shared
// and must not be modified.
func InitialValues() *PropertyMap {
	initializeDefaults()
	return initialValues.pmap
}

// DefaultStyle returns the fallback parent style for root elements. It
// carries the initial values of all properties and no flags.
func DefaultStyle() *ComputedStyle {
	initializeDefaults()
	return initialValues.style
}

// InitializeDefaultPropertyValues creates a style holding initial values,
// extended by additional properties. Additional properties with keys known
// to the registry overwrite initial values.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *ComputedStyle {
	if len(additionalProps) == 0 {
		return DefaultStyle()
	}
	pmap := InitialValues().ShallowCopy()
	forked := make(map[string]bool)
	for _, kv := range additionalProps {
		groupname := GroupNameFromPropertyKey(kv.Key)
		if !forked[groupname] {
			g := pmap.Group(groupname)
			if g == nil {
				g = NewPropertyGroup(groupname)
			}
			pmap.SetGroup(g.Fork())
			forked[groupname] = true
		}
		pmap.Group(groupname).Set(kv.Key, kv.Value)
	}
	return NewComputedStyle(NewStyleValues(pmap, nil, 0), nil, PseudoNone)
}

// --- HTML defaults --------------------------------------------------------

var htmlDisplay = map[string]string{
	"head": "none", "script": "none", "style": "none", "title": "none",
	"meta": "none", "link": "none", "template": "none",
	"html": "block", "body": "block", "div": "block", "p": "block",
	"address": "block", "article": "block", "aside": "block", "blockquote": "block",
	"footer": "block", "header": "block", "nav": "block", "section": "block",
	"h1": "block", "h2": "block", "h3": "block", "h4": "block", "h5": "block",
	"h6": "block", "ol": "block", "ul": "block", "pre": "block", "form": "block",
	"fieldset": "block", "legend": "block", "hr": "block", "figure": "block",
	"li": "list-item", "table": "table", "tr": "table-row", "td": "table-cell",
	"th": "table-cell", "thead": "table-header-group", "tbody": "table-row-group",
	"tfoot": "table-footer-group", "caption": "table-caption",
	"a": "inline", "b": "inline", "i": "inline", "em": "inline", "span": "inline",
	"strong": "inline", "code": "inline", "img": "inline", "label": "inline",
}

// HTMLDisplayDefaults returns the default `display` values for HTML
// elements as a list of element name and display value, ordered by
// element name.
func HTMLDisplayDefaults() []KeyValue {
	kvs := make([]KeyValue, 0, len(htmlDisplay))
	for k, v := range htmlDisplay {
		kvs = append(kvs, KeyValue{k, Property(v)})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	return kvs
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	if d, ok := htmlDisplay[node.Data]; ok {
		return Property(d)
	}
	tracer().Debugf("unknown HTML element %s will be set to display: inline", node.Data)
	return "inline"
}
