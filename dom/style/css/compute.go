package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// computeFunc converts a specified value into a computed value. It returns
// false if the value is invalid for the property.
type computeFunc func(value style.Property, b *StyleBuilder) (style.Property, bool)

var computeFuncs = map[string]computeFunc{
	"font-size":     computeFontSize,
	"line-height":   computeLineHeight,
	"display":       keywordOf(displayKeywords...),
	"position":      keywordOf("static", "relative", "absolute", "fixed", "sticky"),
	"float":         keywordOf("none", "left", "right", "inline-start", "inline-end"),
	"writing-mode":  keywordOf("horizontal-tb", "vertical-rl", "vertical-lr", "sideways-rl", "sideways-lr"),
	"direction":     keywordOf("ltr", "rtl"),
	"overflow-x":    keywordOf(overflowKeywords...),
	"overflow-y":    keywordOf(overflowKeywords...),
	"visibility":    keywordOf("visible", "hidden", "collapse"),
	"outline-style": keywordOf(append([]string{"auto"}, borderStyleKeywords...)...),
	"text-combine-upright": func(v style.Property, b *StyleBuilder) (style.Property, bool) {
		if v == "none" || v == "all" || strings.HasPrefix(v.String(), "digits") {
			return v, true
		}
		return style.NullStyle, false
	},
}

func init() {
	for _, key := range []string{
		"margin-top", "margin-right", "margin-bottom", "margin-left",
		"padding-top", "padding-right", "padding-bottom", "padding-left",
		"top", "right", "bottom", "left",
		"width", "height", "min-width", "min-height", "max-width", "max-height",
		"letter-spacing", "word-spacing", "text-indent", "outline-offset",
		"border-top-left-radius", "border-top-right-radius",
		"border-bottom-right-radius", "border-bottom-left-radius",
	} {
		computeFuncs[key] = computeLength
	}
	for _, key := range []string{"border-top-width", "border-right-width",
		"border-bottom-width", "border-left-width", "outline-width"} {
		computeFuncs[key] = computeBorderWidth
	}
	for _, key := range []string{"border-top-style", "border-right-style",
		"border-bottom-style", "border-left-style"} {
		computeFuncs[key] = keywordOf(borderStyleKeywords...)
	}
}

var displayKeywords = []string{
	"none", "contents", "block", "inline", "inline-block", "flow-root", "list-item",
	"flex", "inline-flex", "grid", "inline-grid", "table", "inline-table",
	"table-row", "table-cell", "table-row-group", "table-header-group",
	"table-footer-group", "table-column", "table-column-group", "table-caption",
	"block-inline",
}

var overflowKeywords = []string{"visible", "hidden", "clip", "scroll", "auto"}

var borderStyleKeywords = []string{"none", "hidden", "dotted", "dashed", "solid",
	"double", "groove", "ridge", "inset", "outset"}

// computeValue computes the value of a property. Properties without a
// compute function keep their specified value.
func computeValue(key string, value style.Property, b *StyleBuilder) (style.Property, bool) {
	if f, ok := computeFuncs[key]; ok {
		return f(value, b)
	}
	return value, true
}

func keywordOf(keywords ...string) computeFunc {
	return func(value style.Property, b *StyleBuilder) (style.Property, bool) {
		for _, kw := range keywords {
			if value.String() == kw {
				return value, true
			}
		}
		return style.NullStyle, false
	}
}

var fontSizeKeywords = map[string]float64{
	"xx-small":  3.0 / 5.0,
	"x-small":   3.0 / 4.0,
	"small":     8.0 / 9.0,
	"medium":    1.0,
	"large":     6.0 / 5.0,
	"x-large":   3.0 / 2.0,
	"xx-large":  2.0,
	"xxx-large": 3.0,
}

const fontSizeStep = 1.2

// computeFontSize resolves font sizes against the parent's font size.
func computeFontSize(value style.Property, b *StyleBuilder) (style.Property, bool) {
	parentSize := fontSizeOf(b.InheritedValues().Get("font-size"))
	if f, ok := fontSizeKeywords[value.String()]; ok {
		return style.DimenProperty(scaleDU(style.DefaultFontSize, f)), true
	}
	switch value {
	case "smaller":
		return style.DimenProperty(scaleDU(parentSize, 1/fontSizeStep)), true
	case "larger":
		return style.DimenProperty(scaleDU(parentSize, fontSizeStep)), true
	}
	d, err := ParseDimen(value.String())
	if err != nil {
		return style.NullStyle, false
	}
	d = d.ResolveFontRelative(parentSize, style.DefaultFontSize).ResolvePercent(parentSize)
	return fixedLength(d)
}

// fixedLength accepts fixed, non-negative dimensions only.
func fixedLength(d DimenT) (style.Property, bool) {
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		if du >= 0 {
			return style.DimenProperty(du), true
		}
	}
	return style.NullStyle, false
}

// computeLength resolves font-relative lengths against the element's own
// font size, which has been computed in an earlier phase.
func computeLength(value style.Property, b *StyleBuilder) (style.Property, bool) {
	d, err := lengthOf(value, b)
	if err != nil {
		return style.NullStyle, false
	}
	return d.Property(), true
}

func lengthOf(value style.Property, b *StyleBuilder) (DimenT, error) {
	d, err := ParseDimen(value.String())
	if err != nil {
		return d, err
	}
	if d.IsFontRelative() {
		fontSize := fontSizeOf(b.Get("font-size"))
		d = d.ResolveFontRelative(fontSize, style.DefaultFontSize)
	}
	return d, nil
}

func computeBorderWidth(value style.Property, b *StyleBuilder) (style.Property, bool) {
	switch value {
	case "thin":
		return style.DimenProperty(style.BorderWidthThin), true
	case "medium":
		return style.DimenProperty(style.BorderWidthMedium), true
	case "thick":
		return style.DimenProperty(style.BorderWidthThick), true
	}
	d, err := lengthOf(value, b)
	if err != nil {
		return style.NullStyle, false
	}
	return fixedLength(d)
}

// computeLineHeight keeps 'normal' and plain numbers, which inherit as
// factors, and computes lengths and percentages.
func computeLineHeight(value style.Property, b *StyleBuilder) (style.Property, bool) {
	if value == "normal" {
		return value, true
	}
	if _, err := strconv.ParseFloat(value.String(), 64); err == nil {
		return value, true
	}
	d, err := ParseDimen(value.String())
	if err != nil {
		return style.NullStyle, false
	}
	fontSize := fontSizeOf(b.Get("font-size"))
	d = d.ResolveFontRelative(fontSize, style.DefaultFontSize).ResolvePercent(fontSize)
	return fixedLength(d)
}

func fontSizeOf(p style.Property) dimen.DU {
	if d, ok := p.Dimen(); ok {
		return d
	}
	return style.DefaultFontSize
}
