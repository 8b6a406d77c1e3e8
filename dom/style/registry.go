package style

import (
	"sort"
	"strings"
)

// Property group names. CSS knows a whole lot of properties, which we
// segment into logical groups. A group either holds inherited properties
// only or non-inherited properties only.
const (
	PGFont         = "Font"         // inherited
	PGText         = "Text"         // inherited
	PGInheritedBox = "InheritedBox" // inherited
	PGMargins      = "Margins"
	PGPadding      = "Padding"
	PGBorder       = "Border"
	PGDimension    = "Dimension"
	PGDisplay      = "Display"
	PGBackground   = "Background"
	PGOutline      = "Outline"
	PGRegion       = "Region"
	PGDecoration   = "Decoration"
	PGX            = "X" // unknown and extension properties
)

// Phase denotes the point in time a property is processed during cascade.
// Properties of an earlier phase may be referenced by compute functions
// of properties in later phases (e.g., lengths in 'em' need the font size).
type Phase uint8

// Cascade phases.
const (
	PhaseCustom Phase = iota // custom properties '--*'
	PhaseEarly               // font-size, writing-mode, direction
	PhaseOther               // everything else
)

// PropertyInfo describes a longhand property.
type PropertyInfo struct {
	Key              string
	Group            string
	Inherited        bool
	Initial          Property // initial value in computed form
	VisitedDependent bool
	Phase            Phase
}

var medium = DimenProperty(BorderWidthMedium)

var registry = map[string]PropertyInfo{}

func reg(group string, inherited bool, initial Property, keys ...string) {
	for _, key := range keys {
		assertThat(GroupNameFromPropertyKey(key) == PGX, "property %q registered twice", key)
		registry[key] = PropertyInfo{
			Key:       key,
			Group:     group,
			Inherited: inherited,
			Initial:   initial,
			Phase:     PhaseOther,
		}
	}
}

func init() {
	reg(PGFont, true, DimenProperty(DefaultFontSize), "font-size")
	reg(PGFont, true, "serif", "font-family")
	reg(PGFont, true, "normal", "font-style", "font-weight", "font-variant",
		"font-stretch", "line-height")
	reg(PGText, true, "black", "color")
	reg(PGText, true, "ltr", "direction")
	reg(PGText, true, "horizontal-tb", "writing-mode")
	reg(PGText, true, "normal", "white-space", "word-spacing", "letter-spacing",
		"word-break", "word-wrap", "overflow-wrap")
	reg(PGText, true, "manual", "hyphens")
	reg(PGText, true, "start", "text-align")
	reg(PGText, true, "0sp", "text-indent")
	reg(PGText, true, "none", "text-transform", "text-combine-upright")
	reg(PGText, true, "auto", "caret-color")
	reg(PGInheritedBox, true, "visible", "visibility")
	reg(PGInheritedBox, true, "auto", "cursor")
	reg(PGInheritedBox, true, "disc", "list-style-type")
	reg(PGInheritedBox, true, "outside", "list-style-position")
	reg(PGMargins, false, "0sp", "margin-top", "margin-right", "margin-bottom", "margin-left")
	reg(PGPadding, false, "0sp", "padding-top", "padding-right", "padding-bottom", "padding-left")
	reg(PGBorder, false, "currentcolor", "border-top-color", "border-right-color",
		"border-bottom-color", "border-left-color")
	reg(PGBorder, false, medium, "border-top-width", "border-right-width",
		"border-bottom-width", "border-left-width")
	reg(PGBorder, false, "none", "border-top-style", "border-right-style",
		"border-bottom-style", "border-left-style")
	reg(PGBorder, false, "0sp", "border-top-left-radius", "border-top-right-radius",
		"border-bottom-right-radius", "border-bottom-left-radius")
	reg(PGDimension, false, "auto", "width", "height", "top", "right", "bottom", "left")
	reg(PGDimension, false, "0sp", "min-width", "min-height")
	reg(PGDimension, false, "none", "max-width", "max-height")
	reg(PGDisplay, false, "inline", "display")
	reg(PGDisplay, false, "none", "float", "clear")
	reg(PGDisplay, false, "static", "position")
	reg(PGDisplay, false, "visible", "overflow-x", "overflow-y")
	reg(PGDisplay, false, "auto", "z-index")
	reg(PGBackground, false, "transparent", "background-color")
	reg(PGBackground, false, "none", "background-image")
	reg(PGOutline, false, "currentcolor", "outline-color")
	reg(PGOutline, false, "none", "outline-style")
	reg(PGOutline, false, medium, "outline-width")
	reg(PGOutline, false, "0sp", "outline-offset")
	reg(PGRegion, false, "none", "flow-from", "flow-into")
	reg(PGDecoration, false, "none", "text-decoration-line")
	reg(PGDecoration, false, "solid", "text-decoration-style")
	reg(PGDecoration, false, "currentcolor", "text-decoration-color", "column-rule-color")
	for _, key := range []string{"font-size", "writing-mode", "direction"} {
		info := registry[key]
		info.Phase = PhaseEarly
		registry[key] = info
	}
	for _, key := range []string{"color", "background-color", "border-top-color",
		"border-right-color", "border-bottom-color", "border-left-color",
		"outline-color", "column-rule-color", "text-decoration-color", "caret-color"} {
		info := registry[key]
		info.VisitedDependent = true
		registry[key] = info
	}
	knownKeys = make([]string, 0, len(registry))
	for key := range registry {
		knownKeys = append(knownKeys, key)
	}
	sort.Strings(knownKeys)
}

var knownKeys []string

// LookupProperty returns the registry entry for a longhand property.
// Unknown keys yield a description for group X, non-inherited, without
// initial value. Custom properties are reported as inherited.
func LookupProperty(key string) (PropertyInfo, bool) {
	if info, ok := registry[key]; ok {
		return info, true
	}
	if IsCustomProperty(key) {
		return PropertyInfo{Key: key, Group: PGX, Inherited: true, Phase: PhaseCustom}, false
	}
	return PropertyInfo{Key: key, Group: PGX, Phase: PhaseOther}, false
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if info, ok := registry[key]; ok {
		return info.Group
	}
	return PGX
}

// IsInherited returns true if a property inherits by default.
func IsInherited(key string) bool {
	info, _ := LookupProperty(key)
	return info.Inherited
}

// InitialValue returns the initial value of a property, in computed form.
func InitialValue(key string) Property {
	return registry[key].Initial
}

// IsVisitedDependent returns true if the value of a property may differ
// between the visited and the unvisited state of a link.
func IsVisitedDependent(key string) bool {
	return registry[key].VisitedDependent
}

// IsGroupInherited returns true for groups made up of inherited properties.
func IsGroupInherited(groupname string) bool {
	switch groupname {
	case PGFont, PGText, PGInheritedBox:
		return true
	}
	return false
}

// KnownProperties returns the keys of all registered longhand properties,
// in ascending order. Clients must not modify the slice.
func KnownProperties() []string {
	return knownKeys
}

// VisitedDependentProperties returns the keys of all visited-dependent
// properties, in ascending order.
func VisitedDependentProperties() []string {
	var keys []string
	for _, key := range knownKeys {
		if registry[key].VisitedDependent {
			keys = append(keys, key)
		}
	}
	return keys
}

// IsCustomProperty is a predicate for CSS custom properties ('--*').
func IsCustomProperty(key string) bool {
	return strings.HasPrefix(key, "--") && len(key) > 2
}
