package css

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/cascade/dom/style"
)

// DisplayMode is a type for CSS property "display".
//
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode            DisplayMode = iota   // unset or error condition
	DisplayNone       DisplayMode = 0x0001 // CSS outer display = none
	BlockMode         DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode        DisplayMode = 0x0004 // CSS inline context
	ContentsMode      DisplayMode = 0x0008 // CSS display = contents, box is omitted
	FlowRootMode      DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode      DisplayMode = 0x0020 // CSS list-item display
	FlexMode          DisplayMode = 0x0040 // CSS inner display = flex
	GridMode          DisplayMode = 0x0080 // CSS inner display = grid
	TableMode         DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode    DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode   DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
	TableInternalMode DisplayMode = 0x0800 // CSS table-row, table-cell, etc.
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ContentsMode, ListItemMode, FlowRootMode,
	FlexMode, GridMode, TableMode, InnerBlockMode, InnerInlineMode, TableInternalMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:            "NoMode",
	DisplayNone:       "DisplayNone",
	BlockMode:         "BlockMode",
	InlineMode:        "InlineMode",
	ContentsMode:      "ContentsMode",
	FlowRootMode:      "FlowRootMode",
	ListItemMode:      "ListItemMode",
	FlexMode:          "FlexMode",
	GridMode:          "GridMode",
	TableMode:         "TableMode",
	InnerBlockMode:    "InnerBlockMode",
	InnerInlineMode:   "InnerInlineMode",
	TableInternalMode: "TableInternalMode",
}

var displayKeywordModes = map[string]DisplayMode{
	"none":               DisplayNone,
	"contents":           ContentsMode,
	"block":              BlockMode | InnerBlockMode,
	"inline":             InlineMode | InnerInlineMode,
	"list-item":          ListItemMode | BlockMode,
	"block-inline":       BlockMode | InnerInlineMode,
	"inline-block":       InlineMode | InnerBlockMode,
	"flow-root":          BlockMode | FlowRootMode,
	"flex":               BlockMode | FlexMode,
	"inline-flex":        InlineMode | FlexMode,
	"grid":               BlockMode | GridMode,
	"inline-grid":        InlineMode | GridMode,
	"table":              BlockMode | TableMode,
	"inline-table":       InlineMode | TableMode,
	"table-row":          TableInternalMode,
	"table-cell":         TableInternalMode,
	"table-row-group":    TableInternalMode,
	"table-header-group": TableInternalMode,
	"table-footer-group": TableInternalMode,
	"table-column":       TableInternalMode,
	"table-column-group": TableInternalMode,
	"table-caption":      TableInternalMode,
}

var displayModeKeywords = map[DisplayMode]string{}

func init() {
	for kw, mode := range displayKeywordModes {
		if mode != TableInternalMode {
			displayModeKeywords[mode] = kw
		}
	}
}

func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	return disp.FullString()
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
//
// A block-level element is defined as (from CSS Display Level 3):
// Block-level elements are those elements of the source document that are formatted visually
// as blocks (e.g., paragraphs). The following values of the 'display' property make an element
// block-level: 'block', 'list-item', and 'table'.
//
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// IsItemContainer is true for flex and grid containers, whose children are
// blockified.
func (disp DisplayMode) IsItemContainer() bool {
	return disp.Contains(FlexMode) || disp.Contains(GridMode)
}

// Blockified returns the block-level equivalent of a display mode.
// See https://www.w3.org/TR/css-display-3/#blockify .
func (disp DisplayMode) Blockified() DisplayMode {
	switch {
	case disp.Contains(TableInternalMode):
		return BlockMode | InnerBlockMode
	case disp == InlineMode|InnerInlineMode:
		return BlockMode | InnerBlockMode
	case disp == InlineMode|InnerBlockMode:
		return BlockMode | InnerBlockMode
	case disp.Outer() == InlineMode:
		return disp.Inner() | BlockMode
	}
	return disp
}

// Keyword returns the CSS keyword for a display mode. Table-internal modes
// are not distinguished and return the empty string.
func (disp DisplayMode) Keyword() string {
	return displayModeKeywords[disp]
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
func ParseDisplay(display string) (DisplayMode, error) {
	if display == "" {
		return NoMode, nil
	}
	if mode, ok := displayKeywordModes[display]; ok {
		return mode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}

// DisplayOf returns the display mode of a style property value. Unknown
// values result in NoMode.
func DisplayOf(p style.Property) DisplayMode {
	mode, err := ParseDisplay(p.String())
	if err != nil {
		return NoMode
	}
	return mode
}

// BlockifyDisplay returns the blockified value of a display property.
func BlockifyDisplay(p style.Property) style.Property {
	mode := DisplayOf(p)
	if mode == NoMode {
		return p
	}
	if kw := mode.Blockified().Keyword(); kw != "" {
		return style.Property(kw)
	}
	return p
}
