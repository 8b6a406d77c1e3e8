package css

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	dimenNoneKW   uint32 = 0x0005 // keyword 'none', e.g. for max-width
	dimenNormal   uint32 = 0x0006 // keyword 'normal', e.g. for letter-spacing
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	scale float64 // factor for font- and viewport-relative units, percentage
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| None
	| Normal
	| JustDimen dimen
	| Percentage Percent
	| ViewRel unit
	| FontRel unit
	| ContentRel Min N
	| ContentRel Max N
*/

// Auto creates a CSS dimension with value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension with value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension with value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{scale: float64(n), flags: dimenPercent}
}

// FontRelative creates a CSS dimension relative to the element's font size
// (unit 'em'), or to the root font size if rem is set.
func FontRelative(factor float64, rem bool) DimenT {
	if rem {
		return DimenT{scale: factor, flags: dimenREM}
	}
	return DimenT{scale: factor, flags: dimenEM}
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsPercent is true for %-relative dimensions.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsFontRelative is true for dimensions in units 'em', 'rem', 'ex' or 'ch'.
func (d DimenT) IsFontRelative() bool {
	switch d.flags & relativeMask {
	case dimenEM, dimenREM, dimenEX, dimenCH:
		return true
	}
	return false
}

// Unwrap returns the fixed value of an absolute dimension, or 0.
func (d DimenT) Unwrap() dimen.DU {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

// ResolveFontRelative converts font-relative dimensions into fixed ones.
// fontSize is the reference size for 'em' (and derived 'ex' and 'ch'),
// rootFontSize the reference size for 'rem'. Other dimensions are returned
// unchanged.
func (d DimenT) ResolveFontRelative(fontSize, rootFontSize dimen.DU) DimenT {
	switch d.flags & relativeMask {
	case dimenEM:
		return JustDimen(scaleDU(fontSize, d.scale))
	case dimenEX, dimenCH:
		return JustDimen(scaleDU(fontSize, d.scale/2))
	case dimenREM:
		return JustDimen(scaleDU(rootFontSize, d.scale))
	}
	return d
}

// ResolvePercent converts a percentage into a fixed dimension, relative to
// a reference length. Other dimensions are returned unchanged.
func (d DimenT) ResolvePercent(ref dimen.DU) DimenT {
	if d.IsPercent() {
		return JustDimen(scaleDU(ref, d.scale/100))
	}
	return d
}

func scaleDU(x dimen.DU, f float64) dimen.DU {
	return dimen.DU(math.Round(float64(x) * f))
}

// Property formats a dimension as a style property value. Fixed dimensions
// use the computed form "<n>sp".
func (d DimenT) Property() style.Property {
	switch d.flags & kindMask {
	case dimenAbsolute:
		return style.DimenProperty(d.d)
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenNoneKW:
		return "none"
	case dimenNormal:
		return "normal"
	}
	switch d.flags & contentMask {
	case DimenContentMax:
		return "max-content"
	case DimenContentMin:
		return "min-content"
	case DimenContentFit:
		return "fit-content"
	}
	unit := ""
	switch d.flags & relativeMask {
	case dimenEM:
		unit = "em"
	case dimenEX:
		unit = "ex"
	case dimenCH:
		unit = "ch"
	case dimenREM:
		unit = "rem"
	case dimenVW:
		unit = "vw"
	case dimenVH:
		unit = "vh"
	case dimenVMIN:
		unit = "vmin"
	case dimenVMAX:
		unit = "vmax"
	case dimenPercent:
		unit = "%"
	default:
		return style.NullStyle
	}
	return style.Property(strconv.FormatFloat(d.scale, 'f', -1, 64) + unit)
}

func (d DimenT) String() string {
	if d.flags == dimenNone {
		return "<none>"
	}
	return d.Property().String()
}

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(sp|px|pt|pc|in|cm|mm|q|em|rem|ex|ch|vw|vh|vmin|vmax|%)?$`)

// ParseDimen parses a CSS length. Absolute units are converted to scaled
// points, relative units are kept. Keywords auto, inherit, initial, none,
// normal, min-content, max-content and fit-content are recognized.
func ParseDimen(s string) (DimenT, error) {
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "none":
		return DimenT{flags: dimenNoneKW}, nil
	case "normal":
		return DimenT{flags: dimenNormal}, nil
	case "max-content":
		return DimenT{flags: DimenContentMax}, nil
	case "min-content":
		return DimenT{flags: DimenContentMin}, nil
	case "fit-content":
		return DimenT{flags: DimenContentFit}, nil
	}
	m := dimenPattern.FindStringSubmatch(s)
	if m == nil {
		return DimenT{}, fmt.Errorf("not a CSS dimension: %q", s)
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("not a CSS dimension: %q: %w", s, err)
	}
	pt := float64(dimen.PT)
	switch m[2] {
	case "":
		if x != 0 {
			return DimenT{}, fmt.Errorf("CSS dimension %q lacks a unit", s)
		}
		return JustDimen(0), nil
	case "sp":
		return JustDimen(dimen.DU(math.Round(x))), nil
	case "px":
		return JustDimen(dimen.DU(math.Round(x * float64(style.PX)))), nil
	case "pt":
		return JustDimen(dimen.DU(math.Round(x * pt))), nil
	case "pc":
		return JustDimen(dimen.DU(math.Round(x * pt * 12))), nil
	case "in":
		return JustDimen(dimen.DU(math.Round(x * pt * 72))), nil
	case "cm":
		return JustDimen(dimen.DU(math.Round(x * pt * 72 / 2.54))), nil
	case "mm":
		return JustDimen(dimen.DU(math.Round(x * pt * 72 / 25.4))), nil
	case "q":
		return JustDimen(dimen.DU(math.Round(x * pt * 72 / 101.6))), nil
	case "em":
		return DimenT{scale: x, flags: dimenEM}, nil
	case "rem":
		return DimenT{scale: x, flags: dimenREM}, nil
	case "ex":
		return DimenT{scale: x, flags: dimenEX}, nil
	case "ch":
		return DimenT{scale: x, flags: dimenCH}, nil
	case "vw":
		return DimenT{scale: x, flags: dimenVW}, nil
	case "vh":
		return DimenT{scale: x, flags: dimenVH}, nil
	case "vmin":
		return DimenT{scale: x, flags: dimenVMIN}, nil
	case "vmax":
		return DimenT{scale: x, flags: dimenVMAX}, nil
	}
	return DimenT{scale: x, flags: dimenPercent}, nil // "%"
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a dimension.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is part of pattern matching for DimenT types.
type Matcher struct {
	dimen DimenT
}

// Just matches fixed dimensions and extracts their value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}
