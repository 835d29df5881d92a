// Package shape turns plain text into positioned glyphs. It wraps
// go-text/typesetting's HarfBuzz-compatible shaper behind a small interface
// so the rest of ggtext depends on a capability, not a specific shaping
// library; font/glyph-fallback resolution and the shaping engine's own
// internals are out of scope here; this package only drives one concrete
// collaborator and positions what comes back.
package shape

import (
	"github.com/gogpu/ggtext/font"
)

// Direction is the text direction a run should be shaped in. It is
// independent of ggtext's line-layout WritingMode: a VerticalRightToLeft
// layout shapes its runs with DirectionTTB plus the vertical OpenType
// features, not DirectionRTL (see Non-goals: ggtext never asks a shaper for
// horizontal right-to-left runs).
type Direction int

const (
	// DirectionLTR is left-to-right horizontal text.
	DirectionLTR Direction = iota
	// DirectionTTB is top-to-bottom vertical text.
	DirectionTTB
)

// IsVertical reports whether d lays glyphs out top-to-bottom.
func (d Direction) IsVertical() bool { return d == DirectionTTB }

// FontFeature is an OpenType feature tag/value pair, such as {"vert", 1} to
// request vertical glyph forms.
type FontFeature struct {
	Tag   string
	Value uint32
}

// ShapingOptions configures a single Shape call.
type ShapingOptions struct {
	// Size is the font size in points.
	Size float64
	// Direction is the direction to shape the run in.
	Direction Direction
	// Language is a BCP-47 language tag, e.g. "en" or "de-DE". Empty means
	// "unspecified"; the shaper picks script-appropriate defaults.
	Language string
	// Features lists additional OpenType features to request, appended to
	// whatever the direction implies (e.g. "vert"/"vrt2" for vertical text).
	Features []FontFeature
}

// PositionedGlyph is one shaped glyph: an identifier into the source font,
// the byte offset of the text cluster it came from, and pen-relative
// positioning in font units (points), before any line-layout translation.
type PositionedGlyph struct {
	GlyphID  uint16
	Font     *font.Font
	Cluster  int
	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64
}

// ShapedRun is the output of shaping one contiguous span of text against
// one font.
type ShapedRun struct {
	Glyphs []PositionedGlyph
	// Advance is the total pen advance of the run: X for horizontal
	// directions, Y for vertical ones. It is signed the way the direction
	// naturally advances (vertical advances are negative, Y-up).
	Advance float64
}

// Shaper converts text into positioned glyphs against a font.
type Shaper interface {
	Shape(text string, f *font.Font, opts ShapingOptions) (ShapedRun, error)
}
