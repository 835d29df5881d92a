package ggtext

import "github.com/gogpu/ggtext/shape"

// PositionedGlyph is one shaped, line-placed glyph. It is the same type
// shape.Shaper produces; the layout engine only ever translates the
// coordinates a shaper already filled in, so there is no need for a second,
// field-for-field-identical struct at this layer.
type PositionedGlyph = shape.PositionedGlyph

// Point is an (X, Y) coordinate in the Y-down output coordinate space.
type Point struct {
	X, Y float64
}

// LayoutLine is one laid-out line (or, in VerticalRightToLeft mode, one
// column) of text.
type LayoutLine struct {
	Glyphs []PositionedGlyph
	// Range is the [start, end) byte offset range into the original text
	// this line spans.
	Range [2]int
	// Advance is the total flow-axis advance of the line's glyphs.
	Advance float64
	// Baseline is this line's baseline origin, in the Y-down output space,
	// after ink-bounds translation.
	Baseline Point
}

// LayoutRun is the result of laying out one text run: every line, plus the
// tight output bounds and the font size the layout settled on.
type LayoutRun struct {
	Lines    []LayoutLine
	Width    float64
	Height   float64
	FontSize float64
}
