package ggtext

import (
	"math"

	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/linebreak"
	"github.com/gogpu/ggtext/shape"
)

// composeLines walks consecutive line-break opportunity pairs (prefixed
// with a synthetic boundary at the text's own start) and builds lines by
// shaping each candidate segment and deciding, per spec.md §4.4, whether to
// end the current line before or after it. maxExtent is the flow-axis
// limit the would_overflow test checks against; pass +Inf to disable
// overflow-based breaking (only mandatory breaks apply).
func composeLines(
	text string,
	mode WritingMode,
	fontSize float64,
	primary *font.Font,
	fallbacks []*font.Font,
	shaper shape.Shaper,
	opportunities []linebreak.Opportunity,
	language string,
	maxExtent float64,
) ([]LayoutLine, error) {
	if primary == nil {
		return nil, ErrEmptyFontList
	}
	if text == "" {
		return nil, nil
	}

	opts := shape.ShapingOptions{
		Size:      fontSize,
		Direction: directionFor(mode),
		Language:  language,
	}

	// opportunities marks where a line may END (text[lineStart:Offset]); it
	// never includes an entry for the text's own start. Prepend a synthetic
	// one so consecutive pairs walk (segmentStart, segmentEnd) rather than
	// skipping the first segment entirely.
	bounds := make([]linebreak.Opportunity, 0, len(opportunities)+1)
	bounds = append(bounds, linebreak.Opportunity{Offset: 0})
	bounds = append(bounds, opportunities...)

	var lines []LayoutLine
	lineStart := 0
	current := LayoutLine{Range: [2]int{0, 0}}

	for i := 0; i+1 < len(bounds); i++ {
		a := bounds[i]
		b := bounds[i+1]
		segment := text[a.Offset:b.Offset]

		run, _, err := shapeWithFallbacks(shaper, segment, primary, fallbacks, opts)
		if err != nil {
			return nil, &ShapingError{Segment: segment, Err: err}
		}
		segAdvance := math.Abs(run.Advance)

		// would_overflow is evaluated against the line as it stands before
		// this segment: if adding it would overflow, the prior content
		// becomes its own line and this segment starts the next one.
		wouldOverflow := len(current.Glyphs) > 0 && math.Abs(current.Advance)+segAdvance > maxExtent
		if wouldOverflow {
			current.Range[1] = a.Offset
			lines = append(lines, current)
			lineStart = a.Offset
			current = LayoutLine{Range: [2]int{lineStart, lineStart}}
		}

		for _, g := range run.Glyphs {
			g.Cluster += a.Offset
			current.Glyphs = append(current.Glyphs, g)
		}
		current.Advance += segAdvance

		// A mandatory break ends the line right here, including the
		// segment just appended.
		if b.IsMandatory && len(current.Glyphs) > 0 {
			current.Range[1] = b.Offset
			lines = append(lines, current)
			lineStart = b.Offset
			current = LayoutLine{Range: [2]int{lineStart, lineStart}}
		}
	}

	if len(current.Glyphs) > 0 {
		current.Range[1] = len(text)
		lines = append(lines, current)
	}

	return lines, nil
}

// shapeWithFallbacks shapes segment with the first font (primary, then
// fallbacks in order) that has a glyph for every non-whitespace rune in
// segment. If none qualifies, it shapes with primary anyway: the run still
// advances the pen for missing glyphs, per spec.md §7's recovery semantics
// (per-glyph ink-bounds gaps are handled later, in inkbounds.go).
func shapeWithFallbacks(
	shaper shape.Shaper,
	segment string,
	primary *font.Font,
	fallbacks []*font.Font,
	opts shape.ShapingOptions,
) (shape.ShapedRun, *font.Font, error) {
	chosen := primary
	if !fontCoversSegment(primary, segment) {
		for _, f := range fallbacks {
			if fontCoversSegment(f, segment) {
				chosen = f
				break
			}
		}
	}

	run, err := shaper.Shape(segment, chosen, opts)
	return run, chosen, err
}

func fontCoversSegment(f *font.Font, segment string) bool {
	if f == nil {
		return false
	}
	for _, r := range segment {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if !f.HasGlyph(r) {
			return false
		}
	}
	return true
}

func directionFor(mode WritingMode) shape.Direction {
	if mode.IsVertical() {
		return shape.DirectionTTB
	}
	return shape.DirectionLTR
}
