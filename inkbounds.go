package ggtext

import "math"

// translateToInkOrigin computes tight output bounds over every line's
// glyphs and shifts all baselines so the rendered ink lies in
// [0, width] x [0, height], per spec.md §4.6.
func translateToInkOrigin(lines []LayoutLine, mode WritingMode, fontSize, lh, descent float64) (width, height float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	gathered := false

	for li := range lines {
		line := &lines[li]
		x, y := line.Baseline.X, line.Baseline.Y

		for _, g := range line.Glyphs {
			if g.Font == nil {
				x += g.XAdvance
				y -= g.YAdvance
				continue
			}
			bounds := g.Font.Bounds(g.GlyphID, fontSize)
			if bounds.IsFinite() && !bounds.Empty() {
				x0 := x + g.XOffset + bounds.MinX
				x1 := x + g.XOffset + bounds.MaxX
				y0 := (y - g.YOffset) - bounds.MaxY
				y1 := (y - g.YOffset) - bounds.MinY

				minX = math.Min(minX, math.Min(x0, x1))
				maxX = math.Max(maxX, math.Max(x0, x1))
				minY = math.Min(minY, math.Min(y0, y1))
				maxY = math.Max(maxY, math.Max(y0, y1))
				gathered = true
			}

			x += g.XAdvance
			y -= g.YAdvance
		}
	}

	if !gathered {
		return coarseBounds(lines, mode, lh, descent)
	}

	const pad = 1.0
	minX -= pad
	minY -= pad
	maxX += pad
	maxY += pad

	for li := range lines {
		lines[li].Baseline.X -= minX
		lines[li].Baseline.Y -= minY
	}

	return maxX - minX, maxY - minY
}

// coarseBounds is the fallback used when no glyph contributed finite ink
// bounds (e.g. an all-whitespace run). It reuses the baseline placer's own
// geometry rather than ink bounds, per spec.md §4.6 step 3 and
// SPEC_FULL.md §12's resolution of the vertical fallback open question:
// horizontally, width is the largest line advance and height is
// line_height times (line count - 1); vertically (lines are columns), width
// is line_height times the column count and height is the largest column
// advance. Both branches account for the first line's own baseline offset
// and descent so the coarse box doesn't clip ink that ink-bounds
// translation would otherwise have included.
func coarseBounds(lines []LayoutLine, mode WritingMode, lh float64, descent float64) (width, height float64) {
	if len(lines) == 0 {
		return 0, 0
	}

	maxAdvance := 0.0
	for _, l := range lines {
		if a := math.Abs(l.Advance); a > maxAdvance {
			maxAdvance = a
		}
	}
	n := len(lines)

	if mode.IsVertical() {
		width = float64(n) * lh
		height = maxAdvance + lines[0].Baseline.Y + descent
		return width, height
	}

	width = maxAdvance
	height = float64(n-1)*lh + lines[0].Baseline.Y + descent
	return width, height
}
