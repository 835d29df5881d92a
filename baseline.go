package ggtext

import (
	"math"

	"github.com/gogpu/ggtext/font"
)

// lineHeight returns max(ascent + descent + leading, font_size), per
// spec.md §4.5.
func lineHeight(m font.Metrics, fontSize float64) float64 {
	return math.Max(m.LineHeight(), fontSize)
}

// placeBaselines assigns each line a baseline origin per spec.md §4.5:
// Horizontal lines stack downward at a fixed X; VerticalRightToLeft columns
// stack leftward (descending X) at a fixed Y, with the first column placed
// at the rightmost X.
func placeBaselines(lines []LayoutLine, mode WritingMode, m font.Metrics, fontSize float64) {
	n := len(lines)
	if n == 0 {
		return
	}
	lh := lineHeight(m, fontSize)

	for i := range lines {
		switch mode {
		case VerticalRightToLeft:
			x := float64(n-1-i)*lh + lh*0.5
			lines[i].Baseline = Point{X: x, Y: m.Ascent}
		default:
			lines[i].Baseline = Point{X: 0, Y: m.Ascent + float64(i)*lh}
		}
	}
}
