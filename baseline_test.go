package ggtext

import "testing"

func TestLineHeightIsMaxOfMetricsAndFontSize(t *testing.T) {
	m := defaultTestMetrics() // ascent 10 + descent 3 + leading 1 = 14
	if got := lineHeight(m, 12); got != 14 {
		t.Errorf("lineHeight(m, 12) = %v, want 14", got)
	}
	if got := lineHeight(m, 20); got != 20 {
		t.Errorf("lineHeight(m, 20) = %v, want 20 (font size dominates)", got)
	}
}

func TestPlaceBaselinesHorizontal(t *testing.T) {
	m := defaultTestMetrics()
	lines := make([]LayoutLine, 3)
	placeBaselines(lines, Horizontal, m, 12)

	lh := lineHeight(m, 12)
	for i, l := range lines {
		wantY := m.Ascent + float64(i)*lh
		if l.Baseline.X != 0 || l.Baseline.Y != wantY {
			t.Errorf("line %d baseline = %v, want (0, %v)", i, l.Baseline, wantY)
		}
	}
}

func TestPlaceBaselinesVerticalRightToLeft(t *testing.T) {
	m := defaultTestMetrics()
	lines := make([]LayoutLine, 2)
	placeBaselines(lines, VerticalRightToLeft, m, 12)

	lh := lineHeight(m, 12)
	// First column (index 0) should be rightmost.
	if lines[0].Baseline.X <= lines[1].Baseline.X {
		t.Errorf("expected column 0 to sit right of column 1: %v vs %v", lines[0].Baseline.X, lines[1].Baseline.X)
	}
	for i, l := range lines {
		wantX := float64(len(lines)-1-i)*lh + lh*0.5
		if l.Baseline.X != wantX || l.Baseline.Y != m.Ascent {
			t.Errorf("line %d baseline = %v, want (%v, %v)", i, l.Baseline, wantX, m.Ascent)
		}
	}
}

func TestPlaceBaselinesEmptyIsNoOp(t *testing.T) {
	var lines []LayoutLine
	placeBaselines(lines, Horizontal, defaultTestMetrics(), 12)
	if lines != nil {
		t.Error("expected nil slice to remain nil")
	}
}
