package ggtext

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/shape"
)

// fakeParsedFont is a minimal in-memory font.ParsedFont, letting the tests
// in this package build a *font.Font without real TTF/OTF bytes on disk.
type fakeParsedFont struct {
	name    string
	glyphs  map[rune]uint16
	bounds  map[uint16]font.Rect
	metrics font.Metrics

	// glyphsCoverAll, when set, makes HasGlyph/GlyphIndex report coverage
	// for every rune, for tests where which specific runes are mapped
	// doesn't matter, only that no segment is ever treated as uncovered.
	glyphsCoverAll bool

	// metricsErr, when set, makes Metrics fail instead of returning a value,
	// for tests exercising the MetricsError wrapping path.
	metricsErr error
}

func (f *fakeParsedFont) Name() string     { return f.name }
func (f *fakeParsedFont) FullName() string { return f.name }
func (f *fakeParsedFont) NumGlyphs() int   { return len(f.glyphs) + 1 }
func (f *fakeParsedFont) UnitsPerEm() int  { return 1000 }

func (f *fakeParsedFont) GlyphIndex(r rune) uint16 {
	if f.glyphsCoverAll {
		return 1
	}
	return f.glyphs[r]
}

func (f *fakeParsedFont) HasGlyph(r rune) bool {
	if f.glyphsCoverAll || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	_, ok := f.glyphs[r]
	return ok
}

func (f *fakeParsedFont) Advance(gid uint16, size float64) float64 {
	return size * 0.6
}

func (f *fakeParsedFont) Bounds(gid uint16, size float64) font.Rect {
	if r, ok := f.bounds[gid]; ok {
		return r
	}
	return font.Rect{MinX: 0, MinY: 0, MaxX: size * 0.6, MaxY: size * 0.7}
}

func (f *fakeParsedFont) Metrics(size float64) (font.Metrics, error) {
	if f.metricsErr != nil {
		return font.Metrics{}, f.metricsErr
	}
	scale := size / 12
	return font.Metrics{
		Ascent:    f.metrics.Ascent * scale,
		Descent:   f.metrics.Descent * scale,
		LineGap:   f.metrics.LineGap * scale,
		XHeight:   f.metrics.XHeight * scale,
		CapHeight: f.metrics.CapHeight * scale,
	}, nil
}

type fakeParser struct{ font *fakeParsedFont }

func (p *fakeParser) Parse(data []byte) (font.ParsedFont, error) {
	return p.font, nil
}

var fakeBackendCounter int

// newTestFont registers f under a fresh backend name and builds a *font.Font
// from it, so every test gets an isolated registry entry.
func newTestFont(t *testing.T, f *fakeParsedFont) *font.Font {
	t.Helper()
	fakeBackendCounter++
	backend := fmt.Sprintf("ggtext-test-fake-%d", fakeBackendCounter)
	font.RegisterParser(backend, &fakeParser{font: f})
	fnt, err := font.New([]byte("stub"), font.WithParser(backend))
	if err != nil {
		t.Fatalf("font.New: %v", err)
	}
	return fnt
}

func defaultTestMetrics() font.Metrics {
	return font.Metrics{Ascent: 10, Descent: 3, LineGap: 1}
}

func shapingOptsForTest() shape.ShapingOptions {
	return shape.ShapingOptions{Size: 12, Direction: shape.DirectionLTR}
}

// fakeShaper is a deterministic monospace shaper: every rune, including
// whitespace, advances the pen by factor*size and maps to a glyph via the
// font's own GlyphIndex (0 for anything the font doesn't cover). Scaling by
// the requested size lets auto-fit tests exercise a real size/extent
// tradeoff instead of a size-independent constant.
type fakeShaper struct {
	factor float64
}

func newFakeShaper(factor float64) *fakeShaper {
	return &fakeShaper{factor: factor}
}

func (s *fakeShaper) Shape(text string, f *font.Font, opts shape.ShapingOptions) (shape.ShapedRun, error) {
	if f == nil {
		return shape.ShapedRun{}, nil
	}
	if text == "" {
		return shape.ShapedRun{}, nil
	}

	perGlyph := s.factor * opts.Size
	var glyphs []shape.PositionedGlyph
	var total float64
	offset := 0
	for _, r := range text {
		g := shape.PositionedGlyph{
			GlyphID: f.GlyphIndex(r),
			Font:    f,
			Cluster: offset,
		}
		if opts.Direction.IsVertical() {
			g.YAdvance = -perGlyph
		} else {
			g.XAdvance = perGlyph
		}
		glyphs = append(glyphs, g)
		total += perGlyph
		offset += utf8.RuneLen(r)
	}

	advance := total
	if opts.Direction.IsVertical() {
		advance = -total
	}
	return shape.ShapedRun{Glyphs: glyphs, Advance: advance}, nil
}
