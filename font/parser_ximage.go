package font

import (
	"fmt"

	ximage "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements Parser using golang.org/x/image/font/opentype.
type ximageParser struct{}

func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &ParseError{Backend: "ximage", Err: fmt.Errorf("opentype.Parse: %w", err)}
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont on top of an *opentype.Font
// (a thin wrapper over *sfnt.Font). sfnt.Font is safe for concurrent reads
// once parsed; each call here uses its own sfnt.Buffer since sfnt.Buffer is
// scratch space and not safe to share across goroutines.
type ximageParsedFont struct {
	font *opentype.Font
}

func (f *ximageParsedFont) Name() string {
	if s, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && s != "" {
		return s
	}
	return ""
}

func (f *ximageParsedFont) FullName() string {
	if s, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && s != "" {
		return s
	}
	return ""
}

func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

func (f *ximageParsedFont) HasGlyph(r rune) bool {
	idx, err := f.font.GlyphIndex(nil, r)
	return err == nil && idx != 0
}

func (f *ximageParsedFont) Advance(glyphIndex uint16, size float64) float64 {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), fixed.Int26_6(size*64), ximage.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat64(adv)
}

func (f *ximageParsedFont) Bounds(glyphIndex uint16, size float64) Rect {
	var buf sfnt.Buffer
	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(glyphIndex), fixed.Int26_6(size*64), ximage.HintingFull)
	if err != nil {
		return Rect{}
	}
	return Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: fixedToFloat64(bounds.Min.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: fixedToFloat64(bounds.Max.Y),
	}
}

func (f *ximageParsedFont) Metrics(size float64) (Metrics, error) {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, fixed.Int26_6(size*64), ximage.HintingFull)
	if err != nil {
		return Metrics{}, fmt.Errorf("sfnt.Font.Metrics: %w", err)
	}
	return Metrics{
		Ascent:    fixedToFloat64(m.Ascent),
		Descent:   fixedToFloat64(m.Descent),
		LineGap:   fixedToFloat64(m.Height) - fixedToFloat64(m.Ascent) - fixedToFloat64(m.Descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}, nil
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
