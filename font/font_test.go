package font

import "testing"

// fakeParsedFont is a minimal in-memory ParsedFont used to exercise Font's
// pass-through behavior without needing real TTF/OTF bytes on disk.
type fakeParsedFont struct {
	name     string
	full     string
	glyphs   map[rune]uint16
	advances map[uint16]float64
	metrics  Metrics
	units    int
}

func (f *fakeParsedFont) Name() string     { return f.name }
func (f *fakeParsedFont) FullName() string { return f.full }
func (f *fakeParsedFont) NumGlyphs() int   { return len(f.glyphs) + 1 }
func (f *fakeParsedFont) UnitsPerEm() int  { return f.units }

func (f *fakeParsedFont) GlyphIndex(r rune) uint16 {
	return f.glyphs[r]
}

func (f *fakeParsedFont) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

func (f *fakeParsedFont) Advance(gid uint16, size float64) float64 {
	return f.advances[gid] * size / 12
}

func (f *fakeParsedFont) Bounds(gid uint16, size float64) Rect {
	return Rect{}
}

func (f *fakeParsedFont) Metrics(size float64) (Metrics, error) {
	scale := size / 12
	return Metrics{
		Ascent:    f.metrics.Ascent * scale,
		Descent:   f.metrics.Descent * scale,
		LineGap:   f.metrics.LineGap * scale,
		XHeight:   f.metrics.XHeight * scale,
		CapHeight: f.metrics.CapHeight * scale,
	}, nil
}

type fakeParser struct{ font *fakeParsedFont }

func (p *fakeParser) Parse(data []byte) (ParsedFont, error) {
	return p.font, nil
}

func newFakeFont(t *testing.T, f *fakeParsedFont) *Font {
	t.Helper()
	const backend = "font-test-fake"
	RegisterParser(backend, &fakeParser{font: f})
	font, err := New([]byte("stub-data"), WithParser(backend))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return font
}

func TestNewEmptyData(t *testing.T) {
	if _, err := New(nil); err != ErrEmptyData {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestFontNameFallsBackToFullName(t *testing.T) {
	f := newFakeFont(t, &fakeParsedFont{full: "Example Sans Full"})
	if got := f.Name(); got != "Example Sans Full" {
		t.Fatalf("Name() = %q, want fallback to FullName", got)
	}
}

func TestFontNameUnknownWhenBothEmpty(t *testing.T) {
	f := newFakeFont(t, &fakeParsedFont{})
	if got := f.Name(); got != "Unknown Font" {
		t.Fatalf("Name() = %q, want %q", got, "Unknown Font")
	}
}

func TestFontGlyphLookup(t *testing.T) {
	f := newFakeFont(t, &fakeParsedFont{
		name:     "Example",
		glyphs:   map[rune]uint16{'A': 5},
		advances: map[uint16]float64{5: 12},
	})

	if gid := f.GlyphIndex('A'); gid != 5 {
		t.Errorf("GlyphIndex('A') = %d, want 5", gid)
	}
	if !f.HasGlyph('A') {
		t.Error("HasGlyph('A') = false, want true")
	}
	if f.HasGlyph('Z') {
		t.Error("HasGlyph('Z') = true, want false")
	}
	if adv := f.Advance(5, 24); adv != 24 {
		t.Errorf("Advance(5, 24) = %v, want 24", adv)
	}
}

func TestFontMetricsLineHeight(t *testing.T) {
	f := newFakeFont(t, &fakeParsedFont{
		metrics: Metrics{Ascent: 10, Descent: 2, LineGap: 0},
	})
	m, err := f.Metrics(12)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if got := m.LineHeight(); got != 12 {
		t.Errorf("LineHeight() = %v, want 12", got)
	}
}

func TestFontCopyCheckPanics(t *testing.T) {
	f := newFakeFont(t, &fakeParsedFont{})

	var cp Font
	copyFontFields(f, &cp)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on copied Font")
		}
	}()
	cp.Name()
}

// copyFontFields copies src's fields into dst by hand (rather than `*dst =
// *src`) to avoid a go vet copylocks warning on the embedded mutex, while
// still leaving dst.addr pointing at src — exactly the bug copyCheck exists
// to catch.
func copyFontFields(src, dst *Font) {
	dst.addr = src.addr
	dst.data = src.data
	dst.parsed = src.parsed
	dst.name = src.name
	dst.backend = src.backend
}

func TestUnknownParserFallsBackToDefault(t *testing.T) {
	if p := getParser("does-not-exist"); p != registry[defaultBackend] {
		t.Fatal("getParser should fall back to the default backend")
	}
}
