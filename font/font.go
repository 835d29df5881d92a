// Package font loads font files and exposes the glyph lookup, advance,
// bounds, and metrics operations the rest of ggtext needs to shape and lay
// out text. It deliberately stops short of rasterization: nothing here
// produces pixels, only the geometric facts a shaper or an ink-bounds
// translator requires.
package font

import (
	"fmt"
	"os"
	"sync"
)

// Font is a loaded, parsed font file. One Font can be shaped at any number
// of sizes; size-dependent values (advance, bounds, metrics) are computed
// on demand rather than cached per-size inside Font itself.
//
// Font is safe for concurrent use. It must not be copied after creation.
type Font struct {
	// addr points back at the Font itself; used to detect accidental
	// copies by value, which would silently duplicate the data/parsed
	// fields rather than sharing them.
	addr *Font

	data   []byte
	parsed ParsedFont
	name   string

	mu sync.RWMutex

	backend string
}

// Option configures font loading.
type Option func(*config)

type config struct {
	backend string
}

func defaultConfig() config {
	return config{backend: defaultBackend}
}

// WithParser selects a registered parsing backend by name. Unknown names
// fall back to the default ("ximage").
func WithParser(name string) Option {
	return func(c *config) { c.backend = name }
}

// New parses font data (TTF or OTF) into a Font. The data is copied
// internally and may be reused or modified by the caller after this call
// returns.
func New(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := getParser(cfg.backend).Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	f := &Font{
		data:    dataCopy,
		parsed:  parsed,
		backend: cfg.backend,
	}
	f.addr = f
	f.name = extractName(parsed)
	return f, nil
}

// LoadFile reads path and parses it as a font.
func LoadFile(path string, opts ...Option) (*Font, error) {
	// #nosec G304 -- font path is supplied by the caller/config, not attacker input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read %q: %w", path, err)
	}
	return New(data, opts...)
}

// Name returns the font family name.
func (f *Font) Name() string {
	f.copyCheck()
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.name
}

// GlyphIndex returns the glyph index mapped to r, or 0 if the font has no
// glyph for it.
func (f *Font) GlyphIndex(r rune) uint16 {
	f.copyCheck()
	return f.parsed.GlyphIndex(r)
}

// HasGlyph reports whether the font maps r to a real (non-.notdef) glyph.
func (f *Font) HasGlyph(r rune) bool {
	f.copyCheck()
	return f.parsed.HasGlyph(r)
}

// Advance returns the advance width of a glyph at size (in points).
func (f *Font) Advance(glyphIndex uint16, size float64) float64 {
	f.copyCheck()
	return f.parsed.Advance(glyphIndex, size)
}

// Bounds returns the ink bounding box of a glyph at size (in points).
func (f *Font) Bounds(glyphIndex uint16, size float64) Rect {
	f.copyCheck()
	return f.parsed.Bounds(glyphIndex, size)
}

// Metrics returns face-level metrics at size (in points), or an error if
// the underlying font data doesn't expose them at that size.
func (f *Font) Metrics(size float64) (Metrics, error) {
	f.copyCheck()
	return f.parsed.Metrics(size)
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	f.copyCheck()
	return f.parsed.NumGlyphs()
}

// UnitsPerEm returns the font's units-per-em.
func (f *Font) UnitsPerEm() int {
	f.copyCheck()
	return f.parsed.UnitsPerEm()
}

// Data returns the raw font bytes backing this Font. Callers must not
// modify the returned slice.
func (f *Font) Data() []byte {
	f.copyCheck()
	return f.data
}

// copyCheck panics if Font was copied by value rather than shared by
// pointer, which would desynchronize addr from the receiver.
func (f *Font) copyCheck() {
	if f.addr != f {
		panic("font: Font must not be copied by value")
	}
}

func extractName(p ParsedFont) string {
	if n := p.Name(); n != "" {
		return n
	}
	if n := p.FullName(); n != "" {
		return n
	}
	return "Unknown Font"
}
