package font

// Parser parses raw font bytes (TTF or OTF) into a ParsedFont. The
// abstraction allows swapping the parsing backend without touching callers;
// the default and only bundled backend wraps golang.org/x/image/font/opentype.
type Parser interface {
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont abstracts a parsed font file well enough to drive shaping and
// ink-bounds translation: glyph lookup, per-glyph advance and bounds at a
// given size, and face-level metrics at a given size.
type ParsedFont interface {
	// Name returns the font family name, or "" if unavailable.
	Name() string

	// FullName returns the full font name, or "" if unavailable.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the font's units-per-em.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for r, or 0 (.notdef) if absent.
	GlyphIndex(r rune) uint16

	// HasGlyph reports whether the font has a mapped, non-.notdef glyph for r.
	HasGlyph(r rune) bool

	// Advance returns the advance width of a glyph at the given size in points.
	Advance(glyphIndex uint16, size float64) float64

	// Bounds returns the ink bounding box of a glyph at the given size in points.
	Bounds(glyphIndex uint16, size float64) Rect

	// Metrics returns face-level metrics at the given size in points, or an
	// error if the underlying font data doesn't expose them at that size.
	Metrics(size float64) (Metrics, error)
}

// registry holds registered parser backends, keyed by name.
var registry = map[string]Parser{
	"ximage": &ximageParser{},
}

// defaultBackend is the name of the backend used when none is requested.
const defaultBackend = "ximage"

// RegisterParser registers a custom font-parsing backend under name, making
// it selectable via WithParser.
func RegisterParser(name string, p Parser) {
	registry[name] = p
}

func getParser(name string) Parser {
	if p, ok := registry[name]; ok {
		return p
	}
	return registry[defaultBackend]
}
