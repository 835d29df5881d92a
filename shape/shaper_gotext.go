package shape

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"
	"unicode/utf8"

	gotextdi "github.com/go-text/typesetting/di"
	gotextfont "github.com/go-text/typesetting/font"
	gotextlang "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/opentype/loader"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/font"
)

// HarfbuzzShaper shapes text using go-text/typesetting's HarfBuzz-compatible
// engine. It is the one concrete Shaper ggtext ships; everywhere else in the
// engine that needs shaping takes the Shaper interface so tests can stub it.
//
// HarfbuzzShaper is safe for concurrent use. Parsed go-text fonts are
// cached (they are read-only and thread-safe); go-text's HarfbuzzShaper
// instances carry mutable scratch buffers and are pooled via sync.Pool
// rather than shared directly.
type HarfbuzzShaper struct {
	pool sync.Pool

	// fonts caches parsed go-text fonts keyed by our *font.Font, avoiding
	// re-parsing the same font data on every Shape call.
	fonts *cache.Cache[*font.Font, *gotextfont.Font]

	// runs caches fully shaped runs keyed by a string fingerprint of the
	// shaping request, so repeated layout passes over the same text (as
	// the auto-fit controller performs during its binary search) reuse
	// prior shaping work.
	runs *cache.ShardedCache[string, ShapedRun]
}

// NewHarfbuzzShaper constructs a HarfbuzzShaper with default cache sizes.
func NewHarfbuzzShaper() *HarfbuzzShaper {
	return &HarfbuzzShaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: cache.New[*font.Font, *gotextfont.Font](64),
		runs:  cache.NewSharded[string, ShapedRun](256, cache.StringHasher),
	}
}

// Shape implements Shaper.
func (s *HarfbuzzShaper) Shape(text string, f *font.Font, opts ShapingOptions) (ShapedRun, error) {
	if f == nil {
		return ShapedRun{}, ErrNilFont
	}
	if text == "" {
		return ShapedRun{}, nil
	}

	key := runCacheKey(text, f, opts)
	if cached, ok := s.runs.Get(key); ok {
		return cached, nil
	}

	gf, err := s.getOrParse(f)
	if err != nil {
		return ShapedRun{}, &Error{FontName: f.Name(), Err: err}
	}
	face := gotextfont.NewFace(gf)

	runes := []rune(text)
	byteOffsets := runeByteOffsets(text, runes)
	dir := mapDirection(opts.Direction)
	script := detectScript(runes)
	features := opts.Features
	if opts.Direction.IsVertical() {
		features = withVerticalFeatures(features)
	}
	lang := gotextlang.NewLanguage(opts.Language)
	if opts.Language == "" {
		lang = gotextlang.NewLanguage("en")
	}

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    dir,
		Face:         face,
		FontFeatures: mapFeatures(features),
		Size:         toFixed(opts.Size),
		Script:       script,
		Language:     lang,
	}

	hb, _ := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	run := ShapedRun{Glyphs: convertGlyphs(out.Glyphs, f, dir, byteOffsets)}
	for _, g := range run.Glyphs {
		if dir.IsVertical() {
			run.Advance += g.YAdvance
		} else {
			run.Advance += g.XAdvance
		}
	}

	s.runs.Set(key, run)
	return run, nil
}

func (s *HarfbuzzShaper) getOrParse(f *font.Font) (*gotextfont.Font, error) {
	return cacheGetOrCreateErr(s.fonts, f, func() (*gotextfont.Font, error) {
		face, err := gotextfont.ParseTTF(bytes.NewReader(f.Data()))
		if err != nil {
			return nil, fmt.Errorf("go-text ParseTTF: %w", err)
		}
		return face.Font, nil
	})
}

// cacheGetOrCreateErr adapts cache.Cache's error-free GetOrCreate to a
// create function that can fail, without caching the failure.
func cacheGetOrCreateErr[K comparable, V any](c *cache.Cache[K, V], key K, create func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}

func runCacheKey(text string, f *font.Font, opts ShapingOptions) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%p", f)
	b.WriteByte('|')
	for _, feat := range opts.Features {
		b.WriteString(feat.Tag)
		b.WriteByte('=')
		b.WriteString(strconv.FormatUint(uint64(feat.Value), 10))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(opts.Size, 'f', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(opts.Direction)))
	b.WriteByte('|')
	b.WriteString(opts.Language)
	b.WriteByte('|')
	b.WriteString(text)
	return b.String()
}

// withVerticalFeatures appends the "vert"/"vrt2" OpenType features a
// vertical-writing-mode run needs to request upright glyph forms, unless the
// caller already specified them explicitly.
func withVerticalFeatures(fs []FontFeature) []FontFeature {
	has := func(tag string) bool {
		for _, f := range fs {
			if f.Tag == tag {
				return true
			}
		}
		return false
	}
	out := make([]FontFeature, len(fs), len(fs)+2)
	copy(out, fs)
	if !has("vrt2") {
		out = append(out, FontFeature{Tag: "vrt2", Value: 1})
	}
	if !has("vert") {
		out = append(out, FontFeature{Tag: "vert", Value: 1})
	}
	return out
}

func mapDirection(d Direction) gotextdi.Direction {
	if d.IsVertical() {
		return gotextdi.DirectionTTB
	}
	return gotextdi.DirectionLTR
}

func mapFeatures(fs []FontFeature) []shaping.FontFeature {
	if len(fs) == 0 {
		return nil
	}
	out := make([]shaping.FontFeature, 0, len(fs))
	for _, f := range fs {
		tag := f.Tag
		for len(tag) < 4 {
			tag += " "
		}
		out = append(out, shaping.FontFeature{Tag: loader.MustNewTag(tag[:4]), Value: f.Value})
	}
	return out
}

// detectScript inspects the runes and returns the script of the first
// non-space character, a simple heuristic adequate for single-script runs;
// callers needing mixed-script text should split runs by script upstream.
func detectScript(runes []rune) gotextlang.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return gotextlang.LookupScript(r)
	}
	return gotextlang.Latin
}

func toFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// runeByteOffsets returns, for each rune index in runes, the byte offset
// that rune starts at in text, plus one trailing entry for len(text) so a
// rune index equal to len(runes) (as go-text reports for a run's end) maps
// cleanly too.
func runeByteOffsets(text string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		offsets[i] = b
		b += utf8.RuneLen(r)
	}
	offsets[len(runes)] = len(text)
	return offsets
}

func convertGlyphs(glyphs []shaping.Glyph, f *font.Font, dir gotextdi.Direction, byteOffsets []int) []PositionedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]PositionedGlyph, len(glyphs))
	for i, g := range glyphs {
		cluster := g.TextIndex()
		if cluster < 0 {
			cluster = 0
		} else if cluster >= len(byteOffsets) {
			cluster = len(byteOffsets) - 1
		}

		result[i] = PositionedGlyph{
			GlyphID: uint16(g.GlyphID), //nolint:gosec // go-text glyph IDs fit uint16 for TTF/OTF fonts
			Font:    f,
			Cluster: byteOffsets[cluster],
			XOffset: fromFixed(g.XOffset),
			YOffset: fromFixed(g.YOffset),
		}

		adv := fromFixed(g.Advance)
		if dir.IsVertical() {
			result[i].YAdvance = adv
		} else {
			result[i].XAdvance = adv
		}
	}
	return result
}
