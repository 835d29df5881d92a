// Package hyphen finds linguistically-aware word split points using the
// Knuth-Liang pattern algorithm, the same one backing TeX/LaTeX
// hyphenation, and provides the punctuation-aware word splitting the
// layout engine's auto-fit controller uses to make long words fit a box.
package hyphen

import (
	"math"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/internal/logging"
)

// Hyphenator finds hyphenation points in words for one configured
// language. It is safe for concurrent use: the pattern set it wraps is
// immutable after construction.
type Hyphenator struct {
	language Language
	patterns *patternSet
}

// patternSetCache memoizes pattern-set lookups across Hyphenator
// constructions; the sets themselves are package-level immutable tables, so
// this cache exists purely to avoid repeating the lookupPatternSet work
// (and, for a future backend that loads pattern files from disk, to avoid
// re-parsing them) when the caller constructs many Hyphenators for the same
// language, such as once per layout engine.
var patternSetCache = cache.New[Language, *patternSet](32)

// New constructs a Hyphenator for the given BCP-47-style language code or
// human-readable name (case-insensitive). It returns ErrUnsupportedLanguage
// if code does not resolve to any of the canonical languages this package
// recognizes (see language.go). A recognized language whose pattern set
// isn't bundled silently falls back to EnglishUS patterns, logged at debug
// level.
func New(code string) (*Hyphenator, error) {
	lang, ok := resolveLanguage(code)
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	return newForLanguage(lang), nil
}

// English returns a Hyphenator configured for US English, the default and
// fallback language.
func English() *Hyphenator {
	return newForLanguage(EnglishUS)
}

func newForLanguage(lang Language) *Hyphenator {
	if ps, ok := patternSetCache.Get(lang); ok {
		return &Hyphenator{language: lang, patterns: ps}
	}
	ps, bundled := lookupPatternSet(lang)
	if !bundled {
		logging.Get().Debug("hyphen: no bundled pattern set, falling back to English",
			"language", string(lang))
	}
	patternSetCache.Set(lang, ps)
	return &Hyphenator{language: lang, patterns: ps}
}

// Language reports the language this Hyphenator was constructed for.
func (h *Hyphenator) Language() Language { return h.language }

// HyphenationPoints returns every valid split point in word, as character
// indices 0 < k < chars(word), in ascending order.
func (h *Hyphenator) HyphenationPoints(word string) []int {
	if h == nil || h.patterns == nil {
		return nil
	}
	return h.patterns.hyphenationPoints(word)
}

// FindSplitPoint returns the hyphenation point closest to the center of
// word (minimizing |k - floor(chars(word)/2)|, earliest on ties), and
// whether any split point exists at all.
func (h *Hyphenator) FindSplitPoint(word string) (int, bool) {
	points := h.HyphenationPoints(word)
	if len(points) == 0 {
		return 0, false
	}
	n := len([]rune(word))
	target := n / 2

	best := points[0]
	bestDist := distance(best, target)
	for _, k := range points[1:] {
		d := distance(k, target)
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, true
}

func distance(a, b int) int {
	return int(math.Abs(float64(a - b)))
}
