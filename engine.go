package ggtext

import (
	"math"

	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/hyphen"
	"github.com/gogpu/ggtext/linebreak"
	"github.com/gogpu/ggtext/shape"
)

// Engine lays out text against a primary font (plus optional fallbacks)
// under a configured writing mode, size, and box. It is built with a
// chain of With* methods, mirroring the original builder this engine is
// modeled on (see DESIGN.md), then run with Run.
//
// Engine is not safe for concurrent configuration, but once built, Run may
// be called concurrently provided the configured fonts are not mutated
// (see SPEC_FULL.md §10).
type Engine struct {
	primary   *font.Font
	fallbacks []*font.Font

	mode WritingMode

	// fontSize is the caller-supplied fixed size, or 0 to mean "auto"
	// (binary-search / iterative-fit mode).
	fontSize float64

	maxWidth  float64
	maxHeight float64

	autoWordBreak  bool
	hyphenLanguage string
	hyphenator     *hyphen.Hyphenator

	shaper  shape.Shaper
	breaker linebreak.Breaker
}

// NewEngine constructs an Engine with defaults matching spec.md §6:
// Horizontal writing mode, auto font size, unbounded box, auto word break
// off, no hyphenation language, no fallback fonts.
func NewEngine(primary *font.Font) *Engine {
	return &Engine{
		primary:   primary,
		mode:      Horizontal,
		fontSize:  0,
		maxWidth:  math.Inf(1),
		maxHeight: math.Inf(1),
		shaper:    shape.NewHarfbuzzShaper(),
		breaker:   linebreak.UAX14Breaker{},
	}
}

// WithWritingMode sets the writing mode.
func (e *Engine) WithWritingMode(m WritingMode) *Engine {
	e.mode = m
	return e
}

// WithFontSize fixes the font size, disabling auto-fit. Pass 0 (or never
// call this) to request auto-fit.
func (e *Engine) WithFontSize(size float64) *Engine {
	e.fontSize = size
	return e
}

// WithFallbackFonts appends fonts to try, in order, for a segment the
// primary font cannot fully render.
func (e *Engine) WithFallbackFonts(fonts ...*font.Font) *Engine {
	e.fallbacks = append(e.fallbacks, fonts...)
	return e
}

// WithMaxWidth sets the box width auto-fit and overflow-based line breaking
// are measured against.
func (e *Engine) WithMaxWidth(w float64) *Engine {
	e.maxWidth = w
	return e
}

// WithMaxHeight sets the box height auto-fit and overflow-based line
// breaking are measured against.
func (e *Engine) WithMaxHeight(h float64) *Engine {
	e.maxHeight = h
	return e
}

// WithAutoWordBreak enables splitting the longest word via hyphenation
// when auto-fit can't otherwise make the text fit the box (spec.md §4.7).
// It has no effect unless a hyphenation language or hyphenator is also
// configured.
func (e *Engine) WithAutoWordBreak(on bool) *Engine {
	e.autoWordBreak = on
	return e
}

// WithHyphenationLanguage configures hyphenation by BCP-47-style code or
// human-readable name (see hyphen.New). Resolution is deferred to Run, so
// an unrecognized code surfaces as a Run error rather than a panic here.
func (e *Engine) WithHyphenationLanguage(code string) *Engine {
	e.hyphenLanguage = code
	e.hyphenator = nil
	return e
}

// WithHyphenator injects a pre-built Hyphenator directly, letting a caller
// share one Hyphenator across many engines instead of re-resolving a
// language code each time. Takes precedence over WithHyphenationLanguage.
func (e *Engine) WithHyphenator(h *hyphen.Hyphenator) *Engine {
	e.hyphenator = h
	return e
}

// WithShaper overrides the default HarfBuzz-backed shaper, primarily for
// tests that need a deterministic fake.
func (e *Engine) WithShaper(s shape.Shaper) *Engine {
	e.shaper = s
	return e
}

// WithLineBreaker overrides the default UAX#14-flavored opportunity
// finder, primarily for tests that need a deterministic fake.
func (e *Engine) WithLineBreaker(b linebreak.Breaker) *Engine {
	e.breaker = b
	return e
}

// Run lays out text and returns the resulting LayoutRun, per spec.md §4.7:
//
//   - Fixed-size: if a font size was configured, lay out once at that size.
//   - Binary search: otherwise, search integer sizes in [6, 300] for the
//     largest that fits the configured box.
//   - Iterative hyphenation fit: if auto word break is enabled and a
//     hyphenator is configured (and no fixed size was set), interleave the
//     binary search with longest-word splitting for up to 6 rounds.
func (e *Engine) Run(text string) (LayoutRun, error) {
	if e.primary == nil {
		return LayoutRun{}, ErrEmptyFontList
	}

	if e.fontSize > 0 {
		return e.runOnce(text, e.fontSize)
	}

	if e.autoWordBreak {
		h, err := e.effectiveHyphenator()
		if err != nil {
			return LayoutRun{}, err
		}
		if h != nil {
			return e.iterativeHyphenationFit(text, h)
		}
	}

	return e.binarySearch(text)
}

func (e *Engine) effectiveHyphenator() (*hyphen.Hyphenator, error) {
	if e.hyphenator != nil {
		return e.hyphenator, nil
	}
	if e.hyphenLanguage == "" {
		return nil, nil
	}
	return hyphen.New(e.hyphenLanguage)
}

// runOnce lays out text at one fixed font size: the full §4.4-§4.6
// pipeline (composer, baseline placer, ink-bounds translator).
func (e *Engine) runOnce(text string, fontSize float64) (LayoutRun, error) {
	opportunities := e.breaker.Find(text)

	maxExtent := e.maxWidth
	if e.mode.IsVertical() {
		maxExtent = e.maxHeight
	}

	lines, err := composeLines(text, e.mode, fontSize, e.primary, e.fallbacks, e.shaper, opportunities, e.hyphenLanguage, maxExtent)
	if err != nil {
		return LayoutRun{}, err
	}

	metrics, err := e.primary.Metrics(fontSize)
	if err != nil {
		return LayoutRun{}, &MetricsError{FontName: e.primary.Name(), Err: err}
	}
	lh := lineHeight(metrics, fontSize)
	placeBaselines(lines, e.mode, metrics, fontSize)
	width, height := translateToInkOrigin(lines, e.mode, fontSize, lh, metrics.Descent)

	return LayoutRun{Lines: lines, Width: width, Height: height, FontSize: fontSize}, nil
}

// binarySearch finds the largest integer font size in [6, 300] whose
// layout satisfies the configured box, per spec.md §4.7.
func (e *Engine) binarySearch(text string) (LayoutRun, error) {
	const minSize, maxSize = 6, 300
	lo, hi := minSize, maxSize
	var best *LayoutRun

	for lo <= hi {
		mid := (lo + hi) / 2
		layout, err := e.runOnce(text, float64(mid))
		if err != nil {
			return LayoutRun{}, err
		}
		if fits(layout, e.maxWidth, e.maxHeight) {
			l := layout
			best = &l
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best == nil {
		return LayoutRun{}, ErrFitFailure
	}
	return *best, nil
}

const fitTolerance = 1e-3

func fits(layout LayoutRun, maxWidth, maxHeight float64) bool {
	return layout.Width <= maxWidth+fitTolerance && layout.Height <= maxHeight+fitTolerance
}

const (
	// maxAutoFitIterations is an inclusive bound: iterativeHyphenationFit
	// runs iterations 0 through maxAutoFitIterations, six rounds in total.
	maxAutoFitIterations = 5
	minFillRatio         = 0.5
	minSplittableWordLen = 6
)

// iterativeHyphenationFit implements spec.md §4.7's iterative hyphenation
// fit: on each of up to maxAutoFitIterations+1 rounds (an inclusive bound,
// matching the original's 0..=5), binary-search a layout for the current
// text, and return it immediately once it fills enough of the box or this
// is the last round; otherwise split the longest word and try again.
// Evaluating the last round's binary search before deciding whether to
// return, rather than after, ensures the final split's own layout is
// always the one considered, never left uncomputed.
//
// A binary search that fails outright (ErrFitFailure: the text doesn't fit
// the box at any size down to the minimum) is treated as a zero fill
// ratio rather than a fatal error: an over-long, unbroken word is exactly
// the case this controller exists to rescue by splitting. Any other error
// (a bad font, a shaping failure) still aborts immediately.
func (e *Engine) iterativeHyphenationFit(text string, h *hyphen.Hyphenator) (LayoutRun, error) {
	boxArea := e.maxWidth * e.maxHeight
	current := text
	var last LayoutRun
	haveLast := false

	for iteration := 0; iteration <= maxAutoFitIterations; iteration++ {
		layout, err := e.binarySearch(current)
		fillRatio := 0.0
		switch {
		case err == nil:
			last = layout
			haveLast = true
			fillRatio = 1.0
			if isFinitePositive(boxArea) {
				fillRatio = (layout.Width * layout.Height) / boxArea
			}
		case err == ErrFitFailure:
			// Nothing fit; keep trying to split below.
		default:
			return LayoutRun{}, err
		}

		if fillRatio >= minFillRatio || iteration == maxAutoFitIterations {
			return finishIterating(last, haveLast)
		}

		longest := hyphen.FindLongestWord(current)
		if len([]rune(longest)) <= minSplittableWordLen {
			return finishIterating(last, haveLast)
		}

		next := hyphen.SplitLongestWord(current, longest, h)
		if next == current {
			return finishIterating(last, haveLast)
		}
		current = next
	}

	// Unreachable: the loop always returns once iteration == maxAutoFitIterations.
	return finishIterating(last, haveLast)
}

func finishIterating(last LayoutRun, haveLast bool) (LayoutRun, error) {
	if !haveLast {
		return LayoutRun{}, ErrFitFailure
	}
	return last, nil
}

func isFinitePositive(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && v > 0
}
