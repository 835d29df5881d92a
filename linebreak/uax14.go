package linebreak

import (
	"unicode"
	"unicode/utf8"
)

// class categorizes a rune for line-breaking purposes. This is a practical
// subset of UAX #14's line breaking classes, not the full table.
type class uint8

const (
	classOther class = iota
	classSpace
	classZeroWidth // U+200B ZERO WIDTH SPACE
	classOpen      // opening brackets/quotes: no break right after
	classClose     // closing brackets/quotes: no break right before
	classHyphen
	classIdeographic
	classNewline // \n, \r, U+2028, U+2029
)

const (
	lineSeparator      = ' '
	paragraphSeparator = ' '
	zeroWidthSpace     = '​'
	leftDoubleQuote    = '“'
	leftSingleQuote    = '‘'
	guillemetOpen      = '«'
	rightDoubleQuote   = '”'
	rightSingleQuote   = '’'
	guillemetClose     = '»'
	hyphenChar         = '‐'
	nonBreakingHyphen  = '‑'
	enDash             = '–'
	emDash             = '—'
)

func classify(r rune) class {
	switch r {
	case ' ', '\t':
		return classSpace
	case '\n', '\r', lineSeparator, paragraphSeparator:
		return classNewline
	case zeroWidthSpace:
		return classZeroWidth
	case '(', '[', '{', leftDoubleQuote, leftSingleQuote, guillemetOpen:
		return classOpen
	case ')', ']', '}', rightDoubleQuote, rightSingleQuote, guillemetClose:
		return classClose
	case '-', hyphenChar, nonBreakingHyphen, enDash, emDash:
		return classHyphen
	}
	if isIdeographic(r) {
		return classIdeographic
	}
	return classOther
}

func isIdeographic(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) ||
		(r >= 0xFF00 && r <= 0xFFEF) // fullwidth forms
}

// runeInfo is one decoded rune together with its byte offset and width.
type runeInfo struct {
	r      rune
	offset int
	size   int
	class  class
}

func decode(text string) []runeInfo {
	infos := make([]runeInfo, 0, len(text))
	for i, r := range text {
		infos = append(infos, runeInfo{r: r, offset: i, size: utf8.RuneLen(r), class: classify(r)})
	}
	return infos
}

// UAX14Breaker is the bundled Breaker implementation: a simplified,
// Unicode-aware analyzer good enough to find reasonable default break
// points without depending on a full UAX #14 implementation (none of which
// is bundled in any example this engine draws on).
type UAX14Breaker struct{}

// Find implements Breaker.
func (UAX14Breaker) Find(text string) []Opportunity {
	if text == "" {
		return []Opportunity{{Offset: 0, IsMandatory: false}}
	}

	runes := decode(text)
	n := len(runes)
	end := len(text)

	var out []Opportunity
	i := 0
	for i < n {
		afterOffset := runes[i].offset + runes[i].size

		switch runes[i].class {
		case classNewline:
			next := i + 1
			// A CR immediately followed by LF is a single mandatory break.
			if runes[i].r == '\r' && next < n && runes[next].r == '\n' {
				afterOffset = runes[next].offset + runes[next].size
				next++
			}
			out = append(out, Opportunity{Offset: afterOffset, IsMandatory: true})
			i = next
			continue
		case classZeroWidth:
			out = append(out, Opportunity{Offset: afterOffset})
		case classSpace:
			if !suppressedByNeighbor(runes, i+1) {
				out = append(out, Opportunity{Offset: afterOffset})
			}
		case classHyphen:
			if !suppressedByNeighbor(runes, i+1) && !precededByOpen(runes, i) {
				out = append(out, Opportunity{Offset: afterOffset})
			}
		case classIdeographic:
			if i+1 < n && runes[i+1].class == classIdeographic && !suppressedByNeighbor(runes, i+1) {
				out = append(out, Opportunity{Offset: afterOffset})
			}
		}
		i++
	}

	if len(out) == 0 || out[len(out)-1].Offset != end {
		out = append(out, Opportunity{Offset: end})
	}
	return out
}

// suppressedByNeighbor reports whether a break otherwise allowed right
// before rune index pos is suppressed because the text there opens with
// closing punctuation (you can't end a line right before a closer).
func suppressedByNeighbor(runes []runeInfo, pos int) bool {
	return pos < len(runes) && runes[pos].class == classClose
}

// precededByOpen reports whether the rune at index pos directly follows an
// opening bracket/quote (you can't end a line right after an opener).
func precededByOpen(runes []runeInfo, pos int) bool {
	return pos > 0 && runes[pos-1].class == classOpen
}
