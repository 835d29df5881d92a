package hyphen

import "strings"

// FindLongestWord returns the whitespace-delimited token in text with the
// greatest character count (not byte count); on a tie, the first such
// token. It returns "" if text has no tokens.
func FindLongestWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	longest := fields[0]
	longestLen := len([]rune(longest))
	for _, w := range fields[1:] {
		n := len([]rune(w))
		if n > longestLen {
			longest, longestLen = w, n
		}
	}
	return longest
}

// SplitLongestWord replaces the first occurrence of word in text with a
// hyphenated split: punctuation is stripped from word's edges, the
// remaining core is split via h, and the result is reassembled as
// "prefix + part1 + \"- \" + part2 + suffix". If word is empty, the
// stripped core has fewer than 2 characters, or h finds no split point,
// text is returned unchanged.
func SplitLongestWord(text, word string, h *Hyphenator) string {
	if word == "" {
		return text
	}

	prefix, clean, suffix := StripPunctuation(word)
	cleanRunes := []rune(clean)
	if len(cleanRunes) < 2 {
		return text
	}

	k, ok := h.FindSplitPoint(clean)
	if !ok || k <= 0 || k >= len(cleanRunes) {
		return text
	}

	part1 := string(cleanRunes[:k])
	part2 := string(cleanRunes[k:])
	replacement := prefix + part1 + "- " + part2 + suffix

	return strings.Replace(text, word, replacement, 1)
}
