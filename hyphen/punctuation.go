package hyphen

import "strings"

// wordPunctuation is the exact set of word-boundary punctuation this
// package strips from the edges of a word before hyphenating it.
const wordPunctuation = `.,!?:;"'()[]{}«»„“”‘’…–—`

func isWordPunctuation(r rune) bool {
	return strings.ContainsRune(wordPunctuation, r)
}

// StripPunctuation splits word into (prefix, clean, suffix), where prefix
// is the maximal leading run of word-boundary punctuation, suffix is the
// maximal trailing run, and clean is what remains. prefix + clean + suffix
// always equals word. If word is entirely punctuation, prefix == word and
// clean == suffix == "".
func StripPunctuation(word string) (prefix, clean, suffix string) {
	runes := []rune(word)
	n := len(runes)
	if n == 0 {
		return "", "", ""
	}

	start := n
	for i, r := range runes {
		if !isWordPunctuation(r) {
			start = i
			break
		}
	}
	if start == n {
		// Entirely punctuation (or empty).
		return word, "", ""
	}

	end := 0
	for i := n - 1; i >= 0; i-- {
		if !isWordPunctuation(runes[i]) {
			end = i + 1
			break
		}
	}

	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}
