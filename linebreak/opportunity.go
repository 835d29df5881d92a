// Package linebreak finds candidate line-break positions in text. It is
// deliberately a simplified, practical approximation of UAX #14 (Unicode
// Line Breaking Algorithm): the full tailoring table, locale-specific rules,
// and exhaustive class set are out of scope, matching the engine's line
// composer, which only needs "can a line legally end here, and must it."
package linebreak

// Opportunity marks a byte offset into the original text at which a line
// is permitted (or required) to end. Offset is a byte offset, matching the
// convention shape.PositionedGlyph.Cluster uses, so a composer can compare
// them directly without a rune/byte conversion.
//
// A line ending at Offset spans text[lineStart:Offset]; the next line, if
// any, starts at Offset.
type Opportunity struct {
	Offset int
	// IsMandatory is true for breaks the text requires (hard line breaks:
	// "\n", "\r\n", U+2028, U+2029) as opposed to breaks that are merely
	// permitted (after a space, after a hyphen, between CJK ideographs).
	IsMandatory bool
}

// Breaker finds line-break opportunities in text.
type Breaker interface {
	// Find returns every break opportunity in text, in ascending Offset
	// order, always ending with a final opportunity at Offset == len(text)
	// (the end of text is always a valid place to end the last line).
	Find(text string) []Opportunity
}
