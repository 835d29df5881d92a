package hyphen

import "testing"

func TestStripPunctuationTrailingPeriod(t *testing.T) {
	p, c, s := StripPunctuation("word.")
	if p != "" || c != "word" || s != "." {
		t.Fatalf("got (%q,%q,%q)", p, c, s)
	}
}

func TestStripPunctuationMultipleTrailing(t *testing.T) {
	p, c, s := StripPunctuation("What?!")
	if p != "" || c != "What" || s != "?!" {
		t.Fatalf("got (%q,%q,%q)", p, c, s)
	}
}

func TestStripPunctuationLeadingQuote(t *testing.T) {
	p, c, s := StripPunctuation(`"quoted"`)
	if p != `"` || c != "quoted" || s != `"` {
		t.Fatalf("got (%q,%q,%q)", p, c, s)
	}
}

func TestStripPunctuationEllipsis(t *testing.T) {
	p, c, s := StripPunctuation("wait...")
	if p != "" || c != "wait" || s != "..." {
		t.Fatalf("got (%q,%q,%q)", p, c, s)
	}
}

func TestStripPunctuationGermanQuotes(t *testing.T) {
	p, c, s := StripPunctuation("„Wort“")
	if p != "„" || c != "Wort" || s != "“" {
		t.Fatalf("got (%q,%q,%q)", p, c, s)
	}
}

func TestStripPunctuationNoPunctuation(t *testing.T) {
	p, c, s := StripPunctuation("hello")
	if p != "" || c != "hello" || s != "" {
		t.Fatalf("got (%q,%q,%q)", p, c, s)
	}
}

func TestStripPunctuationAllPunctuation(t *testing.T) {
	p, c, s := StripPunctuation("...")
	if p != "..." || c != "" || s != "" {
		t.Fatalf("got (%q,%q,%q)", p, c, s)
	}
}

func TestStripPunctuationRoundTrip(t *testing.T) {
	words := []string{"hello", "word.", "What?!", `"quoted"`, "...", "(a)", "—dash—"}
	for _, w := range words {
		p, c, s := StripPunctuation(w)
		if p+c+s != w {
			t.Errorf("round trip failed for %q: got (%q,%q,%q)", w, p, c, s)
		}
	}
}

func TestStripPunctuationEmpty(t *testing.T) {
	p, c, s := StripPunctuation("")
	if p != "" || c != "" || s != "" {
		t.Fatalf("got (%q,%q,%q)", p, c, s)
	}
}
