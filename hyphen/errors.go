package hyphen

import "errors"

// ErrUnsupportedLanguage is returned by New when a language code does not
// resolve to any canonical language this package recognizes. The caller is
// responsible for deciding how to proceed (e.g. falling back to no
// hyphenation at all); this package never silently substitutes a language
// for an unrecognized code, only for a recognized one whose pattern set
// isn't bundled (see patterns.go).
var ErrUnsupportedLanguage = errors.New("hyphen: unsupported language")
