package shape

import "errors"

// ErrNilFont is returned when Shape is called with a nil font.
var ErrNilFont = errors.New("shape: font is nil")

// Error wraps a shaping failure with the name of the font involved, so
// callers can report which run failed without the shaper needing to know
// about logging or error presentation.
type Error struct {
	FontName string
	Err      error
}

func (e *Error) Error() string {
	return "shape: failed shaping against font " + e.FontName + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
