package ggtext

import (
	"errors"
	"fmt"
)

// ErrFitFailure is returned by the auto-fit controller when no font size in
// its search range produces a layout that satisfies the width/height
// constraints.
var ErrFitFailure = errors.New("ggtext: unable to fit text in constraints")

// ErrEmptyFontList is returned when an Engine has no primary font to shape
// with.
var ErrEmptyFontList = errors.New("ggtext: no fonts configured")

// ShapingError wraps a failure from the shaper collaborator while
// processing one segment of text.
type ShapingError struct {
	Segment string
	Err     error
}

func (e *ShapingError) Error() string {
	return fmt.Sprintf("ggtext: shaping failed for segment %q: %v", e.Segment, e.Err)
}

func (e *ShapingError) Unwrap() error { return e.Err }

// MetricsError wraps a failure reading a font's face-level metrics
// (ascent/descent/leading).
type MetricsError struct {
	FontName string
	Err      error
}

func (e *MetricsError) Error() string {
	return fmt.Sprintf("ggtext: font metrics unavailable for %q: %v", e.FontName, e.Err)
}

func (e *MetricsError) Unwrap() error { return e.Err }
