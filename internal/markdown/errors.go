package markdown

import (
	"errors"
	"fmt"
)

// ErrHeaderTooDeep indicates a section would sit below the deepest ATX level.
var ErrHeaderTooDeep = errors.New("header level exceeds h6")

// ErrInvalidTitle indicates a title that cannot be written as an ATX header line.
var ErrInvalidTitle = errors.New("invalid section title")

// DepthError reports the section whose computed level exceeded MaxLevel.
type DepthError struct {
	Title string
	Level int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("section %q at level %d: %v", e.Title, e.Level, ErrHeaderTooDeep)
}

func (e *DepthError) Unwrap() error { return ErrHeaderTooDeep }
