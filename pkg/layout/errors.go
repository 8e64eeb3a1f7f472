package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller misuse.
var (
	// ErrNotSingle is returned by [MultiLayout.Single] when the result does not
	// hold exactly one box.
	ErrNotSingle = errors.New("layout does not contain exactly one box")

	// ErrFinished is returned when a layouter is used after Finish.
	ErrFinished = errors.New("layouter already finished")

	// ErrNoSpaces is returned when a layouter is created without spaces.
	ErrNoSpaces = errors.New("no layout spaces")
)

// Kind classifies a layout [Error].
type Kind uint8

const (
	// KindNotEnoughSpace: a box did not fit any remaining space.
	KindNotEnoughSpace Kind = iota + 1
	// KindNoSuitableFont: no loaded font covers a character.
	KindNoSuitableFont
	// KindFont: font loading or parsing failed.
	KindFont
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNotEnoughSpace:
		return "not enough space"
	case KindNoSuitableFont:
		return "no suitable font"
	case KindFont:
		return "font error"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is a failure of a layout pass. It is terminal for the pass and is
// propagated through every layouter boundary.
type Error struct {
	Kind   Kind
	Reason string // set for KindNotEnoughSpace
	Char   rune   // set for KindNoSuitableFont
	Cause  error  // set for KindFont
}

// NotEnoughSpace reports a box that fits no remaining space.
func NotEnoughSpace(reason string) *Error {
	return &Error{Kind: KindNotEnoughSpace, Reason: reason}
}

// NoSuitableFont reports a character without a covering font.
func NoSuitableFont(c rune) *Error {
	return &Error{Kind: KindNoSuitableFont, Char: c}
}

// FontError wraps a font loading failure.
func FontError(cause error) *Error {
	return &Error{Kind: KindFont, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNotEnoughSpace:
		return fmt.Sprintf("not enough space: %s", e.Reason)
	case KindNoSuitableFont:
		return fmt.Sprintf("no suitable font for '%c'", e.Char)
	case KindFont:
		return fmt.Sprintf("font error: %v", e.Cause)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying font error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether err carries a layout [Error] of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
