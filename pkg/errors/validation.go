package errors

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateLength checks that a length in points is finite and not negative.
// Zero is allowed; boxes and gaps may be empty.
func ValidateLength(name string, pt float64) error {
	if math.IsNaN(pt) || math.IsInf(pt, 0) {
		return New(ErrCodeInvalidLength, "%s must be a finite number", name)
	}
	if pt < 0 {
		return New(ErrCodeInvalidLength, "%s cannot be negative (got %g)", name, pt)
	}
	return nil
}

// ValidatePageSize checks that both page dimensions are positive.
func ValidatePageSize(width, height float64) error {
	if err := ValidateLength("width", width); err != nil {
		return err
	}
	if err := ValidateLength("height", height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return New(ErrCodeInvalidLength, "page size must be positive (got %gx%g)", width, height)
	}
	return nil
}

// ValidatePath validates a file path taken from a document, such as a font
// file. It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative to the document)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
