package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// maxViewIDLength bounds view identifiers so they stay usable as DOT node
// names and cache key components.
const maxViewIDLength = 128

// viewIDRegex matches identifiers accepted in scene files.
var viewIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)

// ValidateViewID validates a view identifier taken from a scene file.
//
// The rules:
//   - No empty identifiers
//   - Maximum length of 128 characters
//   - No control characters or whitespace
//   - Letters, digits, '.', '_', ':' and '-' only, starting with a letter or digit
func ValidateViewID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidView, "view id cannot be empty")
	}

	if len(id) > maxViewIDLength {
		return New(ErrCodeInvalidView, "view id too long (max %d characters)", maxViewIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidView, "view id %q contains whitespace or control characters", id)
		}
	}

	if !viewIDRegex.MatchString(id) {
		return New(ErrCodeInvalidView, "invalid view id: %q", id)
	}

	return nil
}

// ValidateDimension validates a width or height read from user input.
// Dimensions must be finite and non-negative; zero means "unspecified".
func ValidateDimension(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be finite, got %v", field, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative, got %v", field, v)
	}
	return nil
}

// ValidateCoordinate validates a coordinate read from user input.
// Coordinates may be negative but must be finite.
func ValidateCoordinate(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be finite, got %v", field, v)
	}
	return nil
}

// ValidatePath validates a scene or output file path supplied on the
// command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidInput, "path has leading or trailing whitespace")
	}

	return nil
}
