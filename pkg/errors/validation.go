package errors

import (
	"slices"
	"strconv"
	"strings"
)

// ParseLanguageID parses a command-line language id.
// Any base-10 integer is accepted; range checking is left to the API.
func ParseLanguageID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidLanguageID, "language id cannot be empty")
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, New(ErrCodeInvalidLanguageID, "language id must be an integer, got %q", s)
	}
	return id, nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (valid: %s)", format, strings.Join(allowed, ", "))
}
