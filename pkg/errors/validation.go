package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds widget and session identifiers.
const maxIDLength = 128

// ValidateWidgetID validates a widget identifier from a catalog file or a
// wire intent.
//
// The rules are intentionally conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - Maximum length of 128 characters
func ValidateWidgetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "widget id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "widget id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "widget id %q contains invalid characters", id)
		}
	}
	return nil
}

// ValidateSessionID validates a session identifier taken from a request path.
func ValidateSessionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "session id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "session id too long (max %d characters)", maxIDLength)
	}
	if strings.ContainsAny(id, "/\\\x00") {
		return New(ErrCodeInvalidInput, "session id contains invalid characters")
	}
	return nil
}
