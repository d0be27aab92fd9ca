package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds item and recipe identifiers accepted from users.
const maxIDLength = 256

// ValidateID validates an item or recipe identifier supplied by a user
// (CLI argument, HTTP path or query parameter). kind is used in messages,
// e.g. "item" or "recipe".
//
// The rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// Identifiers coming from the data files are not validated here; the
// loader trusts its inputs.
func ValidateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidInput, "%s id cannot be empty", kind)
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "%s id too long (max %d characters)", kind, maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s id contains invalid control characters", kind)
		}
	}

	return nil
}

// ValidateDataPath validates a configured data file path.
// Unlike user-facing identifiers, absolute paths are allowed; the path only
// has to be non-empty and free of control characters.
func ValidateDataPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
