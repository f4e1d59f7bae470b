package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateLabel validates an output label used in generated file names.
// Labels come from preset names and user flags, so they are restricted to a
// conservative character set:
//   - No empty labels
//   - Maximum length of 64 characters
//   - Letters, digits, '-', '_' and '.' only
//   - No path traversal sequences (..)
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}

	if len(label) > 64 {
		return New(ErrCodeInvalidLabel, "label too long (max 64 characters)")
	}

	if strings.Contains(label, "..") {
		return New(ErrCodeInvalidLabel, "label cannot contain path traversal sequences (..)")
	}

	if !labelRegex.MatchString(label) {
		return New(ErrCodeInvalidLabel, "label contains invalid characters: %q", label)
	}

	return nil
}

var labelRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateDir validates an output directory path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "directory cannot be empty")
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

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a redis scheme, the only remote endpoint hashart dials.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "URL must use redis or rediss scheme")
	}

	return nil
}
