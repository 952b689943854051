package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches CSS hex colors with 3, 6 or 8 digits.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateHexColor validates a CSS hex color such as "#38bdf8".
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidStyle, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidStyle, "invalid hex color: %q", s)
	}
	return nil
}

// ValidateName validates a catalog identifier supplied on the command line
// or in a config file. Identifiers are short lowercase words.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 32 characters
//   - No control characters or whitespace
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}
	if len(name) > 32 {
		return New(ErrCodeInvalidInput, "name too long (max 32 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "name contains invalid characters: %q", name)
		}
	}
	return nil
}

// ValidateConfigPath validates a config file path for safety.
func ValidateConfigPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidConfig, "config path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidConfig, "config path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidConfig, "config path contains a null byte")
	}

	return nil
}
