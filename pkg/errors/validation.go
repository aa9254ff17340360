package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateWidgetID validates a widget identifier for safety and correctness.
// IDs travel through CLI arguments, JSON documents, and backup filenames, so
// the validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateWidgetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "widget id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "widget id too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "widget id contains invalid control characters")
		}
	}

	// Check for path-like patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidInput, "widget id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateDashboardFilename validates a dashboard filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateDashboardFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidInput, "dashboard filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidInput, "dashboard filename cannot contain path separators")
	}

	// No hidden files (starting with .)
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidInput, "dashboard filename cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// widgetTypeNames enumerates the widget types the engine understands.
var widgetTypeNames = map[string]bool{
	"text":   true,
	"metric": true,
	"chart":  true,
	"image":  true,
	"table":  true,
}

// ValidateWidgetType validates a widget type name.
func ValidateWidgetType(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "widget type cannot be empty")
	}

	if !widgetTypeNames[name] {
		return New(ErrCodeInvalidInput, "unknown widget type: %q (valid: text, metric, chart, image, table)", name)
	}

	return nil
}

// themeNameRegex matches theme identifiers: lowercase words with optional
// single-dash separators.
var themeNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateThemeName validates a dashboard theme name.
func ValidateThemeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "theme name cannot be empty")
	}

	if !themeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid theme name: %q", name)
	}

	return nil
}

// coordinateRegex matches canonical grid coordinates: one or more letters
// followed by a positive integer with no leading zeros (e.g. "B3", "AA12").
var coordinateRegex = regexp.MustCompile(`^[A-Za-z]+[1-9][0-9]*$`)

// ValidateCoordinate validates a coordinate string without decoding it.
func ValidateCoordinate(coord string) error {
	if coord == "" {
		return New(ErrCodeInvalidFormat, "coordinate cannot be empty")
	}

	if !coordinateRegex.MatchString(coord) {
		return New(ErrCodeInvalidFormat, "invalid coordinate: %q", coord)
	}

	return nil
}
