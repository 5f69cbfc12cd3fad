package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

const (
	maxLabelLength = 1024
	maxPathLength  = 500
)

// ValidateLabel validates a node label before it is written into DOT output.
//
// Labels are emitted as DOT quoted strings, so most characters are safe. The rules
// only reject input that no renderer can display:
//   - No null bytes
//   - No control characters other than newline and tab
//   - Maximum length of 1024 bytes
func ValidateLabel(label string) error {
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidLabel, "label too long (max %d characters)", maxLabelLength)
	}

	for _, r := range label {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputName validates the base name of a generated file.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not end with a path separator (it names a file, not a directory)
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	if len(name) > maxPathLength {
		return New(ErrCodeInvalidPath, "output name too long (max %d characters)", maxPathLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid characters")
		}
	}

	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output name must name a file, not a directory")
	}

	return nil
}

// colorRegex accepts X11/SVG color names, #RRGGBB[AA] and "H,S,V" triples.
var colorRegex = regexp.MustCompile(`^(#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?|[A-Za-z][A-Za-z0-9]*|[0-9.]+[ ,]+[0-9.]+[ ,]+[0-9.]+)$`)

// ValidateColor validates an edge color attribute value.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidInput, "color cannot be empty")
	}

	if !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid color: %q", color)
	}

	return nil
}

// ValidatePenWidth validates an edge pen width.
// Zero is allowed and renders an invisible edge.
func ValidatePenWidth(width int) error {
	if width < 0 {
		return New(ErrCodeInvalidInput, "pen width must not be negative, got %d", width)
	}
	return nil
}
