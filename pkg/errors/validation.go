package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxDescriptionLength bounds the house description forwarded to the
// text-generation collaborator. Long prompts cost money and add nothing.
const MaxDescriptionLength = 4000

// ValidateDescription validates a house description before it is sent to
// the text-generation collaborator.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only descriptions
//   - No control characters except newlines and tabs
//   - Maximum length of MaxDescriptionLength characters
func ValidateDescription(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return New(ErrCodeInvalidInput, "description cannot be empty")
	}

	if len(desc) > MaxDescriptionLength {
		return New(ErrCodeInvalidInput, "description too long (max %d characters)", MaxDescriptionLength)
	}

	for _, r := range desc {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return New(ErrCodeInvalidInput, "description contains invalid control characters")
		}
	}

	return nil
}

// modelNameRegex matches Gemini model identifiers (e.g. "gemini-2.5-flash").
var modelNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]*$`)

// ValidateModelName validates a text-generation model identifier.
func ValidateModelName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidModel, "model name cannot be empty")
	}
	if !modelNameRegex.MatchString(name) {
		return New(ErrCodeInvalidModel, "invalid model name: %q", name)
	}
	return nil
}

// ValidateOutputPath validates an output file path for safety.
// It prevents writing through null bytes or control characters; relative
// and absolute paths are both allowed since the user names the target.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	return nil
}
