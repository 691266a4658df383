package documents

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxTitleLen   = 200
	maxContentLen = 10000
)

// documentTypes is the closed set of accepted document types.
var documentTypes = map[string]struct{}{
	"experience":   {},
	"skills":       {},
	"values":       {},
	"achievements": {},
	"daily_record": {},
	"mood_tracker": {},
	"reflection":   {},
	"test_result":  {},
}

// Titles allow letters, digits, spaces and a small punctuation set. Emoji
// and arbitrary symbols are rejected.
var titleCharset = regexp.MustCompile(`^[\p{L}\p{N} .,:;!?()&/+#'-]+$`)

// IsValidType reports whether s is a known document type, case-insensitively.
func IsValidType(s string) bool {
	_, ok := documentTypes[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// NormalizeType lowercases and trims a document type string.
func NormalizeType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateFields checks title and content constraints for the given type and
// returns every violated rule, not just the first.
func ValidateFields(docType, title, content string) []string {
	var errs []string

	if strings.TrimSpace(title) == "" {
		errs = append(errs, "title is required")
	} else {
		if len([]rune(title)) > maxTitleLen {
			errs = append(errs, fmt.Sprintf("title must be at most %d characters", maxTitleLen))
		}
		if !titleCharset.MatchString(title) {
			errs = append(errs, "title contains unsupported characters")
		}
	}

	if len([]rune(content)) > maxContentLen {
		errs = append(errs, fmt.Sprintf("content must be at most %d characters", maxContentLen))
	}

	return errs
}
