package policy

import (
	"strings"
	"unicode/utf8"
)

// MaxCommentLength is the comment size limit in characters, not bytes.
const MaxCommentLength = 500

// ValidateComment trims the submitted text and checks it against the gate
// rules, returning the cleaned text that should be stored.
func ValidateComment(text string) (string, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(cleaned) > MaxCommentLength {
		return "", ErrContentTooLong
	}
	return cleaned, nil
}
