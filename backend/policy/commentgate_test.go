package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateComment(t *testing.T) {
	cleaned, err := ValidateComment("  a fine chapter  ")
	assert.NoError(t, err)
	assert.Equal(t, "a fine chapter", cleaned)
}

func TestValidateCommentEmpty(t *testing.T) {
	_, err := ValidateComment("")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = ValidateComment("   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestValidateCommentLength(t *testing.T) {
	atLimit := strings.Repeat("a", 500)
	cleaned, err := ValidateComment(atLimit)
	assert.NoError(t, err)
	assert.Equal(t, atLimit, cleaned)

	_, err = ValidateComment(strings.Repeat("a", 501))
	assert.ErrorIs(t, err, ErrContentTooLong)

	// The limit counts characters, not bytes.
	cleaned, err = ValidateComment(strings.Repeat("汉", 500))
	assert.NoError(t, err)
	assert.Equal(t, 500, len([]rune(cleaned)))
}
