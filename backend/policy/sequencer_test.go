package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"novelhub/backend/models"
)

// three chapters of the same novel with sort numbers 1, 2, 5
func sequencerChapters() []models.Chapter {
	return []models.Chapter{
		chapterWith(1, 1, 7, true),
		chapterWith(2, 2, 7, true),
		chapterWith(3, 5, 7, true),
	}
}

func TestNextSortNum(t *testing.T) {
	assert.Equal(t, 1, NextSortNum(nil))
	assert.Equal(t, 1, NextSortNum([]int{}))
	assert.Equal(t, 4, NextSortNum([]int{1, 2, 3}))
	assert.Equal(t, 11, NextSortNum([]int{3, 10, 1}))
}

func TestValidateSortNum(t *testing.T) {
	siblings := sequencerChapters()

	assert.NoError(t, ValidateSortNum(siblings, 4, 0))
	assert.ErrorIs(t, ValidateSortNum(siblings, 2, 0), ErrDuplicateSortNum)

	// Editing a chapter in place may keep its own number.
	assert.NoError(t, ValidateSortNum(siblings, 2, 2))
	assert.ErrorIs(t, ValidateSortNum(siblings, 1, 2), ErrDuplicateSortNum)
}

func TestNeighbors(t *testing.T) {
	chapters := sequencerChapters()

	prev, next := Neighbors(chapters, &chapters[1])
	if assert.NotNil(t, prev) {
		assert.Equal(t, 1, prev.SortNum)
	}
	if assert.NotNil(t, next) {
		assert.Equal(t, 5, next.SortNum)
	}

	// Extremal chapters have no neighbor on the open side.
	prev, next = Neighbors(chapters, &chapters[0])
	assert.Nil(t, prev)
	if assert.NotNil(t, next) {
		assert.Equal(t, 2, next.SortNum)
	}

	prev, next = Neighbors(chapters, &chapters[2])
	if assert.NotNil(t, prev) {
		assert.Equal(t, 2, prev.SortNum)
	}
	assert.Nil(t, next)
}

func TestNeighborsSkipsHiddenChapters(t *testing.T) {
	all := sequencerChapters()
	// Visible set without the middle chapter: the remaining two become
	// direct neighbors.
	visible := []models.Chapter{all[0], all[2]}

	prev, next := Neighbors(visible, &all[0])
	assert.Nil(t, prev)
	if assert.NotNil(t, next) {
		assert.Equal(t, 5, next.SortNum)
	}
}
