package policy

import "novelhub/backend/models"

// NextSortNum returns the advisory ordering number for a new chapter: one
// past the highest existing number, or 1 for the first chapter. It is a hint
// for the creation form, not a reservation; the unique index on
// (novel_id, sort_num) is what rejects concurrent collisions at commit time.
func NextSortNum(existing []int) int {
	max := 0
	for _, n := range existing {
		if n > max {
			max = n
		}
	}
	return max + 1
}

// ValidateSortNum rejects a candidate ordering number already taken by a
// sibling chapter. excludeID skips the chapter being edited in place; pass 0
// on create.
func ValidateSortNum(siblings []models.Chapter, candidate int, excludeID uint) error {
	for _, ch := range siblings {
		if ch.ID == excludeID {
			continue
		}
		if ch.SortNum == candidate {
			return ErrDuplicateSortNum
		}
	}
	return nil
}

// Neighbors resolves previous/next navigation for a chapter among the
// chapters visible to the viewer (pre-filtered by VisibleChapters). prev is
// the visible chapter with the greatest sort number strictly below the
// current one, next the least strictly above. A missing neighbor is nil.
func Neighbors(visible []models.Chapter, current *models.Chapter) (prev, next *models.Chapter) {
	for i := range visible {
		ch := &visible[i]
		if ch.ID == current.ID {
			continue
		}
		switch {
		case ch.SortNum < current.SortNum:
			if prev == nil || ch.SortNum > prev.SortNum {
				prev = ch
			}
		case ch.SortNum > current.SortNum:
			if next == nil || ch.SortNum < next.SortNum {
				next = ch
			}
		}
	}
	return prev, next
}
