package policy

import "errors"

var (
	ErrEmptyContent     = errors.New("comment content must not be empty")
	ErrContentTooLong   = errors.New("comment content must not exceed 500 characters")
	ErrDuplicateSortNum = errors.New("sort number already used by another chapter of this novel")
	ErrNotSuperuser     = errors.New("only a superuser may approve content")
)
