package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be between 0 and 5")
	ErrEmptyContent   = errors.New("review content cannot be empty")
	ErrContentTooLong = errors.New("review content exceeds maximum length")
)
