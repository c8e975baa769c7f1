package builder

import (
	"table-reserve/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	storeID       uuid.UUID
	memberID      uuid.UUID
	reservationID uuid.UUID
	rating        int
	content       string
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		storeID:       uuid.New(),
		memberID:      uuid.New(),
		reservationID: uuid.New(),
		rating:        5,
		content:       "Excellent service!",
	}
}

func (b *ReviewBuilder) With(fn func(*ReviewBuilder)) *ReviewBuilder {
	if fn != nil {
		fn(b)
	}
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.rating = rating
	return b
}

func (b *ReviewBuilder) WithContent(content string) *ReviewBuilder {
	b.content = content
	return b
}

func (b *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.NewReview(b.storeID, b.memberID, b.reservationID, b.rating, b.content, BaseTime)
}
