package review

import (
	"time"

	"github.com/google/uuid"
)

// Review copies the store and member references from the originating
// reservation at creation time and is never mutated afterward. The
// once-per-reservation rule lives on the reservation status, not here.
type Review struct {
	id            uuid.UUID
	storeID       uuid.UUID
	memberID      uuid.UUID
	reservationID uuid.UUID
	rating        Rating
	content       Content
	createdAt     time.Time
}

func NewReview(storeID, memberID, reservationID uuid.UUID, ratingValue int, contentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	content, err := NewContent(contentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:            uuid.New(),
		storeID:       storeID,
		memberID:      memberID,
		reservationID: reservationID,
		rating:        rating,
		content:       content,
		createdAt:     now,
	}, nil
}

func ReconstructReview(
	id, storeID, memberID, reservationID uuid.UUID,
	rating Rating,
	content Content,
	createdAt time.Time,
) *Review {
	return &Review{
		id:            id,
		storeID:       storeID,
		memberID:      memberID,
		reservationID: reservationID,
		rating:        rating,
		content:       content,
		createdAt:     createdAt,
	}
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) StoreID() uuid.UUID       { return r.storeID }
func (r *Review) MemberID() uuid.UUID      { return r.memberID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Content() Content         { return r.content }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
