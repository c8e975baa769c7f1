package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrReservationCanceled = errors.New("reservation canceled")
	ErrNoLongerAvailable   = errors.New("no longer available")
	ErrNotComplete         = errors.New("reservation not complete")
	ErrReviewWindowExpired = errors.New("review window expired")
	ErrAlreadyReviewed     = errors.New("review already exists for this reservation")
)

const (
	// Arrivals inside this buffer before the visit time count as no-shows.
	ArrivalBuffer = 10 * time.Minute
	// Reviews are accepted this long after the reservation completes.
	ReviewWindow = 7 * 24 * time.Hour
)

// Reservation owns the status state machine. Member and store
// references are immutable after creation; every transition bumps
// lastModified, which later guards read as the state-entered marker.
type Reservation struct {
	id           uuid.UUID
	storeID      uuid.UUID
	storeName    string
	memberID     uuid.UUID
	memberEmail  string
	visitTime    time.Time
	status       Status
	createdAt    time.Time
	lastModified time.Time
}

func NewReservation(storeID uuid.UUID, storeName string, memberID uuid.UUID, memberEmail string, visitTime, now time.Time) *Reservation {
	return &Reservation{
		id:           uuid.New(),
		storeID:      storeID,
		storeName:    storeName,
		memberID:     memberID,
		memberEmail:  memberEmail,
		visitTime:    visitTime,
		status:       StatusValid,
		createdAt:    now,
		lastModified: now,
	}
}

func ReconstructReservation(
	id, storeID uuid.UUID,
	storeName string,
	memberID uuid.UUID,
	memberEmail string,
	visitTime time.Time,
	status Status,
	createdAt, lastModified time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		storeID:      storeID,
		storeName:    storeName,
		memberID:     memberID,
		memberEmail:  memberEmail,
		visitTime:    visitTime,
		status:       status,
		createdAt:    createdAt,
		lastModified: lastModified,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) StoreID() uuid.UUID      { return r.storeID }
func (r *Reservation) StoreName() string       { return r.storeName }
func (r *Reservation) MemberID() uuid.UUID     { return r.memberID }
func (r *Reservation) MemberEmail() string     { return r.memberEmail }
func (r *Reservation) VisitTime() time.Time    { return r.visitTime }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) LastModified() time.Time { return r.lastModified }

func (r *Reservation) IsCanceled() bool { return r.status == StatusCancel }
func (r *Reservation) IsComplete() bool { return r.status == StatusComplete }
func (r *Reservation) IsReviewed() bool { return r.status == StatusReviewed }

func (r *Reservation) transition(status Status, now time.Time) {
	r.status = status
	r.lastModified = now
}

// Cancel re-asserts CANCEL regardless of the current status. Repeated
// cancellations are permitted and leave the reservation canceled.
func (r *Reservation) Cancel(now time.Time) {
	r.transition(StatusCancel, now)
}

// ArrivalDeadline is the instant after which arrival no longer counts.
func (r *Reservation) ArrivalDeadline() time.Time {
	return r.visitTime.Add(-ArrivalBuffer)
}

// ConfirmArrival applies the no-show guard. Arriving at or after the
// deadline cancels the reservation AND returns ErrNoLongerAvailable:
// the cancellation must still be persisted by the caller. This
// mutate-then-fail shape is deliberate — the late slot is released
// instead of dangling in VALID.
func (r *Reservation) ConfirmArrival(now time.Time) error {
	if r.status == StatusCancel {
		return ErrReservationCanceled
	}

	if !now.Before(r.ArrivalDeadline()) {
		r.transition(StatusCancel, now)
		return ErrNoLongerAvailable
	}

	r.transition(StatusComplete, now)
	return nil
}

// ReviewDeadline starts counting when the reservation entered COMPLETE
// (its lastModified), not at the original visit time.
func (r *Reservation) ReviewDeadline() time.Time {
	return r.lastModified.Add(ReviewWindow)
}

// MarkReviewed gates review creation. Guard order is fixed: a stale,
// never-completed reservation must report "not complete" rather than a
// misleading "window expired".
func (r *Reservation) MarkReviewed(now time.Time) error {
	if r.status == StatusReviewed {
		return ErrAlreadyReviewed
	}
	if r.status != StatusComplete {
		return ErrNotComplete
	}
	if !now.Before(r.ReviewDeadline()) {
		return ErrReviewWindowExpired
	}

	r.transition(StatusReviewed, now)
	return nil
}
