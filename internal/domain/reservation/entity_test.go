//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"table-reserve/internal/domain/reservation"
	"table-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	storeID := uuid.New()
	memberID := uuid.New()
	now := builder.BaseTime
	visitTime := now.Add(2 * time.Hour)

	actual := reservation.NewReservation(storeID, "참새정", memberID, "user@example.com", visitTime, now)

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, reservation.StatusValid, actual.Status())
	assert.Equal(t, visitTime, actual.VisitTime())
	assert.Equal(t, now, actual.CreatedAt())
	assert.Equal(t, now, actual.LastModified())
}

func TestCancel(t *testing.T) {
	t.Run("cancels a valid reservation", func(t *testing.T) {
		r := builder.NewReservationBuilder().Build()
		now := builder.BaseTime.Add(5 * time.Minute)

		r.Cancel(now)

		assert.Equal(t, reservation.StatusCancel, r.Status())
		assert.Equal(t, now, r.LastModified())
	})

	t.Run("cancel is repeatable", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusCancel).Build()
		now := builder.BaseTime.Add(10 * time.Minute)

		r.Cancel(now)

		assert.Equal(t, reservation.StatusCancel, r.Status())
		assert.Equal(t, now, r.LastModified())
	})

	t.Run("cancel overrides complete", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusComplete).Build()

		r.Cancel(builder.BaseTime)

		assert.Equal(t, reservation.StatusCancel, r.Status())
	})
}

func TestConfirmArrival(t *testing.T) {
	visitTime := builder.BaseTime.Add(time.Hour)
	deadline := visitTime.Add(-reservation.ArrivalBuffer)

	t.Run("well before the deadline", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithVisitTime(visitTime).Build()
		now := deadline.Add(-30 * time.Minute)

		err := r.ConfirmArrival(now)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusComplete, r.Status())
		assert.Equal(t, now, r.LastModified())
	})

	t.Run("one second before the deadline", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithVisitTime(visitTime).Build()

		err := r.ConfirmArrival(deadline.Add(-time.Second))

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusComplete, r.Status())
	})

	t.Run("exactly at the deadline counts as late", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithVisitTime(visitTime).Build()

		err := r.ConfirmArrival(deadline)

		require.ErrorIs(t, err, reservation.ErrNoLongerAvailable)
		assert.Equal(t, reservation.StatusCancel, r.Status())
		assert.Equal(t, deadline, r.LastModified())
	})

	t.Run("after the deadline cancels and fails", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithVisitTime(visitTime).Build()
		now := deadline.Add(5 * time.Minute)

		err := r.ConfirmArrival(now)

		require.ErrorIs(t, err, reservation.ErrNoLongerAvailable)
		assert.Equal(t, reservation.StatusCancel, r.Status())
		assert.Equal(t, now, r.LastModified())
	})

	t.Run("canceled reservation rejects arrival without mutation", func(t *testing.T) {
		lastModified := builder.BaseTime.Add(-time.Hour)
		r := builder.NewReservationBuilder().
			WithVisitTime(visitTime).
			WithStatus(reservation.StatusCancel).
			WithLastModified(lastModified).
			Build()

		err := r.ConfirmArrival(builder.BaseTime)

		require.ErrorIs(t, err, reservation.ErrReservationCanceled)
		assert.Equal(t, reservation.StatusCancel, r.Status())
		assert.Equal(t, lastModified, r.LastModified())
	})
}

func TestMarkReviewed(t *testing.T) {
	completedAt := builder.BaseTime
	windowEnd := completedAt.Add(reservation.ReviewWindow)

	completed := func() *reservation.Reservation {
		return builder.NewReservationBuilder().
			WithStatus(reservation.StatusComplete).
			WithLastModified(completedAt).
			Build()
	}

	t.Run("inside the review window", func(t *testing.T) {
		r := completed()
		now := completedAt.Add(3 * 24 * time.Hour)

		err := r.MarkReviewed(now)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusReviewed, r.Status())
		assert.Equal(t, now, r.LastModified())
	})

	t.Run("one second before the window closes", func(t *testing.T) {
		r := completed()

		err := r.MarkReviewed(windowEnd.Add(-time.Second))

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusReviewed, r.Status())
	})

	t.Run("exactly at the window end is expired", func(t *testing.T) {
		r := completed()

		err := r.MarkReviewed(windowEnd)

		require.ErrorIs(t, err, reservation.ErrReviewWindowExpired)
		assert.Equal(t, reservation.StatusComplete, r.Status())
	})

	t.Run("after the window end is expired", func(t *testing.T) {
		r := completed()

		err := r.MarkReviewed(windowEnd.Add(24 * time.Hour))

		require.ErrorIs(t, err, reservation.ErrReviewWindowExpired)
		assert.Equal(t, reservation.StatusComplete, r.Status())
	})

	t.Run("valid reservation is not complete", func(t *testing.T) {
		r := builder.NewReservationBuilder().Build()

		err := r.MarkReviewed(builder.BaseTime)

		require.ErrorIs(t, err, reservation.ErrNotComplete)
		assert.Equal(t, reservation.StatusValid, r.Status())
	})

	t.Run("canceled reservation is not complete", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusCancel).Build()

		err := r.MarkReviewed(builder.BaseTime)

		require.ErrorIs(t, err, reservation.ErrNotComplete)
	})

	t.Run("already reviewed wins over other guards", func(t *testing.T) {
		// Even far outside the window the error must be "already
		// reviewed", not "window expired".
		r := builder.NewReservationBuilder().
			WithStatus(reservation.StatusReviewed).
			WithLastModified(completedAt).
			Build()

		err := r.MarkReviewed(windowEnd.Add(365 * 24 * time.Hour))

		require.ErrorIs(t, err, reservation.ErrAlreadyReviewed)
	})

	t.Run("stale valid reservation reports not complete, not expired", func(t *testing.T) {
		r := builder.NewReservationBuilder().
			WithLastModified(completedAt.Add(-30 * 24 * time.Hour)).
			Build()

		err := r.MarkReviewed(builder.BaseTime)

		require.ErrorIs(t, err, reservation.ErrNotComplete)
	})

	t.Run("window restarts from completion, not visit time", func(t *testing.T) {
		// Completed late: the 7 days count from lastModified.
		visitTime := builder.BaseTime.Add(-10 * 24 * time.Hour)
		completedLate := builder.BaseTime
		r := builder.NewReservationBuilder().
			WithVisitTime(visitTime).
			WithStatus(reservation.StatusComplete).
			WithLastModified(completedLate).
			Build()

		err := r.MarkReviewed(completedLate.Add(6 * 24 * time.Hour))

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusReviewed, r.Status())
	})
}

func TestStatus(t *testing.T) {
	t.Run("valid statuses round-trip", func(t *testing.T) {
		for _, s := range []string{"VALID", "CANCEL", "COMPLETE", "REVIEWED"} {
			status, err := reservation.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := reservation.NewStatus("PENDING")
		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}
