//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"table-reserve/internal/usecase/queries"
	queriesmock "table-reserve/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockReservationReadStore(ctrl)
	q := queries.NewReservationQueries(store)
	ctx := context.Background()

	view := &queries.ReservationView{
		ID:          uuid.New(),
		StoreID:     uuid.New(),
		StoreName:   "참새정",
		MemberID:    uuid.New(),
		MemberEmail: "user@example.com",
		VisitTime:   time.Date(2026, 8, 30, 19, 0, 0, 0, time.UTC),
		Status:      "VALID",
	}

	t.Run("GetByID passes the view through untouched", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(ctx, view.ID)

		require.NoError(t, err)
		if diff := cmp.Diff(view, got); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ListByMember delegates to the member email index", func(t *testing.T) {
		store.EXPECT().FindByMemberEmail(gomock.Any(), "user@example.com").
			Return([]*queries.ReservationView{view}, nil)

		got, err := q.ListByMember(ctx, "user@example.com")

		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("ListByOwner delegates to the owner email index", func(t *testing.T) {
		store.EXPECT().FindByOwnerEmail(gomock.Any(), "owner@example.com").
			Return([]*queries.ReservationView{view}, nil)

		got, err := q.ListByOwner(ctx, "owner@example.com")

		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestReviewQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockReviewReadStore(ctrl)
	q := queries.NewReviewQueries(store)
	ctx := context.Background()

	storeID := uuid.New()
	views := []*queries.ReviewView{
		{ID: uuid.New(), StoreID: storeID, StoreName: "참새정", MemberEmail: "user@example.com", Rating: 5, Content: "Excellent"},
		{ID: uuid.New(), StoreID: storeID, StoreName: "참새정", MemberEmail: "other@example.com", Rating: 2, Content: "Slow"},
	}

	t.Run("ListByStore passes views through untouched", func(t *testing.T) {
		store.EXPECT().FindByStoreID(gomock.Any(), storeID).Return(views, nil)

		got, err := q.ListByStore(ctx, storeID)

		require.NoError(t, err)
		if diff := cmp.Diff(views, got); diff != "" {
			t.Errorf("views mismatch (-want +got):\n%s", diff)
		}
	})
}
