package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByMember(ctx context.Context, memberEmail string) ([]*ReservationView, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByMemberEmail(ctx context.Context, memberEmail string) ([]*ReservationView, error)
	FindByOwnerEmail(ctx context.Context, ownerEmail string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListByMember(ctx context.Context, memberEmail string) ([]*ReservationView, error) {
	return q.store.FindByMemberEmail(ctx, memberEmail)
}

func (q *reservationQueriesImpl) ListByOwner(ctx context.Context, ownerEmail string) ([]*ReservationView, error) {
	return q.store.FindByOwnerEmail(ctx, ownerEmail)
}
