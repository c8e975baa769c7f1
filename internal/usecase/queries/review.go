package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*ReviewView, error)
	ListByMember(ctx context.Context, memberEmail string) ([]*ReviewView, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*ReviewView, error)
}

type ReviewReadStore interface {
	FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*ReviewView, error)
	FindByMemberEmail(ctx context.Context, memberEmail string) ([]*ReviewView, error)
	FindByOwnerEmail(ctx context.Context, ownerEmail string) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*ReviewView, error) {
	return q.store.FindByStoreID(ctx, storeID)
}

func (q *reviewQueriesImpl) ListByMember(ctx context.Context, memberEmail string) ([]*ReviewView, error) {
	return q.store.FindByMemberEmail(ctx, memberEmail)
}

func (q *reviewQueriesImpl) ListByOwner(ctx context.Context, ownerEmail string) ([]*ReviewView, error) {
	return q.store.FindByOwnerEmail(ctx, ownerEmail)
}
