package queries

import (
	"context"

	"github.com/google/uuid"
)

type StoreQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StoreView, error)
	Search(ctx context.Context, cond StoreSearchCond) ([]*StoreView, error)
}

type StoreReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StoreView, error)
	FindAll(ctx context.Context, cond StoreSearchCond) ([]*StoreView, error)
}

type storeQueriesImpl struct {
	store StoreReadStore
}

func NewStoreQueries(store StoreReadStore) StoreQueries {
	return &storeQueriesImpl{store: store}
}

func (q *storeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StoreView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *storeQueriesImpl) Search(ctx context.Context, cond StoreSearchCond) ([]*StoreView, error) {
	return q.store.FindAll(ctx, cond)
}
