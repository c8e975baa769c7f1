package repository

import (
	"context"

	"table-reserve/internal/domain/store"
	"table-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type StoreRepository struct {
	db db.Queryer
}

func NewStoreRepository(q db.Queryer) *StoreRepository {
	return &StoreRepository{db: q}
}

func (r *StoreRepository) Create(ctx context.Context, s *store.Store) (uuid.UUID, error) {
	const query = `
		INSERT INTO stores (id, name, legion, city, street, zipcode, description, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	addr := s.Address()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		s.ID(),
		s.Name(),
		addr.Legion(),
		addr.City(),
		addr.Street(),
		addr.Zipcode(),
		s.Description(),
		s.OwnerID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create store", err)
	}

	return id, nil
}
