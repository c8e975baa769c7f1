package readstore

import (
	"context"
	"errors"
	"fmt"

	"table-reserve/internal/infra"
	"table-reserve/internal/infra/db"
	"table-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const storeViewColumns = `
	s.id, s.name, s.legion, s.city, s.street, s.zipcode, s.description,
	m.email, s.created_at, s.updated_at`

type StoreReadStore struct {
	db db.Queryer
}

func NewStoreReadStore(q db.Queryer) *StoreReadStore {
	return &StoreReadStore{db: q}
}

func (r *StoreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StoreView, error) {
	query := `
		SELECT ` + storeViewColumns + `
		FROM stores s
		JOIN members m ON m.id = s.owner_id
		WHERE s.id = $1`

	var view queries.StoreView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Legion, &view.City, &view.Street,
		&view.Zipcode, &view.Description, &view.OwnerEmail,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by ID", err)
	}

	return &view, nil
}

func (r *StoreReadStore) FindAll(ctx context.Context, cond queries.StoreSearchCond) ([]*queries.StoreView, error) {
	query := `
		SELECT ` + storeViewColumns + `
		FROM stores s
		JOIN members m ON m.id = s.owner_id`

	var (
		args  []any
		where string
	)
	if cond.Name != nil {
		args = append(args, "%"+*cond.Name+"%")
		where += fmt.Sprintf(" AND s.name ILIKE $%d", len(args))
	}
	if cond.City != nil {
		args = append(args, *cond.City)
		where += fmt.Sprintf(" AND s.city = $%d", len(args))
	}
	if where != "" {
		query += " WHERE" + where[len(" AND"):]
	}
	query += " ORDER BY s.name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search stores", err)
	}
	defer rows.Close()

	var result []*queries.StoreView
	for rows.Next() {
		var view queries.StoreView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.Legion, &view.City, &view.Street,
			&view.Zipcode, &view.Description, &view.OwnerEmail,
			&view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan store row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate store rows", err)
	}

	return result, nil
}
