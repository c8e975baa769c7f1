package readstore

import (
	"context"

	"table-reserve/internal/infra"
	"table-reserve/internal/infra/db"
	"table-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

const reviewViewQuery = `
	SELECT v.id, v.store_id, s.name, m.email, v.rating, v.content, v.created_at
	FROM reviews v
	JOIN stores s ON s.id = v.store_id
	JOIN members m ON m.id = v.member_id`

type ReviewReadStore struct {
	db db.Queryer
}

func NewReviewReadStore(q db.Queryer) *ReviewReadStore {
	return &ReviewReadStore{db: q}
}

func (r *ReviewReadStore) FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*queries.ReviewView, error) {
	query := reviewViewQuery + ` WHERE v.store_id = $1 ORDER BY v.created_at DESC`

	return r.list(ctx, query, storeID)
}

func (r *ReviewReadStore) FindByMemberEmail(ctx context.Context, memberEmail string) ([]*queries.ReviewView, error) {
	query := reviewViewQuery + ` WHERE m.email = $1 ORDER BY v.created_at DESC`

	return r.list(ctx, query, memberEmail)
}

func (r *ReviewReadStore) FindByOwnerEmail(ctx context.Context, ownerEmail string) ([]*queries.ReviewView, error) {
	query := reviewViewQuery + `
	JOIN members o ON o.id = s.owner_id
	WHERE o.email = $1
	ORDER BY v.created_at DESC`

	return r.list(ctx, query, ownerEmail)
}

func (r *ReviewReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var view queries.ReviewView
		if err := rows.Scan(
			&view.ID, &view.StoreID, &view.StoreName, &view.MemberEmail,
			&view.Rating, &view.Content, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}

	return result, nil
}
