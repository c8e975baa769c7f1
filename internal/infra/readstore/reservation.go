package readstore

import (
	"context"
	"errors"

	"table-reserve/internal/infra"
	"table-reserve/internal/infra/db"
	"table-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationViewQuery = `
	SELECT r.id, r.store_id, s.name, r.member_id, m.email,
	       r.visit_time, r.status, r.created_at, r.last_modified
	FROM reservations r
	JOIN stores s ON s.id = r.store_id
	JOIN members m ON m.id = r.member_id`

type ReservationReadStore struct {
	db db.Queryer
}

func NewReservationReadStore(q db.Queryer) *ReservationReadStore {
	return &ReservationReadStore{db: q}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := reservationViewQuery + ` WHERE r.id = $1`

	var view queries.ReservationView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.StoreID, &view.StoreName, &view.MemberID, &view.MemberEmail,
		&view.VisitTime, &view.Status, &view.CreatedAt, &view.LastModified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &view, nil
}

func (r *ReservationReadStore) FindByMemberEmail(ctx context.Context, memberEmail string) ([]*queries.ReservationView, error) {
	query := reservationViewQuery + ` WHERE m.email = $1 ORDER BY r.visit_time`

	return r.list(ctx, query, memberEmail)
}

// FindByOwnerEmail lists reservations across every store the owner
// holds, ordered for the arrival desk (soonest visit first).
func (r *ReservationReadStore) FindByOwnerEmail(ctx context.Context, ownerEmail string) ([]*queries.ReservationView, error) {
	query := reservationViewQuery + `
	JOIN members o ON o.id = s.owner_id
	WHERE o.email = $1
	ORDER BY r.visit_time`

	return r.list(ctx, query, ownerEmail)
}

func (r *ReservationReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		var view queries.ReservationView
		if err := rows.Scan(
			&view.ID, &view.StoreID, &view.StoreName, &view.MemberID, &view.MemberEmail,
			&view.VisitTime, &view.Status, &view.CreatedAt, &view.LastModified,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}
