package repository

import (
	"context"
	"time"

	"table-reserve/internal/domain/reservation"
	"table-reserve/internal/infra"
	"table-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.Queryer
}

func NewReservationRepository(q db.Queryer) *ReservationRepository {
	return &ReservationRepository{db: q}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, store_id, member_id, visit_time, status, created_at, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		res.ID(),
		res.StoreID(),
		res.MemberID(),
		res.VisitTime(),
		string(res.Status()),
		res.CreatedAt(),
		res.LastModified(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status, modifiedAt time.Time) error {
	const query = `
		UPDATE reservations
		SET status = $2, last_modified = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, string(status), modifiedAt)
	if err != nil {
		return wrapPgErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}
