package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"table-reserve/internal/domain/reservation"
	"table-reserve/internal/domain/review"
	"table-reserve/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReviewRepository needs the pool rather than a Queryer: the review row
// and the REVIEWED transition of its reservation commit atomically.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) CreateWithReservationStatus(
	ctx context.Context,
	rev *review.Review,
	reservationID uuid.UUID,
	status reservation.Status,
	modifiedAt time.Time,
) (uuid.UUID, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin review transaction", err)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback review transaction", "error", rollbackErr.Error())
			}
		}
	}()

	const insertReview = `
		INSERT INTO reviews (id, store_id, member_id, reservation_id, rating, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err = tx.QueryRow(ctx, insertReview,
		rev.ID(),
		rev.StoreID(),
		rev.MemberID(),
		rev.ReservationID(),
		rev.Rating().Value(),
		rev.Content().String(),
		rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create review", err)
	}

	const updateReservation = `
		UPDATE reservations
		SET status = $2, last_modified = $3
		WHERE id = $1`

	tag, err := tx.Exec(ctx, updateReservation, reservationID, string(status), modifiedAt)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to mark reservation reviewed", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit review transaction", err)
	}

	return id, nil
}
