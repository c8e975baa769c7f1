package readstore

import (
	"context"
	"errors"

	"table-reserve/internal/infra"
	"table-reserve/internal/infra/db"
	"table-reserve/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReads serves the write side with minimal snapshots. Joins pull
// in the emails the ownership guards compare so commands never do a
// second lookup.
type CommandReads struct {
	db db.Queryer
}

func NewCommandReads(q db.Queryer) *CommandReads {
	return &CommandReads{db: q}
}

func (r *CommandReads) MemberByEmail(ctx context.Context, email string) (*commands.MemberSnapshot, error) {
	const query = `
		SELECT id, email, name, password_hash, roles
		FROM members
		WHERE email = $1`

	var snap commands.MemberSnapshot
	err := r.db.QueryRow(ctx, query, email).Scan(
		&snap.ID, &snap.Email, &snap.Name, &snap.PasswordHash, &snap.Roles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by email", err)
	}

	return &snap, nil
}

func (r *CommandReads) MemberEmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM members WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check member email", err)
	}

	return exists, nil
}

func (r *CommandReads) StoreByID(ctx context.Context, id uuid.UUID) (*commands.StoreSnapshot, error) {
	const query = `
		SELECT s.id, s.name, s.owner_id, m.email
		FROM stores s
		JOIN members m ON m.id = s.owner_id
		WHERE s.id = $1`

	return r.scanStoreSnapshot(r.db.QueryRow(ctx, query, id))
}

func (r *CommandReads) StoreByName(ctx context.Context, name string) (*commands.StoreSnapshot, error) {
	const query = `
		SELECT s.id, s.name, s.owner_id, m.email
		FROM stores s
		JOIN members m ON m.id = s.owner_id
		WHERE s.name = $1`

	return r.scanStoreSnapshot(r.db.QueryRow(ctx, query, name))
}

func (r *CommandReads) scanStoreSnapshot(row pgx.Row) (*commands.StoreSnapshot, error) {
	var snap commands.StoreSnapshot
	err := row.Scan(&snap.ID, &snap.Name, &snap.OwnerID, &snap.OwnerEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store", err)
	}

	return &snap, nil
}

func (r *CommandReads) StoreNameExists(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM stores WHERE name = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check store name", err)
	}

	return exists, nil
}

func (r *CommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	const query = `
		SELECT r.id, r.store_id, s.name, o.email, r.member_id, m.email,
		       r.visit_time, r.status, r.created_at, r.last_modified
		FROM reservations r
		JOIN stores s ON s.id = r.store_id
		JOIN members o ON o.id = s.owner_id
		JOIN members m ON m.id = r.member_id
		WHERE r.id = $1`

	var snap commands.ReservationSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.StoreID, &snap.StoreName, &snap.StoreOwnerEmail,
		&snap.MemberID, &snap.MemberEmail,
		&snap.VisitTime, &snap.Status, &snap.CreatedAt, &snap.LastModified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &snap, nil
}
