package commands

import (
	"context"
	"time"

	"table-reserve/internal/domain/reservation"
	"table-reserve/internal/domain/review"
	"table-reserve/internal/domain/store"

	domainmember "table-reserve/internal/domain/member"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
// (CQRS separation).

type MemberSnapshot struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Roles        []string
}

type StoreSnapshot struct {
	ID         uuid.UUID
	Name       string
	OwnerID    uuid.UUID
	OwnerEmail string
}

// ReservationSnapshot carries the owner email of the reserved store so
// ownership guards never need a second lookup.
type ReservationSnapshot struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	StoreName       string
	StoreOwnerEmail string
	MemberID        uuid.UUID
	MemberEmail     string
	VisitTime       time.Time
	Status          string
	CreatedAt       time.Time
	LastModified    time.Time
}

type CommandReads interface {
	MemberByEmail(ctx context.Context, email string) (*MemberSnapshot, error)
	MemberEmailExists(ctx context.Context, email string) (bool, error)
	StoreByID(ctx context.Context, id uuid.UUID) (*StoreSnapshot, error)
	StoreByName(ctx context.Context, name string) (*StoreSnapshot, error)
	StoreNameExists(ctx context.Context, name string) (bool, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type MemberRepository interface {
	Create(ctx context.Context, m *domainmember.Member) (uuid.UUID, error)
}

type StoreRepository interface {
	Create(ctx context.Context, s *store.Store) (uuid.UUID, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status, modifiedAt time.Time) error
}

type ReviewRepository interface {
	// CreateWithReservationStatus persists the review and the REVIEWED
	// transition of its reservation in a single transaction.
	CreateWithReservationStatus(ctx context.Context, rev *review.Review, reservationID uuid.UUID, status reservation.Status, modifiedAt time.Time) (uuid.UUID, error)
}
