package builder

import (
	"time"

	"table-reserve/internal/domain/reservation"
	"table-reserve/internal/usecase/commands"

	"github.com/google/uuid"
)

// BaseTime is the fixed "now" reservations are built around.
var BaseTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	id           uuid.UUID
	storeID      uuid.UUID
	storeName    string
	ownerEmail   string
	memberID     uuid.UUID
	memberEmail  string
	visitTime    time.Time
	status       reservation.Status
	createdAt    time.Time
	lastModified time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		id:           uuid.New(),
		storeID:      uuid.New(),
		storeName:    "참새정",
		ownerEmail:   "owner@example.com",
		memberID:     uuid.New(),
		memberEmail:  "user@example.com",
		visitTime:    BaseTime.Add(time.Hour),
		status:       reservation.StatusValid,
		createdAt:    BaseTime,
		lastModified: BaseTime,
	}
}

func (b *ReservationBuilder) With(fn func(*ReservationBuilder)) *ReservationBuilder {
	if fn != nil {
		fn(b)
	}
	return b
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.id = id
	return b
}

func (b *ReservationBuilder) WithStoreName(name string) *ReservationBuilder {
	b.storeName = name
	return b
}

func (b *ReservationBuilder) WithOwnerEmail(email string) *ReservationBuilder {
	b.ownerEmail = email
	return b
}

func (b *ReservationBuilder) WithMemberEmail(email string) *ReservationBuilder {
	b.memberEmail = email
	return b
}

func (b *ReservationBuilder) WithVisitTime(t time.Time) *ReservationBuilder {
	b.visitTime = t
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.status = s
	return b
}

func (b *ReservationBuilder) WithLastModified(t time.Time) *ReservationBuilder {
	b.lastModified = t
	return b
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.id,
		b.storeID,
		b.storeName,
		b.memberID,
		b.memberEmail,
		b.visitTime,
		b.status,
		b.createdAt,
		b.lastModified,
	)
}

func (b *ReservationBuilder) BuildSnapshot() *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:              b.id,
		StoreID:         b.storeID,
		StoreName:       b.storeName,
		StoreOwnerEmail: b.ownerEmail,
		MemberID:        b.memberID,
		MemberEmail:     b.memberEmail,
		VisitTime:       b.visitTime,
		Status:          b.status.String(),
		CreatedAt:       b.createdAt,
		LastModified:    b.lastModified,
	}
}
