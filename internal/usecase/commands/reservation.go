package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"table-reserve/internal/domain/member"
	"table-reserve/internal/domain/reservation"
	reqdto "table-reserve/internal/handler/dto/request"
	"table-reserve/internal/infra"
	"table-reserve/internal/pkg/clock"
	"table-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrIllegalAccess       = errs.New("illegal access to reservation")
	ErrInvalidVisitTime    = errs.New("invalid visit time")
	ErrReservationCanceled = errs.New("reservation canceled")
	ErrNoLongerAvailable   = errs.New("reservation no longer available")
)

// ReservationResult is the snapshot returned by every lifecycle
// operation.
type ReservationResult struct {
	ID          uuid.UUID
	StoreName   string
	MemberEmail string
	VisitTime   time.Time
	Status      string
}

type ReservationCommands interface {
	Book(ctx context.Context, req reqdto.CreateReservationRequest, memberEmail string) (*ReservationResult, error)
	BookFromStore(ctx context.Context, req reqdto.CreateStoreReservationRequest, storeID uuid.UUID, memberEmail string) (*ReservationResult, error)
	GetForOwner(ctx context.Context, reservationID uuid.UUID, ownerEmail string) (*ReservationResult, error)
	CancelForOwner(ctx context.Context, reservationID uuid.UUID, ownerEmail string) (*ReservationResult, error)
	GetForMember(ctx context.Context, reservationID uuid.UUID, memberEmail string) (*ReservationResult, error)
	CancelForMember(ctx context.Context, reservationID uuid.UUID, memberEmail string) (*ReservationResult, error)
	ConfirmArrival(ctx context.Context, reservationID uuid.UUID, memberEmail string) (*ReservationResult, error)
}

type reservationCommandsImpl struct {
	reads           CommandReads
	reservationRepo ReservationRepository
	clock           clock.Clock
}

func NewReservationCommands(reads CommandReads, reservationRepo ReservationRepository, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		reads:           reads,
		reservationRepo: reservationRepo,
		clock:           clk,
	}
}

func (r *reservationCommandsImpl) Book(ctx context.Context, req reqdto.CreateReservationRequest, memberEmail string) (*ReservationResult, error) {
	visitTime, err := req.ParseVisitTime()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVisitTime)
	}

	storeSnap, err := r.reads.StoreByName(ctx, req.StoreName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, errs.Wrap(err, "failed to find store by name")
	}

	return r.book(ctx, storeSnap, memberEmail, visitTime)
}

// BookFromStore differs from Book only in how the store is resolved;
// both paths must produce equivalent reservation records.
func (r *reservationCommandsImpl) BookFromStore(ctx context.Context, req reqdto.CreateStoreReservationRequest, storeID uuid.UUID, memberEmail string) (*ReservationResult, error) {
	visitTime, err := req.ParseVisitTime()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVisitTime)
	}

	storeSnap, err := r.reads.StoreByID(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, errs.Wrap(err, "failed to find store by id")
	}

	return r.book(ctx, storeSnap, memberEmail, visitTime)
}

func (r *reservationCommandsImpl) book(ctx context.Context, storeSnap *StoreSnapshot, memberEmail string, visitTime time.Time) (*ReservationResult, error) {
	memberSnap, err := r.reads.MemberByEmail(ctx, memberEmail)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, errs.Wrap(err, "failed to find member")
	}

	entity := reservation.NewReservation(
		storeSnap.ID,
		storeSnap.Name,
		memberSnap.ID,
		memberSnap.Email,
		visitTime,
		r.clock.Now(),
	)

	if _, err := r.reservationRepo.Create(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to create reservation")
	}

	return newReservationResult(entity), nil
}

func (r *reservationCommandsImpl) GetForOwner(ctx context.Context, reservationID uuid.UUID, ownerEmail string) (*ReservationResult, error) {
	snap, err := r.resolve(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !member.IdentityMatches(snap.StoreOwnerEmail, ownerEmail) {
		return nil, ErrIllegalAccess
	}
	return resultFromSnapshot(snap), nil
}

// CancelForOwner re-asserts CANCEL regardless of the current status;
// only the ownership guard can reject it.
func (r *reservationCommandsImpl) CancelForOwner(ctx context.Context, reservationID uuid.UUID, ownerEmail string) (*ReservationResult, error) {
	snap, err := r.resolve(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !member.IdentityMatches(snap.StoreOwnerEmail, ownerEmail) {
		return nil, ErrIllegalAccess
	}
	return r.cancel(ctx, snap)
}

func (r *reservationCommandsImpl) GetForMember(ctx context.Context, reservationID uuid.UUID, memberEmail string) (*ReservationResult, error) {
	snap, err := r.resolve(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !member.IdentityMatches(snap.MemberEmail, memberEmail) {
		return nil, ErrIllegalAccess
	}
	return resultFromSnapshot(snap), nil
}

func (r *reservationCommandsImpl) CancelForMember(ctx context.Context, reservationID uuid.UUID, memberEmail string) (*ReservationResult, error) {
	snap, err := r.resolve(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !member.IdentityMatches(snap.MemberEmail, memberEmail) {
		return nil, ErrIllegalAccess
	}
	return r.cancel(ctx, snap)
}

// ConfirmArrival applies the no-show guard. The late-arrival path is a
// documented mutate-then-fail: the CANCEL transition is persisted and
// the call still reports a failure.
func (r *reservationCommandsImpl) ConfirmArrival(ctx context.Context, reservationID uuid.UUID, memberEmail string) (*ReservationResult, error) {
	snap, err := r.resolve(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !member.IdentityMatches(snap.MemberEmail, memberEmail) {
		return nil, ErrIllegalAccess
	}

	entity, err := toDomain(snap)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	arrivalErr := entity.ConfirmArrival(now)
	switch {
	case arrivalErr == nil:
		// fall through to persist COMPLETE
	case errors.Is(arrivalErr, reservation.ErrNoLongerAvailable):
		if updateErr := r.reservationRepo.UpdateStatus(ctx, entity.ID(), entity.Status(), entity.LastModified()); updateErr != nil {
			return nil, errs.Wrap(updateErr, "failed to persist no-show cancellation")
		}
		slog.Info("reservation auto-canceled by no-show guard",
			"reservation_id", entity.ID(), "visit_time", entity.VisitTime())
		return nil, errs.Mark(arrivalErr, ErrNoLongerAvailable)
	case errors.Is(arrivalErr, reservation.ErrReservationCanceled):
		return nil, errs.Mark(arrivalErr, ErrReservationCanceled)
	default:
		return nil, arrivalErr
	}

	if err := r.reservationRepo.UpdateStatus(ctx, entity.ID(), entity.Status(), entity.LastModified()); err != nil {
		return nil, errs.Wrap(err, "failed to persist arrival confirmation")
	}

	return newReservationResult(entity), nil
}

func (r *reservationCommandsImpl) resolve(ctx context.Context, reservationID uuid.UUID) (*ReservationSnapshot, error) {
	snap, err := r.reads.ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return snap, nil
}

func (r *reservationCommandsImpl) cancel(ctx context.Context, snap *ReservationSnapshot) (*ReservationResult, error) {
	entity, err := toDomain(snap)
	if err != nil {
		return nil, err
	}

	entity.Cancel(r.clock.Now())

	if err := r.reservationRepo.UpdateStatus(ctx, entity.ID(), entity.Status(), entity.LastModified()); err != nil {
		return nil, errs.Wrap(err, "failed to persist cancellation")
	}

	return newReservationResult(entity), nil
}

func toDomain(snap *ReservationSnapshot) (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(snap.Status)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt reservation status")
	}

	return reservation.ReconstructReservation(
		snap.ID,
		snap.StoreID,
		snap.StoreName,
		snap.MemberID,
		snap.MemberEmail,
		snap.VisitTime,
		status,
		snap.CreatedAt,
		snap.LastModified,
	), nil
}

func newReservationResult(entity *reservation.Reservation) *ReservationResult {
	return &ReservationResult{
		ID:          entity.ID(),
		StoreName:   entity.StoreName(),
		MemberEmail: entity.MemberEmail(),
		VisitTime:   entity.VisitTime(),
		Status:      entity.Status().String(),
	}
}

func resultFromSnapshot(snap *ReservationSnapshot) *ReservationResult {
	return &ReservationResult{
		ID:          snap.ID,
		StoreName:   snap.StoreName,
		MemberEmail: snap.MemberEmail,
		VisitTime:   snap.VisitTime,
		Status:      snap.Status,
	}
}
