package commands

import (
	"context"
	"errors"

	"table-reserve/internal/domain/member"
	"table-reserve/internal/domain/reservation"
	domreview "table-reserve/internal/domain/review"
	reqdto "table-reserve/internal/handler/dto/request"
	"table-reserve/internal/infra"
	"table-reserve/internal/pkg/clock"
	"table-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyReviewed         = errs.New("review already exists for this reservation")
	ErrReservationNotComplete  = errs.New("reservation not complete")
	ErrReviewWindowExpired     = errs.New("review window expired")
	ErrInvalidReviewInput      = errs.New("invalid review input")
	ErrReviewPersistenceFailed = errs.New("review persistence failed")
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
	Rating   int
	Content  string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req reqdto.CreateReviewRequest, reservationID uuid.UUID, memberEmail string) (*CreateReviewResult, error)
}

type reviewCommandsImpl struct {
	reads      CommandReads
	reviewRepo ReviewRepository
	clock      clock.Clock
}

func NewReviewCommands(reads CommandReads, reviewRepo ReviewRepository, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{
		reads:      reads,
		reviewRepo: reviewRepo,
		clock:      clk,
	}
}

// CreateReview admits exactly one review per reservation: the REVIEWED
// transition and the review row are persisted together, so the status
// itself is the uniqueness guard.
func (r *reviewCommandsImpl) CreateReview(ctx context.Context, req reqdto.CreateReviewRequest, reservationID uuid.UUID, memberEmail string) (*CreateReviewResult, error) {
	snap, err := r.reads.ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}

	if !member.IdentityMatches(snap.MemberEmail, memberEmail) {
		return nil, ErrIllegalAccess
	}

	entity, err := toDomain(snap)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	if gateErr := entity.MarkReviewed(now); gateErr != nil {
		switch {
		case errors.Is(gateErr, reservation.ErrAlreadyReviewed):
			return nil, errs.Mark(gateErr, ErrAlreadyReviewed)
		case errors.Is(gateErr, reservation.ErrNotComplete):
			return nil, errs.Mark(gateErr, ErrReservationNotComplete)
		case errors.Is(gateErr, reservation.ErrReviewWindowExpired):
			return nil, errs.Mark(gateErr, ErrReviewWindowExpired)
		default:
			return nil, gateErr
		}
	}

	rev, err := domreview.NewReview(snap.StoreID, snap.MemberID, snap.ID, req.RatingValue(), req.Content, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReviewInput)
	}

	reviewID, err := r.reviewRepo.CreateWithReservationStatus(ctx, rev, entity.ID(), entity.Status(), entity.LastModified())
	if err != nil {
		return nil, errs.Mark(err, ErrReviewPersistenceFailed)
	}

	return &CreateReviewResult{
		ReviewID: reviewID,
		Rating:   rev.Rating().Value(),
		Content:  rev.Content().String(),
	}, nil
}
