//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"table-reserve/internal/domain/reservation"
	reqdto "table-reserve/internal/handler/dto/request"
	"table-reserve/internal/pkg/clock"
	"table-reserve/internal/usecase/commands"
	"table-reserve/tests/common/builder"
	portsmock "table-reserve/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	reads    *portsmock.MockCommandReads
	repo     *portsmock.MockReviewRepository
	clk      *clock.MockClock
	cmds     commands.ReviewCommands
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.reads = portsmock.NewMockCommandReads(s.mockCtrl)
	s.repo = portsmock.NewMockReviewRepository(s.mockCtrl)
	s.clk = clock.NewMockClock(builder.BaseTime)
	s.cmds = commands.NewReviewCommands(s.reads, s.repo, s.clk)
}

func (s *ReviewCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func reviewReq(rating int, content string) reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{Rating: &rating, Content: content}
}

func (s *ReviewCommandsTestSuite) completedSnapshot(completedAt time.Time) *commands.ReservationSnapshot {
	return builder.NewReservationBuilder().
		WithMemberEmail("user@example.com").
		WithStatus(reservation.StatusComplete).
		WithLastModified(completedAt).
		BuildSnapshot()
}

func (s *ReviewCommandsTestSuite) TestCreateReview() {
	s.Run("persists review with the REVIEWED transition", func() {
		snap := s.completedSnapshot(builder.BaseTime.Add(-24 * time.Hour))
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.repo.EXPECT().
			CreateWithReservationStatus(gomock.Any(), gomock.Any(), snap.ID, reservation.StatusReviewed, builder.BaseTime).
			Return(uuid.New(), nil)

		result, err := s.cmds.CreateReview(s.ctx, reviewReq(4, "  Great food  "), snap.ID, "user@example.com")

		s.Require().NoError(err)
		s.Equal(4, result.Rating)
		s.Equal("Great food", result.Content)
	})

	s.Run("only the reserving member may review", func() {
		snap := s.completedSnapshot(builder.BaseTime.Add(-24 * time.Hour))
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.cmds.CreateReview(s.ctx, reviewReq(4, "nice"), snap.ID, "owner@example.com")

		s.Require().ErrorIs(err, commands.ErrIllegalAccess)
	})

	s.Run("second review is rejected by status", func() {
		snap := builder.NewReservationBuilder().
			WithMemberEmail("user@example.com").
			WithStatus(reservation.StatusReviewed).
			WithLastModified(builder.BaseTime.Add(-time.Hour)).
			BuildSnapshot()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.cmds.CreateReview(s.ctx, reviewReq(4, "again"), snap.ID, "user@example.com")

		s.Require().ErrorIs(err, commands.ErrAlreadyReviewed)
	})

	s.Run("valid reservation cannot be reviewed yet", func() {
		snap := builder.NewReservationBuilder().
			WithMemberEmail("user@example.com").
			BuildSnapshot()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.cmds.CreateReview(s.ctx, reviewReq(4, "too early"), snap.ID, "user@example.com")

		s.Require().ErrorIs(err, commands.ErrReservationNotComplete)
	})

	s.Run("canceled reservation cannot be reviewed", func() {
		snap := builder.NewReservationBuilder().
			WithMemberEmail("user@example.com").
			WithStatus(reservation.StatusCancel).
			BuildSnapshot()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.cmds.CreateReview(s.ctx, reviewReq(4, "no-show"), snap.ID, "user@example.com")

		s.Require().ErrorIs(err, commands.ErrReservationNotComplete)
	})

	s.Run("window expired", func() {
		snap := s.completedSnapshot(builder.BaseTime.Add(-reservation.ReviewWindow))
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.cmds.CreateReview(s.ctx, reviewReq(4, "late"), snap.ID, "user@example.com")

		s.Require().ErrorIs(err, commands.ErrReviewWindowExpired)
	})

	s.Run("last second of the window is accepted", func() {
		snap := s.completedSnapshot(builder.BaseTime.Add(-reservation.ReviewWindow).Add(time.Second))
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.repo.EXPECT().
			CreateWithReservationStatus(gomock.Any(), gomock.Any(), snap.ID, reservation.StatusReviewed, builder.BaseTime).
			Return(uuid.New(), nil)

		_, err := s.cmds.CreateReview(s.ctx, reviewReq(5, "just in time"), snap.ID, "user@example.com")

		s.Require().NoError(err)
	})

	s.Run("whitespace-only content is rejected", func() {
		snap := s.completedSnapshot(builder.BaseTime.Add(-24 * time.Hour))
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.cmds.CreateReview(s.ctx, reviewReq(4, "   "), snap.ID, "user@example.com")

		s.Require().ErrorIs(err, commands.ErrInvalidReviewInput)
	})

	s.Run("overlong content is rejected", func() {
		snap := s.completedSnapshot(builder.BaseTime.Add(-24 * time.Hour))
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.cmds.CreateReview(s.ctx, reviewReq(4, strings.Repeat("a", 1001)), snap.ID, "user@example.com")

		s.Require().ErrorIs(err, commands.ErrInvalidReviewInput)
	})

	s.Run("unknown reservation", func() {
		id := uuid.New()
		s.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(nil, notFoundErr("reservation not found"))

		_, err := s.cmds.CreateReview(s.ctx, reviewReq(4, "where"), id, "user@example.com")

		s.Require().ErrorIs(err, commands.ErrReservationNotFound)
	})
}
