//go:build unit

package commands_test

import (
	"context"
	"testing"

	reqdto "table-reserve/internal/handler/dto/request"
	"table-reserve/internal/usecase/commands"
	portsmock "table-reserve/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StoreCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	reads    *portsmock.MockCommandReads
	repo     *portsmock.MockStoreRepository
	cmds     commands.StoreCommands
}

func (s *StoreCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.reads = portsmock.NewMockCommandReads(s.mockCtrl)
	s.repo = portsmock.NewMockStoreRepository(s.mockCtrl)
	s.cmds = commands.NewStoreCommands(s.reads, s.repo)
}

func (s *StoreCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStoreCommandsSuite(t *testing.T) {
	suite.Run(t, new(StoreCommandsTestSuite))
}

func createStoreReq() reqdto.CreateStoreRequest {
	return reqdto.CreateStoreRequest{
		StoreName:   "참새정",
		Legion:      "Seoul",
		City:        "Gangnam",
		Street:      "Teheran-ro 1",
		Zipcode:     "06000",
		Description: "a quiet place",
	}
}

func (s *StoreCommandsTestSuite) TestCreateStore() {
	owner := &commands.MemberSnapshot{
		ID:    uuid.New(),
		Email: "owner@example.com",
		Roles: []string{"ROLE_PARTNER", "ROLE_USER"},
	}

	s.Run("registers a store for its owner", func() {
		s.reads.EXPECT().StoreNameExists(gomock.Any(), "참새정").Return(false, nil)
		s.reads.EXPECT().MemberByEmail(gomock.Any(), "owner@example.com").Return(owner, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		result, err := s.cmds.CreateStore(s.ctx, createStoreReq(), "owner@example.com")

		s.Require().NoError(err)
		s.Equal("참새정", result.Name)
		s.Equal("owner@example.com", result.OwnerEmail)
	})

	s.Run("duplicate store name", func() {
		s.reads.EXPECT().StoreNameExists(gomock.Any(), "참새정").Return(true, nil)

		_, err := s.cmds.CreateStore(s.ctx, createStoreReq(), "owner@example.com")

		s.Require().ErrorIs(err, commands.ErrDuplicateStoreName)
	})

	s.Run("unknown owner", func() {
		s.reads.EXPECT().StoreNameExists(gomock.Any(), "참새정").Return(false, nil)
		s.reads.EXPECT().MemberByEmail(gomock.Any(), "ghost@example.com").Return(nil, notFoundErr("member not found"))

		_, err := s.cmds.CreateStore(s.ctx, createStoreReq(), "ghost@example.com")

		s.Require().ErrorIs(err, commands.ErrMemberNotFound)
	})

	s.Run("address requires city and street", func() {
		req := createStoreReq()
		req.Street = ""
		s.reads.EXPECT().StoreNameExists(gomock.Any(), "참새정").Return(false, nil)
		s.reads.EXPECT().MemberByEmail(gomock.Any(), "owner@example.com").Return(owner, nil)

		_, err := s.cmds.CreateStore(s.ctx, req, "owner@example.com")

		s.Require().ErrorIs(err, commands.ErrInvalidStoreInput)
	})
}
