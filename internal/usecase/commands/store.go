package commands

import (
	"context"

	"table-reserve/internal/domain/store"
	reqdto "table-reserve/internal/handler/dto/request"
	"table-reserve/internal/infra"
	"table-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStoreNotFound      = errs.New("store not found")
	ErrDuplicateStoreName = errs.New("duplicate store name")
	ErrInvalidStoreInput  = errs.New("invalid store input")
)

type CreateStoreResult struct {
	StoreID    uuid.UUID
	Name       string
	OwnerEmail string
}

type StoreCommands interface {
	CreateStore(ctx context.Context, req reqdto.CreateStoreRequest, ownerEmail string) (*CreateStoreResult, error)
}

type storeCommandsImpl struct {
	reads     CommandReads
	storeRepo StoreRepository
}

func NewStoreCommands(reads CommandReads, storeRepo StoreRepository) StoreCommands {
	return &storeCommandsImpl{
		reads:     reads,
		storeRepo: storeRepo,
	}
}

// Store-name uniqueness is a creation-time check, same as member email.
func (s *storeCommandsImpl) CreateStore(ctx context.Context, req reqdto.CreateStoreRequest, ownerEmail string) (*CreateStoreResult, error) {
	exists, err := s.reads.StoreNameExists(ctx, req.StoreName)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check store name uniqueness")
	}
	if exists {
		return nil, ErrDuplicateStoreName
	}

	owner, err := s.reads.MemberByEmail(ctx, ownerEmail)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, errs.Wrap(err, "failed to find owner")
	}

	address, err := req.ToAddress()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStoreInput)
	}

	entity, err := store.NewStore(req.StoreName, address, req.Description, owner.ID, owner.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStoreInput)
	}

	storeID, err := s.storeRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateStoreName
		}
		return nil, errs.Wrap(err, "failed to create store")
	}

	return &CreateStoreResult{
		StoreID:    storeID,
		Name:       entity.Name(),
		OwnerEmail: entity.OwnerEmail(),
	}, nil
}
