package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store references its owner by id and email rather than embedding the
// member aggregate, so ownership guards only ever compare identities.
type Store struct {
	id          uuid.UUID
	name        string
	address     Address
	description string
	ownerID     uuid.UUID
	ownerEmail  string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStore(name string, address Address, description string, ownerID uuid.UUID, ownerEmail string) (*Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyStoreName
	}
	return &Store{
		id:          uuid.New(),
		name:        name,
		address:     address,
		description: description,
		ownerID:     ownerID,
		ownerEmail:  ownerEmail,
	}, nil
}

func ReconstructStore(
	id uuid.UUID,
	name string,
	address Address,
	description string,
	ownerID uuid.UUID,
	ownerEmail string,
	createdAt, updatedAt time.Time,
) *Store {
	return &Store{
		id:          id,
		name:        name,
		address:     address,
		description: description,
		ownerID:     ownerID,
		ownerEmail:  ownerEmail,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Store) ID() uuid.UUID        { return s.id }
func (s *Store) Name() string         { return s.name }
func (s *Store) Address() Address     { return s.address }
func (s *Store) Description() string  { return s.description }
func (s *Store) OwnerID() uuid.UUID   { return s.ownerID }
func (s *Store) OwnerEmail() string   { return s.ownerEmail }
func (s *Store) CreatedAt() time.Time { return s.createdAt }
func (s *Store) UpdatedAt() time.Time { return s.updatedAt }
