package member

import (
	"time"

	"github.com/google/uuid"
)

// Member identity (the email) is immutable after signup, and the role
// tags are fixed at creation. There is no later promotion path.
type Member struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash string
	phoneNumber  string
	gender       string
	roles        Roles
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMember(email Email, name, passwordHash, phoneNumber, gender string, roles Roles) (*Member, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Member{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		phoneNumber:  phoneNumber,
		gender:       gender,
		roles:        roles,
	}, nil
}

func ReconstructMember(
	id uuid.UUID,
	email Email,
	name, passwordHash, phoneNumber, gender string,
	roles Roles,
	createdAt, updatedAt time.Time,
) *Member {
	return &Member{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		phoneNumber:  phoneNumber,
		gender:       gender,
		roles:        roles,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m *Member) ID() uuid.UUID        { return m.id }
func (m *Member) Email() Email         { return m.email }
func (m *Member) Name() string         { return m.name }
func (m *Member) PasswordHash() string { return m.passwordHash }
func (m *Member) PhoneNumber() string  { return m.phoneNumber }
func (m *Member) Gender() string       { return m.gender }
func (m *Member) Roles() Roles         { return m.roles }
func (m *Member) CreatedAt() time.Time { return m.createdAt }
func (m *Member) UpdatedAt() time.Time { return m.updatedAt }

func (m *Member) IsPartner() bool {
	return m.roles.Has(RolePartner)
}

// IdentityMatches is the single ownership predicate shared by every
// guard. The comparison target differs per call site (store owner vs.
// reserving member) but the comparison itself does not.
func IdentityMatches(expected, actual string) bool {
	return expected == actual
}
