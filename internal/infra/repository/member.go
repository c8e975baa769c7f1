package repository

import (
	"context"

	"table-reserve/internal/domain/member"
	"table-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type MemberRepository struct {
	db db.Queryer
}

func NewMemberRepository(q db.Queryer) *MemberRepository {
	return &MemberRepository{db: q}
}

func (r *MemberRepository) Create(ctx context.Context, m *member.Member) (uuid.UUID, error) {
	const query = `
		INSERT INTO members (id, email, name, password_hash, phone_number, gender, roles)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		m.ID(),
		m.Email().Value(),
		m.Name(),
		m.PasswordHash(),
		m.PhoneNumber(),
		m.Gender(),
		m.Roles().Strings(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create member", err)
	}

	return id, nil
}
