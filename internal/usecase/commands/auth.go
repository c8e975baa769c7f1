package commands

import (
	"context"

	"table-reserve/internal/domain/member"
	reqdto "table-reserve/internal/handler/dto/request"
	"table-reserve/internal/infra"
	"table-reserve/internal/pkg/errs"
	"table-reserve/internal/pkg/jwt"
	"table-reserve/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound       = errs.New("member not found")
	ErrDuplicateEmail       = errs.New("duplicate email")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type SignUpResult struct {
	MemberID uuid.UUID
	Email    string
	Name     string
	Roles    []string
}

type LoginResult struct {
	Email       string
	Roles       []string
	AccessToken string
}

type AuthCommands interface {
	SignUpUser(ctx context.Context, req reqdto.SignUpRequest) (*SignUpResult, error)
	SignUpPartner(ctx context.Context, req reqdto.SignUpRequest) (*SignUpResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	reads      CommandReads
	memberRepo MemberRepository
	jwtService *jwt.Service
}

func NewAuthCommands(reads CommandReads, memberRepo MemberRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		reads:      reads,
		memberRepo: memberRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) SignUpUser(ctx context.Context, req reqdto.SignUpRequest) (*SignUpResult, error) {
	return a.signUp(ctx, req, member.UserRoles())
}

func (a *authCommandsImpl) SignUpPartner(ctx context.Context, req reqdto.SignUpRequest) (*SignUpResult, error) {
	return a.signUp(ctx, req, member.PartnerRoles())
}

// Email uniqueness is enforced here at creation time only; it is never
// re-validated on later operations.
func (a *authCommandsImpl) signUp(ctx context.Context, req reqdto.SignUpRequest, roles member.Roles) (*SignUpResult, error) {
	email, pass, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	exists, err := a.reads.MemberEmailExists(ctx, email.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to check email uniqueness")
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity, err := member.NewMember(email, req.Name, hash, req.PhoneNumber, req.Gender, roles)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	memberID, err := a.memberRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errs.Wrap(err, "failed to create member")
	}

	return &SignUpResult{
		MemberID: memberID,
		Email:    entity.Email().Value(),
		Name:     entity.Name(),
		Roles:    entity.Roles().Strings(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	snap, err := a.reads.MemberByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, errs.Wrap(err, "failed to find member")
	}

	if err := password.ComparePassword(snap.PasswordHash, req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	roles, err := member.NewRoles(snap.Roles)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(snap.Email, roles)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Email:       snap.Email,
		Roles:       roles.Strings(),
		AccessToken: token,
	}, nil
}
