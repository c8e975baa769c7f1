package response

import (
	"table-reserve/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SignUpResponse struct {
	MemberID uuid.UUID `json:"memberId"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Roles    []string  `json:"roles"`
}

type LoginResponse struct {
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	AccessToken string   `json:"accessToken"`
}

func FromSignUpResult(r *commands.SignUpResult) *SignUpResponse {
	var resp SignUpResponse
	_ = copier.Copy(&resp, r)
	return &resp
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	var resp LoginResponse
	_ = copier.Copy(&resp, r)
	return &resp
}
