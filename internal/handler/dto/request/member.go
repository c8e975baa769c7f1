package request

import (
	"table-reserve/internal/domain/member"
)

type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"required,max=30"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=30"`
	Gender      string `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
}

func (r SignUpRequest) ToDomain() (member.Email, member.Password, error) {
	email, err := member.NewEmail(r.Email)
	if err != nil {
		return member.Email{}, member.Password{}, err
	}
	pass, err := member.NewPassword(r.Password)
	if err != nil {
		return member.Email{}, member.Password{}, err
	}
	return email, pass, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
