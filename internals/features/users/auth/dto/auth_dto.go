// file: internals/features/users/auth/dto/auth_dto.go
package dto

import "strings"

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Role        string `json:"role"`
}
