package dto

import (
	"github.com/oxygenfit/salesconsole/internal/auth"
	"github.com/oxygenfit/salesconsole/internal/validator"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type AuthResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

func NewAuthResponse(session *auth.Session) *AuthResponse {
	return &AuthResponse{
		UserID:      session.UserID,
		Email:       session.Email,
		AccessToken: session.AccessToken,
	}
}

type MeResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
