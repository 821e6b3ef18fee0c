package service

import (
	"context"

	"github.com/oxygenfit/salesconsole/internal/api/dto"
	"github.com/oxygenfit/salesconsole/internal/types"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context) (*dto.MeResponse, error)
	Logout(ctx context.Context) error
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{ServiceParams: params}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := s.AuthProvider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		// invalid credentials surface a hint, nothing else changes
		s.Logger.Infow("sign in rejected", "email", req.Email)
		return nil, err
	}

	s.Logger.Infow("signed in", "user_id", session.UserID)
	return dto.NewAuthResponse(session), nil
}

func (s *authService) Me(ctx context.Context) (*dto.MeResponse, error) {
	session, err := s.AuthProvider.CurrentUser(ctx, types.GetUserToken(ctx))
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{UserID: session.UserID, Email: session.Email}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.AuthProvider.SignOut(ctx, types.GetUserToken(ctx))
}
