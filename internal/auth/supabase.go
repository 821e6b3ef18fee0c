package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	supa "github.com/nedpals/supabase-go"

	"github.com/oxygenfit/salesconsole/internal/config"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
)

type supabaseAuth struct {
	cfg    config.SupabaseConfig
	client *supa.Client
}

// NewSupabaseAuth connects to the Supabase GoTrue endpoint of the
// configured project
func NewSupabaseAuth(cfg *config.Configuration) Provider {
	return &supabaseAuth{
		cfg:    cfg.Supabase,
		client: supa.CreateClient(cfg.Supabase.BaseURL, cfg.Supabase.AnonKey),
	}
}

func (s *supabaseAuth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.client.Auth.SignIn(ctx, supa.UserCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("登录失败，请检查邮箱和密码 / Check your email and password").
			Mark(ierr.ErrInvalidCredentials)
	}

	return &Session{
		UserID:      user.User.ID,
		Email:       user.User.Email,
		AccessToken: user.AccessToken,
	}, nil
}

func (s *supabaseAuth) CurrentUser(ctx context.Context, token string) (*Session, error) {
	user, err := s.client.Auth.User(ctx, token)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Session expired, sign in again").
			Mark(ierr.ErrPermissionDenied)
	}

	return &Session{
		UserID:      user.ID,
		Email:       user.Email,
		AccessToken: token,
	}, nil
}

func (s *supabaseAuth) SignOut(ctx context.Context, token string) error {
	if err := s.client.Auth.SignOut(ctx, token); err != nil {
		return ierr.WithError(err).
			WithHint("Sign out failed").
			Mark(ierr.ErrSystem)
	}
	return nil
}

// ValidateToken verifies the GoTrue JWT locally against the project's JWT
// secret, avoiding a network round trip per request
func (s *supabaseAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithReportableDetails(map[string]any{"alg": t.Header["alg"]}).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid or expired token").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ierr.NewError("invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, ierr.NewError("token missing user ID").
			Mark(ierr.ErrPermissionDenied)
	}

	email, _ := claims["email"].(string)
	return &Claims{UserID: userID, Email: email}, nil
}
