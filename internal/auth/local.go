package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/oxygenfit/salesconsole/internal/config"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/types"
)

const localTokenTTL = 12 * time.Hour

// localAuth is the development fallback used when no Supabase project is
// configured. Any non-empty credentials sign in as the default user; the
// issued token is a real HMAC JWT so the middleware path stays identical.
type localAuth struct {
	secret []byte
}

func NewLocalAuth(cfg *config.Configuration) Provider {
	secret := cfg.Supabase.JWTSecret
	if secret == "" {
		secret = "oxygenfit-local-dev"
	}
	return &localAuth{secret: []byte(secret)}
}

func (l *localAuth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ierr.NewError("missing credentials").
			WithHint("登录失败，请检查邮箱和密码 / Check your email and password").
			Mark(ierr.ErrInvalidCredentials)
	}

	now := time.Now().UTC()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   types.DefaultUserID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(localTokenTTL).Unix(),
	}).SignedString(l.secret)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to issue session token").
			Mark(ierr.ErrSystem)
	}

	return &Session{
		UserID:      types.DefaultUserID,
		Email:       email,
		AccessToken: token,
	}, nil
}

func (l *localAuth) CurrentUser(ctx context.Context, token string) (*Session, error) {
	claims, err := l.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Session{
		UserID:      claims.UserID,
		Email:       claims.Email,
		AccessToken: token,
	}, nil
}

func (l *localAuth) SignOut(ctx context.Context, token string) error {
	// stateless tokens, nothing to revoke
	return nil
}

func (l *localAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithReportableDetails(map[string]any{"alg": t.Header["alg"]}).
				Mark(ierr.ErrPermissionDenied)
		}
		return l.secret, nil
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

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, ierr.NewError("token missing user ID").
			Mark(ierr.ErrPermissionDenied)
	}
	email, _ := claims["email"].(string)
	return &Claims{UserID: userID, Email: email}, nil
}
