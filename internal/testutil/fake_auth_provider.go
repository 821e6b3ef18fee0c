package testutil

import (
	"context"
	"sync"

	"github.com/oxygenfit/salesconsole/internal/auth"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/types"
)

// FakeAuthProvider is an auth.Provider for tests. Any non-empty email and
// password pair signs in unless a fixed credential pair is registered.
type FakeAuthProvider struct {
	mu       sync.Mutex
	email    string
	password string
	sessions map[string]auth.Session
}

func NewFakeAuthProvider() *FakeAuthProvider {
	return &FakeAuthProvider{sessions: make(map[string]auth.Session)}
}

// RequireCredentials restricts sign-in to the given pair.
func (p *FakeAuthProvider) RequireCredentials(email, password string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.email = email
	p.password = password
}

func (p *FakeAuthProvider) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ok := email != "" && password != ""
	if p.email != "" {
		ok = email == p.email && password == p.password
	}
	if !ok {
		return nil, ierr.NewError("invalid credentials").
			WithHint("登录失败，请检查邮箱和密码 / Check your email and password").
			Mark(ierr.ErrInvalidCredentials)
	}

	session := auth.Session{
		UserID:      types.DefaultUserID,
		Email:       email,
		AccessToken: "test-token-" + types.GenerateUUID(),
	}
	p.sessions[session.AccessToken] = session
	return &session, nil
}

func (p *FakeAuthProvider) CurrentUser(ctx context.Context, token string) (*auth.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, ok := p.sessions[token]
	if !ok {
		return nil, ierr.NewError("unknown session").
			WithHint("Sign in again").
			Mark(ierr.ErrPermissionDenied)
	}
	return &session, nil
}

func (p *FakeAuthProvider) SignOut(ctx context.Context, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sessions, token)
	return nil
}

func (p *FakeAuthProvider) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, ok := p.sessions[token]
	if !ok {
		return nil, ierr.NewError("invalid token").
			Mark(ierr.ErrPermissionDenied)
	}
	return &auth.Claims{UserID: session.UserID, Email: session.Email}, nil
}
