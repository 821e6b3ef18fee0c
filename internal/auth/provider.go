package auth

import (
	"context"

	"github.com/oxygenfit/salesconsole/internal/config"
)

// Session is an authenticated sales-rep session as reported by the
// identity provider
type Session struct {
	UserID      string
	Email       string
	AccessToken string
}

// Claims are the verified fields extracted from an access token
type Claims struct {
	UserID string
	Email  string
}

// Provider abstracts the identity backend. The console only needs
// password sign-in and token introspection; account management stays in
// the provider's own dashboard.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	CurrentUser(ctx context.Context, token string) (*Session, error)
	SignOut(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

// NewProvider selects the identity backend from config: Supabase when the
// project is configured, otherwise the local development provider.
func NewProvider(cfg *config.Configuration) Provider {
	if cfg.Supabase.Configured() {
		return NewSupabaseAuth(cfg)
	}
	return NewLocalAuth(cfg)
}
