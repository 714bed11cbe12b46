// Package auth contains the framework-agnostic authentication service.
// HTTP specifics (token issuance, the bearer middleware) live in the
// handler layer; this layer only knows about credentials and providers.
package auth

import "context"

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// AuthProvider defines the interface for authentication providers.
// The single-admin deployment uses a static provider backed by
// configuration; the interface leaves room for other mechanisms.
type AuthProvider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// IdentifyRole returns the role for a validated username.
	IdentifyRole(ctx context.Context, username string) (string, error)

	// Name returns the name of this provider.
	Name() string
}

// AuthService handles authentication business logic.
type AuthService struct {
	provider AuthProvider
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider AuthProvider) *AuthService {
	return &AuthService{provider: provider}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *AuthService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// IdentifyRole returns the role claim to embed for a validated user.
func (s *AuthService) IdentifyRole(ctx context.Context, username string) (string, error) {
	return s.provider.IdentifyRole(ctx, username)
}

// Provider returns the current authentication provider.
func (s *AuthService) Provider() AuthProvider {
	return s.provider
}
