// Package auth provides HTTP-level authentication: the login endpoint
// that issues signed tokens and the middleware that guards mutating
// endpoints with a bearer-token check.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	authservice "newsdesk/internal/service/auth"
)

// ErrInvalidCredentials is returned when a username/password pair does not
// match the configured admin identity.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RoleAdmin is the single role the system issues. Token validity is the
// only check the middleware enforces; no finer-grained permissions exist.
const RoleAdmin = "admin"

// StaticAuthProvider validates credentials against the one statically
// configured admin identity. Plain configuration values, no hashing and
// no per-user store: this is configuration, not data.
type StaticAuthProvider struct {
	adminUser     string
	adminPassword string
}

// NewStaticAuthProvider creates a provider for the given admin identity.
func NewStaticAuthProvider(adminUser, adminPassword string) *StaticAuthProvider {
	return &StaticAuthProvider{adminUser: adminUser, adminPassword: adminPassword}
}

// ValidateCredentials compares the submitted pair against the configured
// admin identity. Constant-time comparison prevents timing attacks.
func (p *StaticAuthProvider) ValidateCredentials(_ context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return ErrInvalidCredentials
	}

	userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(p.adminUser)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(p.adminPassword)) == 1
	if !userMatch || !passMatch {
		return ErrInvalidCredentials
	}
	return nil
}

// IdentifyRole returns the role for a validated username.
func (p *StaticAuthProvider) IdentifyRole(_ context.Context, username string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(p.adminUser)) == 1 {
		return RoleAdmin, nil
	}
	return "", ErrInvalidCredentials
}

// Name returns the provider name.
func (p *StaticAuthProvider) Name() string {
	return "static"
}

var _ authservice.AuthProvider = (*StaticAuthProvider)(nil)
