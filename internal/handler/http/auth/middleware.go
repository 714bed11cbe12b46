package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsdesk/internal/handler/http/respond"
)

type ctxKey string

const ctxUser ctxKey = "user"

// Claims are the token claims the middleware places on the request context.
type Claims struct {
	Subject string
	Role    string
}

// UserFromContext returns the claims of the authenticated caller, if any.
func UserFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(ctxUser).(Claims)
	return c, ok
}

// RequireAuth guards a handler with a bearer-token check.
//
// Only the Authorization header with the Bearer scheme is accepted. A
// missing header, a different scheme, a bad signature, a malformed token
// and an expired token are all normalized to a single 401 rejection; the
// distinction is deliberately not surfaced to the caller. The check runs
// before any body processing in the wrapped handler.
func RequireAuth(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := validateBearer(r.Header.Get("Authorization"), secret)
		if err != nil {
			respond.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUser, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validateBearer(authz string, secret []byte) (Claims, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return Claims{}, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return Claims{}, errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return Claims{}, errors.New("invalid sub claim")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Claims{}, errors.New("invalid role claim")
	}
	return Claims{Subject: sub, Role: role}, nil
}
