package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/handler/http/respond"
	authservice "newsdesk/internal/service/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// TokenConfig holds the signing settings for issued tokens.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// TokenHandler creates the login handler. It validates the submitted
// credentials via the AuthService and issues a signed HS256 token with a
// fixed expiry. Tokens carry no revocation state; expiry is the only
// invalidation path.
func TokenHandler(authService *authservice.AuthService, cfg TokenConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			respond.Fail(w, http.StatusBadRequest, "invalid request body")
			return
		}

		creds := authservice.Credentials{
			Username: req.Username,
			Password: req.Password,
		}
		if err := authService.ValidateCredentials(r.Context(), creds); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			respond.Fail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		role, err := authService.IdentifyRole(r.Context(), req.Username)
		if err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "role_identification_failed"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			respond.Fail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  req.Username,
			"role": role,
			"iat":  now.Unix(),
			"exp":  now.Add(cfg.TTL).Unix(),
		})

		signed, err := token.SignedString(cfg.Secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()))
			respond.Fail(w, http.StatusInternalServerError, "token generation failed")
			return
		}

		logger.Info("authentication successful",
			slog.String("user", req.Username),
			slog.String("role", role),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		respond.JSON(w, http.StatusOK, tokenResponse{OK: true, Token: signed})
	}
}
