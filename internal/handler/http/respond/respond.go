// Package respond provides utilities for sending HTTP responses in JSON format.
// Every response carries a top-level "ok" boolean; failures carry an "error"
// message. Internal errors are sanitized to avoid leaking details to users.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so the error can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Fail writes a failure envelope {"ok":false,"error":msg} with the given status.
func Fail(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]any{"ok": false, "error": msg})
}

// SafeError sanitizes error messages before returning them to users.
// Validation-style errors are returned as-is; anything else is logged and
// replaced with a generic message. 5xx responses are always treated as
// internal.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()

	safeErrors := []string{
		"required",
		"invalid",
		"not found",
		"must be",
		"cannot be",
		"too large",
	}

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}
	if code >= 500 {
		isSafe = false
	}

	if !isSafe {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.Any("error", err))
		msg = "internal server error"
	}
	Fail(w, code, msg)
}
