package http

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
)

type healthResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// HealthHandler answers health check requests. The service has no hard
// runtime dependency (the durable store is allowed to be unavailable), so
// a running process is a healthy process.
type HealthHandler struct{}

// ServeHTTP reports the service as up.
func (HealthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, healthResponse{OK: true, Status: "up"})
}

// NotFoundHandler answers every unmatched route with the JSON failure envelope.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond.Fail(w, http.StatusNotFound, "Not found")
	})
}
