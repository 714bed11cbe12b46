package news

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/respond"
	newsUC "newsdesk/internal/usecase/news"
)

// Register wires the news routes onto the mux. The listing is public;
// creation requires a bearer token. Any other method on /news is an
// unmatched route, not a method error.
func Register(mux *http.ServeMux, svc *newsUC.Service, jwtSecret []byte, logger *slog.Logger) {
	list := ListHandler{Svc: svc, Logger: logger}
	create := auth.RequireAuth(jwtSecret, CreateHandler{Svc: svc, Logger: logger})

	mux.HandleFunc("/news", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list.ServeHTTP(w, r)
		case http.MethodPost:
			create.ServeHTTP(w, r)
		default:
			respond.Fail(w, http.StatusNotFound, "Not found")
		}
	})
}
