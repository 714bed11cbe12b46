package news

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	newsUC "newsdesk/internal/usecase/news"
)

type listResponse struct {
	OK   bool  `json:"ok"`
	News []DTO `json:"news"`
}

// ListHandler serves the public merged news listing, newest first.
type ListHandler struct {
	Svc    *newsUC.Service
	Logger *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items := h.Svc.ListAll(r.Context())

	dtos := make([]DTO, 0, len(items))
	for _, it := range items {
		dtos = append(dtos, toDTO(it))
	}

	logger := logging.WithRequestID(r.Context(), h.Logger)
	logger.Debug("news listed", slog.Int("count", len(dtos)))

	respond.JSON(w, http.StatusOK, listResponse{OK: true, News: dtos})
}
