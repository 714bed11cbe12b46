package news

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	newsUC "newsdesk/internal/usecase/news"
)

type createResponse struct {
	OK   bool `json:"ok"`
	Item DTO  `json:"item"`
}

// CreateHandler creates a news item. It sits behind the auth middleware,
// so by the time the body is read the caller holds a valid token.
type CreateHandler struct {
	Svc    *newsUC.Service
	Logger *slog.Logger
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Fields are decoded as raw JSON values and coerced to strings, so a
	// numeric text or source does not fail the request with a type error.
	var req struct {
		Text     any `json:"text"`
		Source   any `json:"source"`
		ImageURL any `json:"imageUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Svc.Add(r.Context(), newsUC.AddInput{
		Text:     coerceString(req.Text),
		Source:   coerceString(req.Source),
		ImageURL: coerceString(req.ImageURL),
	})
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.Fail(w, http.StatusBadRequest, vErr.Error())
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger := logging.WithRequestID(r.Context(), h.Logger)
	logger.Info("news item created",
		slog.String("id", item.ID),
		slog.String("source", item.Source))

	respond.JSON(w, http.StatusCreated, createResponse{OK: true, Item: toDTO(item)})
}
