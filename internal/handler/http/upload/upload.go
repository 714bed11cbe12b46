// Package upload provides the HTTP handler for image uploads. The actual
// storage is delegated to the upload relay use case.
package upload

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	uploadUC "newsdesk/internal/usecase/upload"
)

type uploadResponse struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}

// Handler accepts a multipart upload with a single "file" field and
// responds with the public URL of the stored object.
type Handler struct {
	Svc    *uploadUC.Service
	Logger *slog.Logger
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.Svc.Upload(r.Context(), header.Filename, contentType, header.Size, file)
	if err != nil {
		logger := logging.WithRequestID(r.Context(), h.Logger)
		logger.Error("upload failed",
			slog.String("filename", header.Filename),
			slog.Any("error", err))
		respond.Fail(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	respond.JSON(w, http.StatusOK, uploadResponse{OK: true, URL: url})
}
