package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdesk/internal/config"
	hhttp "newsdesk/internal/handler/http"
	hauth "newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/middleware"
	hnews "newsdesk/internal/handler/http/news"
	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/handler/http/respond"
	hupload "newsdesk/internal/handler/http/upload"
	"newsdesk/internal/infra/blob/minio"
	filestore "newsdesk/internal/infra/store/file"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/tracing"
	authservice "newsdesk/internal/service/auth"
	newsUC "newsdesk/internal/usecase/news"
	uploadUC "newsdesk/internal/usecase/upload"
)

func main() {
	cfg := config.MustLoad()

	logger := logging.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	newsSvc := newsUC.NewService(filestore.New(cfg.News.FilePath), logger)
	uploadSvc := uploadUC.NewService(initBlobStore(cfg, logger), logger)

	handler := applyMiddleware(cfg, logger, setupRoutes(cfg, logger, newsSvc, uploadSvc))

	runServer(cfg, logger, handler)
}

// initBlobStore connects the upload relay to MinIO/S3 when configured.
// Without an endpoint the relay stays disabled and /upload reports failure;
// a configured but unreachable store is a startup error.
func initBlobStore(cfg *config.Config, logger *slog.Logger) uploadUC.BlobStore {
	if cfg.S3.Endpoint == "" {
		logger.Warn("blob store not configured, uploads disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := minio.New(ctx, cfg.S3)
	if err != nil {
		logger.Error("failed to initialize blob store", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("blob store connected",
		slog.String("endpoint", cfg.S3.Endpoint),
		slog.String("bucket", cfg.S3.Bucket))
	return store
}

// setupRoutes registers all HTTP routes. The news listing, health check
// and metrics are public; news creation and uploads require a bearer token.
// Unmatched paths and methods all answer with the 404 failure envelope.
func setupRoutes(cfg *config.Config, logger *slog.Logger, newsSvc *newsUC.Service, uploadSvc *uploadUC.Service) *http.ServeMux {
	secret := []byte(cfg.Auth.JWTSecret)

	provider := hauth.NewStaticAuthProvider(cfg.Auth.AdminUser, cfg.Auth.AdminPassword)
	authSvc := authservice.NewAuthService(provider)

	mux := http.NewServeMux()
	mux.Handle("/health", methodGate(http.MethodGet, hhttp.HealthHandler{}))
	mux.Handle("/login", methodGate(http.MethodPost, hauth.TokenHandler(authSvc, hauth.TokenConfig{
		Secret: secret,
		TTL:    cfg.Auth.TokenTTL,
	})))
	mux.Handle("/metrics", methodGate(http.MethodGet, hhttp.MetricsHandler()))

	hnews.Register(mux, newsSvc, secret, logger)

	mux.Handle("/upload", methodGate(http.MethodPost,
		hauth.RequireAuth(secret, hupload.Handler{Svc: uploadSvc, Logger: logger})))

	mux.Handle("/", hhttp.NotFoundHandler())
	return mux
}

// methodGate rejects every method other than the given one with the same
// 404 envelope unmatched paths get.
func methodGate(allowed string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != allowed {
			respond.Fail(w, http.StatusNotFound, "Not found")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → Request ID → Tracing → Recovery →
// Logging → Body Limit → Metrics. CORS sits outermost so preflight
// requests are answered before anything else runs.
func applyMiddleware(cfg *config.Config, logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: cfg.CORS.AllowedHeaders,
	})(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(cfg *config.Config, logger *slog.Logger, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
