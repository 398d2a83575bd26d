package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lingua-backend/internal/config"
	"github.com/heartmarshall/lingua-backend/internal/transport/middleware"
	"github.com/heartmarshall/lingua-backend/internal/transport/rest"
)

// NewHandler assembles the HTTP handler tree: global middleware around the
// REST router. The returned stop func releases the rate limiter.
func NewHandler(cfg *config.Config, log *slog.Logger, infra *Infra, svcs Services) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(rest.Routes{
		Health:       rest.NewHealthHandler(infra.Pool, infra.Storage, BuildVersion()),
		Catalog:      rest.NewCatalogHandler(svcs.Catalog, log),
		Missing:      rest.NewMissingHandler(svcs.Missing, log),
		Admin:        middleware.RequireAdminToken(cfg.Admin.Token, log),
		MissingLimit: limiter.Limit(cfg.RateLimit.MissingPerMinute),
	})

	h := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
	)(router)

	return h, limiter.Stop
}

func newHTTPServer(cfg config.ServerConfig, h http.Handler, log *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down http server", slog.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
