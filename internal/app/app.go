// Package app wires configuration, storage, services and transport together
// and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bidfelt/searchcore/internal/adapter/postgres"
	edgeweightrepo "github.com/bidfelt/searchcore/internal/adapter/postgres/edgeweight"
	interestrepo "github.com/bidfelt/searchcore/internal/adapter/postgres/interest"
	termrepo "github.com/bidfelt/searchcore/internal/adapter/postgres/term"
	"github.com/bidfelt/searchcore/internal/config"
	"github.com/bidfelt/searchcore/internal/notify"
	interestsvc "github.com/bidfelt/searchcore/internal/service/interest"
	"github.com/bidfelt/searchcore/internal/service/learning"
	"github.com/bidfelt/searchcore/internal/service/search"
	"github.com/bidfelt/searchcore/internal/transport/middleware"
	"github.com/bidfelt/searchcore/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph and serves HTTP until the context
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	terms := termrepo.New(pool)
	edges := edgeweightrepo.New(pool)
	interests := interestrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	searchSvc := search.NewService(logger, terms, edges, cfg.Search)
	learningSvc := learning.NewService(logger, edges, terms, txManager)

	dispatcher := notify.NewLogDispatcher(logger)
	interestSvc, err := interestsvc.NewService(logger, interests, dispatcher, cfg.Interest, cfg.Notify)
	if err != nil {
		return fmt.Errorf("create interest service: %w", err)
	}
	defer interestSvc.Close()

	mux := rest.NewRouter(rest.Handlers{
		Search:   rest.NewSearchHandler(searchSvc, learningSvc, logger),
		Interest: rest.NewInterestHandler(interestSvc, logger),
		Admin:    rest.NewAdminHandler(searchSvc, interestSvc, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
