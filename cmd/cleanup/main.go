// Command cleanup flips interest requests past their retention horizon from
// pending to expired. Matching already skips overdue rows, so this only keeps
// the table tidy. It is intended to be invoked by an external cron job, not
// as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/bidfelt/searchcore/internal/adapter/postgres"
	interestrepo "github.com/bidfelt/searchcore/internal/adapter/postgres/interest"
	"github.com/bidfelt/searchcore/internal/app"
	"github.com/bidfelt/searchcore/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := interestrepo.New(pool)

	expired, err := repo.ExpireOverdue(ctx, time.Now())
	if err != nil {
		logger.Error("expire overdue requests", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expiry sweep completed", slog.Int64("expired", expired))
}
