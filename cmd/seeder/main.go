// Command seeder loads catalog terms from a JSON file into the database.
// Existing terms (same normalized form and type) are left untouched, so the
// same file can be applied repeatedly. It is intended to be run offline, not
// as part of the main server.
//
// Flags:
//
//	--file     path to the JSON batch file (required)
//	--dry-run  parse and validate the file without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/bidfelt/searchcore/internal/adapter/postgres"
	termrepo "github.com/bidfelt/searchcore/internal/adapter/postgres/term"
	"github.com/bidfelt/searchcore/internal/app"
	"github.com/bidfelt/searchcore/internal/config"
	"github.com/bidfelt/searchcore/internal/domain"
	"github.com/bidfelt/searchcore/internal/service/search"
)

func main() {
	fileFlag := flag.String("file", "", "path to JSON batch file")
	dryRunFlag := flag.Bool("dry-run", false, "validate without writing to DB")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	data, err := os.ReadFile(*fileFlag)
	if err != nil {
		logger.Error("read batch file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var terms []domain.SeedTerm
	if err := json.Unmarshal(data, &terms); err != nil {
		logger.Error("parse batch file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	input := search.SeedInput{Terms: terms}
	if err := input.Validate(); err != nil {
		logger.Error("invalid batch", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRunFlag {
		logger.Info("dry run, batch is valid", slog.Int("terms", len(terms)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := search.NewService(logger, termrepo.New(pool), nil, cfg.Search)

	inserted, err := svc.SeedCatalog(ctx, input)
	if err != nil {
		logger.Error("seed catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("terms", len(terms)),
		slog.Int("inserted", inserted),
		slog.Int("skipped", len(terms)-inserted),
	)
}
