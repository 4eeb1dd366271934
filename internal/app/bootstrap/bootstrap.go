package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	factoryevents "atelier/contexts/asset-ledger/garment-factory/adapters/events"
	factoryworkers "atelier/contexts/asset-ledger/garment-factory/application/workers"
	"atelier/internal/app/wiring"
	"atelier/internal/platform/config"
	"atelier/internal/platform/db"
	"atelier/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	modules  wiring.Modules
	feed     *factoryworkers.CreationFeed
	postgres *db.Postgres
	logger   *slog.Logger
}

// BuildAPI assembles the HTTP process. With POSTGRES_DSN set the ledger runs
// on gorm repositories; otherwise it falls back to memory adapters, which is
// how local development and tests run.
func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	var (
		pg      *db.Postgres
		modules wiring.Modules
	)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		modules = wiring.NewInMemory(cfg, logger)
	} else {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		modules = wiring.NewPostgres(pg.DB, cfg, logger)
	}

	server := httpserver.New(
		modules.Access,
		modules.Materials,
		modules.Garments,
		modules.Factory,
		cfg.MaterialCatalogID,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

// BuildWorker assembles the creation-feed consumer process. It shares the
// in-process bus with the API wiring, so it is only meaningful when run
// inside the same process as an API app built from the same modules.
func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")

	var (
		pg      *db.Postgres
		modules wiring.Modules
	)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		modules = wiring.NewInMemory(cfg, logger)
	} else {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		modules = wiring.NewPostgres(pg.DB, cfg, logger)
	}

	return &WorkerApp{
		modules:  modules,
		feed:     &factoryworkers.CreationFeed{Capacity: 256, Logger: logger},
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.modules.Bus.Subscribe(ctx, factoryevents.Topic, "creation-feed-cg", w.feed.Handle); err != nil {
		return err
	}

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"topic", factoryevents.Topic,
	)

	<-ctx.Done()
	return nil
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
