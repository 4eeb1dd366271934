package accessregistry

import (
	"log/slog"

	httpadapter "atelier/contexts/identity-access/access-registry/adapters/http"
	"atelier/contexts/identity-access/access-registry/adapters/memory"
	"atelier/contexts/identity-access/access-registry/application"
	"atelier/contexts/identity-access/access-registry/ports"
)

// Module is the access-registry composition root exposed to runtime wiring.
type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Registry ports.Registry
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Registry: deps.Registry,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

// NewInMemoryModule builds a development/testing module seeded with one admin.
func NewInMemoryModule(seedAdmin string, logger *slog.Logger) Module {
	store := memory.NewStore(seedAdmin)
	module := NewModule(Dependencies{
		Registry: store,
		Clock:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
