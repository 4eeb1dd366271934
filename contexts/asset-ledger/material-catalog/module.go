package materialcatalog

import (
	"log/slog"

	httpadapter "atelier/contexts/asset-ledger/material-catalog/adapters/http"
	"atelier/contexts/asset-ledger/material-catalog/adapters/memory"
	"atelier/contexts/asset-ledger/material-catalog/application"
	"atelier/contexts/asset-ledger/material-catalog/ports"
)

// Module is the material-catalog composition root exposed to runtime wiring.
type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Ledger ports.Ledger
	Access ports.AccessControl
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Ledger: deps.Ledger,
		Access: deps.Access,
		Logger: deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

// NewInMemoryModule builds a development/testing module with the memory ledger.
func NewInMemoryModule(access ports.AccessControl, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Ledger: store,
		Access: access,
		Logger: logger,
	})
	module.Store = store
	return module
}
