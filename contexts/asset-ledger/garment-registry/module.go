package garmentregistry

import (
	"log/slog"

	httpadapter "atelier/contexts/asset-ledger/garment-registry/adapters/http"
	"atelier/contexts/asset-ledger/garment-registry/adapters/memory"
	"atelier/contexts/asset-ledger/garment-registry/application"
	"atelier/contexts/asset-ledger/garment-registry/ports"
)

// Module is the garment-registry composition root exposed to runtime wiring.
type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Ledger    ports.Ledger
	Materials ports.MaterialLedger
	Access    ports.AccessControl
	CatalogID string
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Ledger:    deps.Ledger,
		Materials: deps.Materials,
		Access:    deps.Access,
		CatalogID: deps.CatalogID,
		Logger:    deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

// NewInMemoryModule builds a development/testing module with the memory ledger.
func NewInMemoryModule(
	materials ports.MaterialLedger,
	access ports.AccessControl,
	catalogID string,
	logger *slog.Logger,
) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Ledger:    store,
		Materials: materials,
		Access:    access,
		CatalogID: catalogID,
		Logger:    logger,
	})
	module.Store = store
	return module
}
