package garmentfactory

import (
	"log/slog"

	httpadapter "atelier/contexts/asset-ledger/garment-factory/adapters/http"
	"atelier/contexts/asset-ledger/garment-factory/application"
	"atelier/contexts/asset-ledger/garment-factory/ports"
)

// Module is the garment-factory composition root exposed to runtime wiring.
type Module struct {
	Service application.Service
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Materials ports.MaterialCreator
	Garments  ports.GarmentMinter
	Access    ports.AccessControl
	Publisher ports.CreationPublisher
	Address   string
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Materials: deps.Materials,
		Garments:  deps.Garments,
		Access:    deps.Access,
		Publisher: deps.Publisher,
		Address:   deps.Address,
		Logger:    deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}
