package wiring

import (
	"context"
	"log/slog"

	accessregistry "atelier/contexts/identity-access/access-registry"
	accessentities "atelier/contexts/identity-access/access-registry/domain/entities"
	accesspostgres "atelier/contexts/identity-access/access-registry/adapters/postgres"

	garmentfactory "atelier/contexts/asset-ledger/garment-factory"
	factoryevents "atelier/contexts/asset-ledger/garment-factory/adapters/events"
	factoryports "atelier/contexts/asset-ledger/garment-factory/ports"

	garmentregistry "atelier/contexts/asset-ledger/garment-registry"
	garmentpostgres "atelier/contexts/asset-ledger/garment-registry/adapters/postgres"
	garmententities "atelier/contexts/asset-ledger/garment-registry/domain/entities"

	materialcatalog "atelier/contexts/asset-ledger/material-catalog"
	materialentities "atelier/contexts/asset-ledger/material-catalog/domain/entities"
	materialpostgres "atelier/contexts/asset-ledger/material-catalog/adapters/postgres"
	materialports "atelier/contexts/asset-ledger/material-catalog/ports"

	"atelier/internal/platform/config"
	"atelier/internal/platform/messaging"

	"gorm.io/gorm"
)

// Modules bundles the four wired composition roots plus the event bus.
type Modules struct {
	Access    accessregistry.Module
	Materials materialcatalog.Module
	Garments  garmentregistry.Module
	Factory   garmentfactory.Module
	Bus       *messaging.Bus
}

// NewInMemory assembles the whole ledger on memory adapters. The seed admin
// and the factory's smart_contract grant are written straight into the
// registry store; everything after that goes through the gated operations.
func NewInMemory(cfg config.Config, logger *slog.Logger) Modules {
	bus := messaging.NewBus(logger)

	access := accessregistry.NewInMemoryModule(cfg.SeedAdminAddress, logger)
	seedFactoryGrant(access.Store, cfg)

	accessBridge := AccessBridge{Service: access.Service}
	materials := materialcatalog.NewInMemoryModule(accessBridge, logger)
	garments := garmentregistry.NewInMemoryModule(
		MaterialDebitBridge{Ledger: materials.Store},
		accessBridge,
		cfg.MaterialCatalogID,
		logger,
	)
	factory := garmentfactory.NewModule(garmentfactory.Dependencies{
		Materials: MaterialCreatorBridge{Service: materials.Service},
		Garments:  GarmentMinterBridge{Service: garments.Service},
		Access:    accessBridge,
		Publisher: factoryevents.NewPublisher(bus, logger),
		Address:   cfg.FactoryAddress,
		Logger:    logger,
	})

	return Modules{
		Access:    access,
		Materials: materials,
		Garments:  garments,
		Factory:   factory,
		Bus:       bus,
	}
}

// NewPostgres assembles the ledger on gorm repositories sharing one handle.
func NewPostgres(db *gorm.DB, cfg config.Config, logger *slog.Logger) Modules {
	bus := messaging.NewBus(logger)

	accessRepo := accesspostgres.NewRepository(db, logger)
	access := accessregistry.NewModule(accessregistry.Dependencies{
		Registry: accessRepo,
		Clock:    accesspostgres.SystemClock{},
		Logger:   logger,
	})
	seedFactoryGrant(accessRepo, cfg)

	accessBridge := AccessBridge{Service: access.Service}
	materialRepo := materialpostgres.NewRepository(db, logger)
	materials := materialcatalog.NewModule(materialcatalog.Dependencies{
		Ledger: materialRepo,
		Access: accessBridge,
		Logger: logger,
	})
	garmentRepo := garmentpostgres.NewRepository(db, logger)
	garments := garmentregistry.NewModule(garmentregistry.Dependencies{
		Ledger:    garmentRepo,
		Materials: MaterialDebitBridge{Ledger: materialRepo},
		Access:    accessBridge,
		CatalogID: cfg.MaterialCatalogID,
		Logger:    logger,
	})
	factory := garmentfactory.NewModule(garmentfactory.Dependencies{
		Materials: MaterialCreatorBridge{Service: materials.Service},
		Garments:  GarmentMinterBridge{Service: garments.Service},
		Access:    accessBridge,
		Publisher: factoryevents.NewPublisher(bus, logger),
		Address:   cfg.FactoryAddress,
		Logger:    logger,
	})

	return Modules{
		Access:    access,
		Materials: materials,
		Garments:  garments,
		Factory:   factory,
		Bus:       bus,
	}
}

type grantWriter interface {
	Grant(ctx context.Context, grant accessentities.Grant) error
}

func seedFactoryGrant(registry grantWriter, cfg config.Config) {
	_ = registry.Grant(context.Background(), accessentities.Grant{
		Address:   cfg.FactoryAddress,
		Role:      accessentities.RoleSmartContract,
		GrantedBy: cfg.SeedAdminAddress,
	})
}

// AccessBridge adapts the access-registry service to the string-typed
// role-check ports of the asset-ledger services.
type AccessBridge struct {
	Service interface {
		Has(ctx context.Context, address string, role accessentities.Role) (bool, error)
	}
}

func (b AccessBridge) HasRole(ctx context.Context, address string, role string) (bool, error) {
	return b.Service.Has(ctx, address, accessentities.Role(role))
}

// MaterialDebitBridge adapts the material ledger's atomic debit to the
// garment registry's port.
type MaterialDebitBridge struct {
	Ledger materialports.Ledger
}

func (b MaterialDebitBridge) DebitBatch(ctx context.Context, holder string, pairs []garmententities.MaterialAmount) error {
	converted := make([]materialentities.MaterialAmount, 0, len(pairs))
	for _, pair := range pairs {
		converted = append(converted, materialentities.MaterialAmount{
			MaterialID: pair.MaterialID,
			Amount:     pair.Amount,
		})
	}
	return b.Ledger.DebitBatch(ctx, holder, converted)
}

// MaterialCreatorBridge adapts the catalog service to the factory's port.
type MaterialCreatorBridge struct {
	Service interface {
		CreateMaterials(ctx context.Context, caller string, uris []string) ([]materialentities.Material, error)
	}
}

func (b MaterialCreatorBridge) CreateMaterials(ctx context.Context, caller string, uris []string) ([]factoryports.Material, error) {
	materials, err := b.Service.CreateMaterials(ctx, caller, uris)
	if err != nil {
		return nil, err
	}
	converted := make([]factoryports.Material, 0, len(materials))
	for _, material := range materials {
		converted = append(converted, factoryports.Material{ID: material.ID, URI: material.URI})
	}
	return converted, nil
}

// GarmentMinterBridge adapts the garment registry service to the factory's port.
type GarmentMinterBridge struct {
	Service interface {
		MintWithMaterials(ctx context.Context, caller string, uri string, designer string, pairs []garmententities.MaterialAmount, recipient string) (garmententities.Garment, error)
		MintWithoutMaterials(ctx context.Context, caller string, uri string, designer string, recipient string) (garmententities.Garment, error)
	}
}

func (b GarmentMinterBridge) MintWithMaterials(
	ctx context.Context,
	caller string,
	uri string,
	designer string,
	pairs []factoryports.MaterialPair,
	recipient string,
) (factoryports.Garment, error) {
	converted := make([]garmententities.MaterialAmount, 0, len(pairs))
	for _, pair := range pairs {
		converted = append(converted, garmententities.MaterialAmount{
			MaterialID: pair.MaterialID,
			Amount:     pair.Amount,
		})
	}
	garment, err := b.Service.MintWithMaterials(ctx, caller, uri, designer, converted, recipient)
	if err != nil {
		return factoryports.Garment{}, err
	}
	return toFactoryGarment(garment), nil
}

func (b GarmentMinterBridge) MintWithoutMaterials(
	ctx context.Context,
	caller string,
	uri string,
	designer string,
	recipient string,
) (factoryports.Garment, error) {
	garment, err := b.Service.MintWithoutMaterials(ctx, caller, uri, designer, recipient)
	if err != nil {
		return factoryports.Garment{}, err
	}
	return toFactoryGarment(garment), nil
}

func toFactoryGarment(garment garmententities.Garment) factoryports.Garment {
	return factoryports.Garment{
		ID:       garment.ID,
		Owner:    garment.Owner,
		Designer: garment.Designer,
		URI:      garment.URI,
	}
}
