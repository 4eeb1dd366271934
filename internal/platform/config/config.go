package config

import (
	"os"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// SeedAdminAddress is the address granted admin on a fresh registry.
	SeedAdminAddress string
	// FactoryAddress is the principal the garment factory uses when calling
	// the garment registry; it must hold the smart_contract role.
	FactoryAddress string
	// MaterialCatalogID identifies the material catalog inside composition
	// entries (the "child contract" axis of the composition ledger).
	MaterialCatalogID string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "atelier"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	seedAdmin := strings.TrimSpace(os.Getenv("SEED_ADMIN_ADDRESS"))
	if seedAdmin == "" {
		seedAdmin = "admin-root"
	}

	factory := strings.TrimSpace(os.Getenv("FACTORY_ADDRESS"))
	if factory == "" {
		factory = "garment-factory"
	}

	catalogID := strings.TrimSpace(os.Getenv("MATERIAL_CATALOG_ID"))
	if catalogID == "" {
		catalogID = "material-catalog"
	}

	return Config{
		ServiceName:       service,
		HTTPPort:          port,
		PostgresDSN:       os.Getenv("POSTGRES_DSN"),
		SeedAdminAddress:  seedAdmin,
		FactoryAddress:    factory,
		MaterialCatalogID: catalogID,
	}, nil
}
