package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"atelier/contexts/asset-ledger/material-catalog/domain/entities"
	domainerrors "atelier/contexts/asset-ledger/material-catalog/domain/errors"
	"atelier/contexts/asset-ledger/material-catalog/ports"
)

// Service exposes the material catalog operations. Creation and minting are
// gated on the minter role; every gate runs before any id allocation so a
// rejected call never moves the counter.
type Service struct {
	Ledger ports.Ledger
	Access ports.AccessControl
	Logger *slog.Logger
}

func (s Service) CreateMaterial(ctx context.Context, caller string, uri string) (uint64, error) {
	materials, err := s.CreateMaterials(ctx, caller, []string{uri})
	if err != nil {
		return 0, err
	}
	return materials[0].ID, nil
}

func (s Service) CreateMaterials(ctx context.Context, caller string, uris []string) ([]entities.Material, error) {
	logger := resolveLogger(s.Logger)

	if err := s.requireMinter(ctx, caller, "create materials"); err != nil {
		return nil, err
	}
	if len(uris) == 0 {
		return nil, domainerrors.ErrEmptyBatch
	}
	for _, uri := range uris {
		if strings.TrimSpace(uri) == "" {
			return nil, domainerrors.ErrEmptyURI
		}
	}

	materials, err := s.Ledger.CreateMaterials(ctx, uris)
	if err != nil {
		return nil, err
	}

	logger.Info("materials created",
		"event", "materials_created",
		"module", "asset-ledger/material-catalog",
		"layer", "application",
		"caller", caller,
		"count", len(materials),
		"first_id", materials[0].ID,
	)
	return materials, nil
}

func (s Service) Mint(ctx context.Context, caller string, holder string, materialID uint64, amount uint64) error {
	logger := resolveLogger(s.Logger)

	if err := s.requireMinter(ctx, caller, "mint material"); err != nil {
		return err
	}
	if strings.TrimSpace(holder) == "" {
		return domainerrors.ErrEmptyHolder
	}
	if amount == 0 {
		return domainerrors.ErrInvalidAmount
	}

	if err := s.Ledger.Mint(ctx, holder, materialID, amount); err != nil {
		return err
	}

	logger.Info("material minted",
		"event", "material_minted",
		"module", "asset-ledger/material-catalog",
		"layer", "application",
		"caller", caller,
		"holder", holder,
		"material_id", materialID,
		"amount", amount,
	)
	return nil
}

func (s Service) URI(ctx context.Context, materialID uint64) (string, error) {
	return s.Ledger.URI(ctx, materialID)
}

func (s Service) BalanceOf(ctx context.Context, holder string, materialID uint64) (uint64, error) {
	return s.Ledger.BalanceOf(ctx, holder, materialID)
}

func (s Service) requireMinter(ctx context.Context, caller string, operation string) error {
	ok, err := s.Access.HasRole(ctx, strings.TrimSpace(caller), ports.RoleMinter)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: requires role %q: %w", operation, ports.RoleMinter, domainerrors.ErrRoleRequired)
	}
	return nil
}
