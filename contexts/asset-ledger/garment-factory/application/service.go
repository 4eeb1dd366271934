package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "atelier/contexts/asset-ledger/garment-factory/domain/errors"
	"atelier/contexts/asset-ledger/garment-factory/ports"
)

// Service is the factory facade. It gates every entry point on the minter
// role, validates input shape, and orchestrates the catalog and the registry.
// Creation events publish after the mutation committed; a publish failure is
// logged, never rolled back into the caller.
type Service struct {
	Materials ports.MaterialCreator
	Garments  ports.GarmentMinter
	Access    ports.AccessControl
	Publisher ports.CreationPublisher
	// Address is the factory's own principal: the address holding the
	// smart_contract grant and the delegated material balances.
	Address string
	Logger  *slog.Logger
}

func (s Service) CreateNewMaterial(ctx context.Context, caller string, uri string) (uint64, error) {
	ids, err := s.CreateNewMaterials(ctx, caller, []string{uri})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

func (s Service) CreateNewMaterials(ctx context.Context, caller string, uris []string) ([]uint64, error) {
	logger := resolveLogger(s.Logger)

	if err := s.requireMinter(ctx, caller, "create new materials"); err != nil {
		return nil, err
	}

	materials, err := s.Materials.CreateMaterials(ctx, caller, uris)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(materials))
	for _, material := range materials {
		ids = append(ids, material.ID)
	}
	s.publishMaterialsCreated(ctx, logger, ids)
	return ids, nil
}

func (s Service) MintGarmentWithMaterials(
	ctx context.Context,
	caller string,
	uri string,
	designer string,
	materialIDs []uint64,
	amounts []uint64,
	recipient string,
) (uint64, error) {
	logger := resolveLogger(s.Logger)

	if err := s.requireMinter(ctx, caller, "mint garment with materials"); err != nil {
		return 0, err
	}
	if len(materialIDs) != len(amounts) {
		return 0, fmt.Errorf("mint garment with materials: %d ids, %d amounts: %w",
			len(materialIDs), len(amounts), domainerrors.ErrLengthMismatch)
	}

	pairs := make([]ports.MaterialPair, 0, len(materialIDs))
	for i, id := range materialIDs {
		pairs = append(pairs, ports.MaterialPair{MaterialID: id, Amount: amounts[i]})
	}

	garment, err := s.Garments.MintWithMaterials(ctx, s.Address, uri, designer, pairs, recipient)
	if err != nil {
		return 0, err
	}

	s.publishGarmentCreated(ctx, logger, garment.ID)
	return garment.ID, nil
}

func (s Service) MintGarmentWithoutMaterials(
	ctx context.Context,
	caller string,
	uri string,
	designer string,
	recipient string,
) (uint64, error) {
	logger := resolveLogger(s.Logger)

	if err := s.requireMinter(ctx, caller, "mint garment"); err != nil {
		return 0, err
	}

	garment, err := s.Garments.MintWithoutMaterials(ctx, s.Address, uri, designer, recipient)
	if err != nil {
		return 0, err
	}

	s.publishGarmentCreated(ctx, logger, garment.ID)
	return garment.ID, nil
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

func (s Service) publishMaterialsCreated(ctx context.Context, logger *slog.Logger, ids []uint64) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.PublishMaterialsCreated(ctx, ports.ChildrenCreated{IDs: ids}); err != nil {
		logger.Warn("materials created event publish failed",
			"event", "factory_publish_failed",
			"module", "asset-ledger/garment-factory",
			"layer", "application",
			"error", err.Error(),
		)
	}
}

func (s Service) publishGarmentCreated(ctx context.Context, logger *slog.Logger, garmentID uint64) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.PublishGarmentCreated(ctx, ports.GarmentCreated{GarmentTokenID: garmentID}); err != nil {
		logger.Warn("garment created event publish failed",
			"event", "factory_publish_failed",
			"module", "asset-ledger/garment-factory",
			"layer", "application",
			"garment_id", garmentID,
			"error", err.Error(),
		)
	}
}
