package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"atelier/contexts/asset-ledger/garment-registry/domain/entities"
	domainerrors "atelier/contexts/asset-ledger/garment-registry/domain/errors"
	"atelier/contexts/asset-ledger/garment-registry/ports"
)

// Service exposes the composition ledger operations. Mutations require the
// smart_contract role; the material debit commits before the garment write,
// and the garment write cannot fail once input validation passed, so the
// whole mint is observed all-or-nothing.
type Service struct {
	Ledger    ports.Ledger
	Materials ports.MaterialLedger
	Access    ports.AccessControl
	// CatalogID identifies the wired material catalog inside composition
	// entries.
	CatalogID string
	Logger    *slog.Logger
}

func (s Service) MintWithMaterials(
	ctx context.Context,
	caller string,
	uri string,
	designer string,
	pairs []entities.MaterialAmount,
	recipient string,
) (entities.Garment, error) {
	logger := resolveLogger(s.Logger)

	if err := s.requireSmartContract(ctx, caller, "mint garment with materials"); err != nil {
		return entities.Garment{}, err
	}
	if err := validateMintInput(uri, recipient); err != nil {
		return entities.Garment{}, err
	}
	if len(pairs) == 0 {
		return entities.Garment{}, domainerrors.ErrEmptyComposition
	}

	// The caller's delegated balance funds the link. DebitBatch is
	// all-or-nothing, so a failing pair aborts before any garment state
	// exists.
	if err := s.Materials.DebitBatch(ctx, caller, pairs); err != nil {
		return entities.Garment{}, err
	}

	entries := make([]entities.CompositionEntry, 0, len(pairs))
	for _, pair := range pairs {
		entries = append(entries, entities.CompositionEntry{
			Catalog:    s.CatalogID,
			MaterialID: pair.MaterialID,
			Amount:     pair.Amount,
		})
	}

	garment, err := s.Ledger.MintGarment(ctx, ports.MintInput{
		URI:       uri,
		Designer:  designer,
		Recipient: recipient,
		Entries:   entries,
	})
	if err != nil {
		return entities.Garment{}, err
	}

	logger.Info("garment minted with materials",
		"event", "garment_minted",
		"module", "asset-ledger/garment-registry",
		"layer", "application",
		"caller", caller,
		"garment_id", garment.ID,
		"owner", garment.Owner,
		"material_count", len(entries),
	)
	return garment, nil
}

func (s Service) MintWithoutMaterials(
	ctx context.Context,
	caller string,
	uri string,
	designer string,
	recipient string,
) (entities.Garment, error) {
	logger := resolveLogger(s.Logger)

	if err := s.requireSmartContract(ctx, caller, "mint garment"); err != nil {
		return entities.Garment{}, err
	}
	if err := validateMintInput(uri, recipient); err != nil {
		return entities.Garment{}, err
	}

	garment, err := s.Ledger.MintGarment(ctx, ports.MintInput{
		URI:       uri,
		Designer:  designer,
		Recipient: recipient,
	})
	if err != nil {
		return entities.Garment{}, err
	}

	logger.Info("garment minted",
		"event", "garment_minted",
		"module", "asset-ledger/garment-registry",
		"layer", "application",
		"caller", caller,
		"garment_id", garment.ID,
		"owner", garment.Owner,
	)
	return garment, nil
}

func (s Service) Garment(ctx context.Context, garmentID uint64) (entities.Garment, error) {
	return s.Ledger.Garment(ctx, garmentID)
}

func (s Service) MaterialBalance(ctx context.Context, garmentID uint64, catalog string, materialID uint64) (uint64, error) {
	return s.Ledger.MaterialBalance(ctx, garmentID, catalog, materialID)
}

func (s Service) MaterialIDsOn(ctx context.Context, garmentID uint64, catalog string) ([]uint64, error) {
	return s.Ledger.MaterialIDsOn(ctx, garmentID, catalog)
}

func (s Service) requireSmartContract(ctx context.Context, caller string, operation string) error {
	ok, err := s.Access.HasRole(ctx, strings.TrimSpace(caller), ports.RoleSmartContract)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: requires role %q: %w",
			operation, ports.RoleSmartContract, domainerrors.ErrRoleRequired)
	}
	return nil
}

func validateMintInput(uri string, recipient string) error {
	if strings.TrimSpace(uri) == "" {
		return domainerrors.ErrEmptyURI
	}
	if strings.TrimSpace(recipient) == "" {
		return domainerrors.ErrEmptyRecipient
	}
	return nil
}
