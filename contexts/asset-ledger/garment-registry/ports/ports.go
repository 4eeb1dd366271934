package ports

import (
	"context"

	"atelier/contexts/asset-ledger/garment-registry/domain/entities"
)

// MintInput carries everything a garment creation needs. Entries may be
// empty for a plain mint.
type MintInput struct {
	URI       string
	Designer  string
	Recipient string
	Entries   []entities.CompositionEntry
}

// Ledger persists garment tokens and their composition. Ids are sequential
// and gap-free among committed mints; MintGarment runs after all validation
// and debits succeeded, so it must not fail on valid input.
type Ledger interface {
	MintGarment(ctx context.Context, input MintInput) (entities.Garment, error)
	Garment(ctx context.Context, garmentID uint64) (entities.Garment, error)
	// MaterialBalance returns the linked quantity, 0 when unset.
	MaterialBalance(ctx context.Context, garmentID uint64, catalog string, materialID uint64) (uint64, error)
	// MaterialIDsOn returns a fresh snapshot of linked material ids in
	// mint-time link order, nonzero quantities only.
	MaterialIDsOn(ctx context.Context, garmentID uint64, catalog string) ([]uint64, error)
}

// MaterialLedger is the catalog surface this service needs: an atomic
// all-or-nothing debit of the caller's delegated balances.
type MaterialLedger interface {
	DebitBatch(ctx context.Context, holder string, pairs []entities.MaterialAmount) error
}

// AccessControl is the registry surface this service needs for its gate.
type AccessControl interface {
	HasRole(ctx context.Context, address string, role string) (bool, error)
}

// RoleSmartContract marks the trusted orchestrator; it is the only role the
// ledger's mutating entry points accept.
const RoleSmartContract = "smart_contract"
