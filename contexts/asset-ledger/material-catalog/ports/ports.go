package ports

import (
	"context"

	"atelier/contexts/asset-ledger/material-catalog/domain/entities"
)

// Ledger persists material tokens and holder balances. Implementations must
// allocate ids sequentially with no gaps among committed creations and leave
// the counter untouched when any call fails.
type Ledger interface {
	// CreateMaterials allocates consecutive ids for the uris in input order.
	// All-or-nothing: a failure discards the whole batch.
	CreateMaterials(ctx context.Context, uris []string) ([]entities.Material, error)
	// Mint credits amount of the material to the holder.
	Mint(ctx context.Context, holder string, materialID uint64, amount uint64) error
	URI(ctx context.Context, materialID uint64) (string, error)
	BalanceOf(ctx context.Context, holder string, materialID uint64) (uint64, error)
	// DebitBatch validates every pair (known id, sufficient balance) before
	// applying any debit; on any failing pair nothing is debited.
	DebitBatch(ctx context.Context, holder string, pairs []entities.MaterialAmount) error
}

// AccessControl is the registry surface this service needs for its gates.
// Role names are plain strings so the catalog stays decoupled from the
// identity-access context; bootstrap bridges the two.
type AccessControl interface {
	HasRole(ctx context.Context, address string, role string) (bool, error)
}

// Role names checked by this service.
const RoleMinter = "minter"
