package ports

import (
	"context"
	"time"

	"atelier/contexts/identity-access/access-registry/domain/entities"
)

// Registry persists role grants. Grant and Revoke are idempotent; Revoke
// must refuse to remove the last remaining admin grant.
type Registry interface {
	Grant(ctx context.Context, grant entities.Grant) error
	Revoke(ctx context.Context, address string, role entities.Role) error
	Has(ctx context.Context, address string, role entities.Role) (bool, error)
	ListGrants(ctx context.Context, address string) ([]entities.Grant, error)
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}
