package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"atelier/contexts/identity-access/access-registry/domain/entities"
	domainerrors "atelier/contexts/identity-access/access-registry/domain/errors"
	"atelier/contexts/identity-access/access-registry/ports"
)

// Service exposes the registry operations. Grant and Revoke are gated on the
// admin role of the calling address; Has is a pure query.
type Service struct {
	Registry ports.Registry
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (s Service) Grant(ctx context.Context, caller string, address string, role entities.Role) error {
	logger := ResolveLogger(s.Logger)

	if strings.TrimSpace(address) == "" {
		return domainerrors.ErrInvalidAddress
	}
	if !entities.ValidRole(role) {
		return fmt.Errorf("grant: role %q: %w", role, domainerrors.ErrUnknownRole)
	}
	if err := s.requireAdmin(ctx, caller, "grant"); err != nil {
		return err
	}

	if err := s.Registry.Grant(ctx, entities.Grant{
		Address:   strings.TrimSpace(address),
		Role:      role,
		GrantedBy: caller,
		GrantedAt: s.now(),
	}); err != nil {
		return err
	}

	logger.Info("role granted",
		"event", "access_role_granted",
		"module", "identity-access/access-registry",
		"layer", "application",
		"caller", caller,
		"address", address,
		"role", string(role),
	)
	return nil
}

func (s Service) Revoke(ctx context.Context, caller string, address string, role entities.Role) error {
	logger := ResolveLogger(s.Logger)

	if strings.TrimSpace(address) == "" {
		return domainerrors.ErrInvalidAddress
	}
	if !entities.ValidRole(role) {
		return fmt.Errorf("revoke: role %q: %w", role, domainerrors.ErrUnknownRole)
	}
	if err := s.requireAdmin(ctx, caller, "revoke"); err != nil {
		return err
	}

	if err := s.Registry.Revoke(ctx, strings.TrimSpace(address), role); err != nil {
		return err
	}

	logger.Info("role revoked",
		"event", "access_role_revoked",
		"module", "identity-access/access-registry",
		"layer", "application",
		"caller", caller,
		"address", address,
		"role", string(role),
	)
	return nil
}

// Has reports whether the address currently holds the role.
func (s Service) Has(ctx context.Context, address string, role entities.Role) (bool, error) {
	if strings.TrimSpace(address) == "" {
		return false, nil
	}
	return s.Registry.Has(ctx, strings.TrimSpace(address), role)
}

// ListGrants returns every grant recorded for the address.
func (s Service) ListGrants(ctx context.Context, address string) ([]entities.Grant, error) {
	if strings.TrimSpace(address) == "" {
		return nil, domainerrors.ErrInvalidAddress
	}
	return s.Registry.ListGrants(ctx, strings.TrimSpace(address))
}

func (s Service) requireAdmin(ctx context.Context, caller string, operation string) error {
	ok, err := s.Registry.Has(ctx, strings.TrimSpace(caller), entities.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: requires role %q: %w", operation, entities.RoleAdmin, domainerrors.ErrRoleRequired)
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
