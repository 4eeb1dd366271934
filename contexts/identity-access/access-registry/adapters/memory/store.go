package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"atelier/contexts/identity-access/access-registry/domain/entities"
	domainerrors "atelier/contexts/identity-access/access-registry/domain/errors"
)

// Store is an in-memory registry adapter. Every mutation runs under one lock,
// so grants observe the single-writer discipline of the ledger.
type Store struct {
	mu     sync.RWMutex
	grants map[string]map[entities.Role]entities.Grant
}

// NewStore builds a registry seeded with one admin grant. The seed keeps the
// zero-admin invariant satisfiable from the first call.
func NewStore(seedAdmin string) *Store {
	store := &Store{
		grants: make(map[string]map[entities.Role]entities.Grant),
	}
	if seedAdmin != "" {
		store.grants[seedAdmin] = map[entities.Role]entities.Grant{
			entities.RoleAdmin: {
				Address:   seedAdmin,
				Role:      entities.RoleAdmin,
				GrantedBy: seedAdmin,
				GrantedAt: time.Now().UTC(),
			},
		}
	}
	return store
}

func (s *Store) Grant(_ context.Context, grant entities.Grant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles, ok := s.grants[grant.Address]
	if !ok {
		roles = make(map[entities.Role]entities.Grant)
		s.grants[grant.Address] = roles
	}
	if _, exists := roles[grant.Role]; exists {
		return nil
	}
	roles[grant.Role] = grant
	return nil
}

func (s *Store) Revoke(_ context.Context, address string, role entities.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles, ok := s.grants[address]
	if !ok {
		return nil
	}
	if _, exists := roles[role]; !exists {
		return nil
	}
	if role == entities.RoleAdmin && s.adminCountLocked() == 1 {
		return domainerrors.ErrLastAdmin
	}
	delete(roles, role)
	if len(roles) == 0 {
		delete(s.grants, address)
	}
	return nil
}

func (s *Store) Has(_ context.Context, address string, role entities.Role) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles, ok := s.grants[address]
	if !ok {
		return false, nil
	}
	_, exists := roles[role]
	return exists, nil
}

func (s *Store) ListGrants(_ context.Context, address string) ([]entities.Grant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles := s.grants[address]
	items := make([]entities.Grant, 0, len(roles))
	for _, grant := range roles {
		items = append(items, grant)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Role < items[j].Role })
	return items, nil
}

// Now satisfies the clock port for in-memory wiring.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) adminCountLocked() int {
	count := 0
	for _, roles := range s.grants {
		if _, ok := roles[entities.RoleAdmin]; ok {
			count++
		}
	}
	return count
}
