package memory

import (
	"context"
	"fmt"
	"sync"

	"atelier/contexts/asset-ledger/material-catalog/domain/entities"
	domainerrors "atelier/contexts/asset-ledger/material-catalog/domain/errors"
)

// Store is the in-memory material ledger. One lock serializes every mutation;
// all validation happens before the first write, so a failed call leaves the
// counter and every balance untouched.
type Store struct {
	mu       sync.RWMutex
	nextID   uint64
	uris     map[uint64]string
	balances map[string]map[uint64]uint64
}

func NewStore() *Store {
	return &Store{
		nextID:   1,
		uris:     make(map[uint64]string),
		balances: make(map[string]map[uint64]uint64),
	}
}

func (s *Store) CreateMaterials(_ context.Context, uris []string) ([]entities.Material, error) {
	if len(uris) == 0 {
		return nil, domainerrors.ErrEmptyBatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	materials := make([]entities.Material, 0, len(uris))
	for _, uri := range uris {
		id := s.nextID
		s.nextID++
		s.uris[id] = uri
		materials = append(materials, entities.Material{ID: id, URI: uri})
	}
	return materials, nil
}

func (s *Store) Mint(_ context.Context, holder string, materialID uint64, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.uris[materialID]; !ok {
		return fmt.Errorf("material %d: %w", materialID, domainerrors.ErrUnknownMaterial)
	}
	held, ok := s.balances[holder]
	if !ok {
		held = make(map[uint64]uint64)
		s.balances[holder] = held
	}
	held[materialID] += amount
	return nil
}

func (s *Store) URI(_ context.Context, materialID uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uri, ok := s.uris[materialID]
	if !ok {
		return "", fmt.Errorf("material %d: %w", materialID, domainerrors.ErrUnknownMaterial)
	}
	return uri, nil
}

func (s *Store) BalanceOf(_ context.Context, holder string, materialID uint64) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.balances[holder][materialID], nil
}

func (s *Store) DebitBatch(_ context.Context, holder string, pairs []entities.MaterialAmount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate every pair before touching a balance. Duplicated ids within
	// one batch must be covered in aggregate.
	required := make(map[uint64]uint64, len(pairs))
	for _, pair := range pairs {
		if _, ok := s.uris[pair.MaterialID]; !ok {
			return fmt.Errorf("material %d: %w", pair.MaterialID, domainerrors.ErrUnknownMaterial)
		}
		if pair.Amount == 0 {
			return fmt.Errorf("material %d: %w", pair.MaterialID, domainerrors.ErrInvalidAmount)
		}
		required[pair.MaterialID] += pair.Amount
	}
	held := s.balances[holder]
	for materialID, amount := range required {
		if held[materialID] < amount {
			return fmt.Errorf("material %d: need %d, hold %d: %w",
				materialID, amount, held[materialID], domainerrors.ErrInsufficientBalance)
		}
	}

	for materialID, amount := range required {
		held[materialID] -= amount
		if held[materialID] == 0 {
			delete(held, materialID)
		}
	}
	return nil
}

// NextID reports the next id the allocator would hand out. Test helper.
func (s *Store) NextID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}
