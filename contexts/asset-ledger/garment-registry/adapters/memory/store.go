package memory

import (
	"context"
	"fmt"
	"sync"

	"atelier/contexts/asset-ledger/garment-registry/domain/entities"
	domainerrors "atelier/contexts/asset-ledger/garment-registry/domain/errors"
	"atelier/contexts/asset-ledger/garment-registry/ports"
)

// Store is the in-memory garment ledger. MintGarment runs after upstream
// debits committed; it only allocates and writes, so a mint observed by the
// caller is always complete.
type Store struct {
	mu          sync.RWMutex
	nextID      uint64
	garments    map[uint64]entities.Garment
	composition map[uint64][]entities.CompositionEntry
}

func NewStore() *Store {
	return &Store{
		nextID:      1,
		garments:    make(map[uint64]entities.Garment),
		composition: make(map[uint64][]entities.CompositionEntry),
	}
}

func (s *Store) MintGarment(_ context.Context, input ports.MintInput) (entities.Garment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	garment := entities.Garment{
		ID:       id,
		Owner:    input.Recipient,
		Designer: input.Designer,
		URI:      input.URI,
	}
	s.garments[id] = garment
	if len(input.Entries) > 0 {
		s.composition[id] = append([]entities.CompositionEntry(nil), input.Entries...)
	}
	return garment, nil
}

func (s *Store) Garment(_ context.Context, garmentID uint64) (entities.Garment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	garment, ok := s.garments[garmentID]
	if !ok {
		return entities.Garment{}, fmt.Errorf("garment %d: %w", garmentID, domainerrors.ErrUnknownGarment)
	}
	return garment, nil
}

func (s *Store) MaterialBalance(_ context.Context, garmentID uint64, catalog string, materialID uint64) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total uint64
	for _, entry := range s.composition[garmentID] {
		if entry.Catalog == catalog && entry.MaterialID == materialID {
			total += entry.Amount
		}
	}
	return total, nil
}

func (s *Store) MaterialIDsOn(_ context.Context, garmentID uint64, catalog string) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[uint64]struct{})
	ids := make([]uint64, 0, len(s.composition[garmentID]))
	for _, entry := range s.composition[garmentID] {
		if entry.Catalog != catalog || entry.Amount == 0 {
			continue
		}
		if _, dup := seen[entry.MaterialID]; dup {
			continue
		}
		seen[entry.MaterialID] = struct{}{}
		ids = append(ids, entry.MaterialID)
	}
	return ids, nil
}

// NextID reports the next id the allocator would hand out. Test helper.
func (s *Store) NextID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}
