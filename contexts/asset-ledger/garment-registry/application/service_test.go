package application

import (
	"context"
	"errors"
	"testing"

	"atelier/contexts/asset-ledger/garment-registry/adapters/memory"
	"atelier/contexts/asset-ledger/garment-registry/domain/entities"
	domainerrors "atelier/contexts/asset-ledger/garment-registry/domain/errors"
)

type stubAccess struct {
	roles map[string]map[string]bool
}

func (a stubAccess) HasRole(_ context.Context, address string, role string) (bool, error) {
	return a.roles[address][role], nil
}

type stubMaterials struct {
	err     error
	debited [][]entities.MaterialAmount
}

func (m *stubMaterials) DebitBatch(_ context.Context, _ string, pairs []entities.MaterialAmount) error {
	if m.err != nil {
		return m.err
	}
	m.debited = append(m.debited, pairs)
	return nil
}

func newTestService(materials *stubMaterials) (Service, *memory.Store) {
	store := memory.NewStore()
	service := Service{
		Ledger:    store,
		Materials: materials,
		Access: stubAccess{roles: map[string]map[string]bool{
			"factory-1": {"smart_contract": true},
		}},
		CatalogID: "material-catalog",
	}
	return service, store
}

func TestMintWithMaterialsRecordsOrderedComposition(t *testing.T) {
	materials := &stubMaterials{}
	service, _ := newTestService(materials)

	pairs := []entities.MaterialAmount{
		{MaterialID: 1, Amount: 1},
		{MaterialID: 2, Amount: 5},
		{MaterialID: 3, Amount: 2},
	}
	garment, err := service.MintWithMaterials(context.Background(), "factory-1", "ipfs://g1", "designer-1", pairs, "owner-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if garment.ID != 1 {
		t.Fatalf("expected garment id 1, got %d", garment.ID)
	}
	if garment.Owner != "owner-1" || garment.Designer != "designer-1" {
		t.Fatalf("unexpected garment %+v", garment)
	}

	ids, err := service.MaterialIDsOn(context.Background(), 1, "material-catalog")
	if err != nil {
		t.Fatalf("material ids failed: %v", err)
	}
	want := []uint64{1, 2, 3}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}

	for i, pair := range pairs {
		balance, err := service.MaterialBalance(context.Background(), 1, "material-catalog", pair.MaterialID)
		if err != nil {
			t.Fatalf("balance failed: %v", err)
		}
		if balance != pair.Amount {
			t.Fatalf("pair %d: expected %d, got %d", i, pair.Amount, balance)
		}
	}
}

func TestMintWithoutSmartContractRoleRejected(t *testing.T) {
	materials := &stubMaterials{}
	service, store := newTestService(materials)

	_, err := service.MintWithMaterials(context.Background(), "stranger", "ipfs://g", "d", []entities.MaterialAmount{{MaterialID: 1, Amount: 1}}, "owner-1")
	if !errors.Is(err, domainerrors.ErrRoleRequired) {
		t.Fatalf("expected role required, got %v", err)
	}
	if len(materials.debited) != 0 {
		t.Fatal("rejected mint must not debit materials")
	}
	if store.NextID() != 1 {
		t.Fatalf("rejected mint must not advance counter, next=%d", store.NextID())
	}
}

func TestFailedDebitAbortsMint(t *testing.T) {
	debitErr := errors.New("insufficient material balance")
	materials := &stubMaterials{err: debitErr}
	service, store := newTestService(materials)

	_, err := service.MintWithMaterials(context.Background(), "factory-1", "ipfs://g", "d", []entities.MaterialAmount{{MaterialID: 99, Amount: 1}}, "owner-1")
	if !errors.Is(err, debitErr) {
		t.Fatalf("expected debit error, got %v", err)
	}
	if store.NextID() != 1 {
		t.Fatalf("aborted mint must not advance counter, next=%d", store.NextID())
	}

	// A later valid mint still receives id 1.
	materials.err = nil
	garment, err := service.MintWithMaterials(context.Background(), "factory-1", "ipfs://g", "d", []entities.MaterialAmount{{MaterialID: 1, Amount: 1}}, "owner-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if garment.ID != 1 {
		t.Fatalf("expected garment id 1 after aborted mint, got %d", garment.ID)
	}
}

func TestMintWithoutMaterialsHasEmptyComposition(t *testing.T) {
	service, _ := newTestService(&stubMaterials{})

	garment, err := service.MintWithoutMaterials(context.Background(), "factory-1", "ipfs://plain", "designer-1", "owner-2")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if garment.ID != 1 {
		t.Fatalf("expected garment id 1, got %d", garment.ID)
	}

	ids, err := service.MaterialIDsOn(context.Background(), 1, "material-catalog")
	if err != nil {
		t.Fatalf("material ids failed: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty composition, got %v", ids)
	}
}

func TestMintWithEmptyPairsRejected(t *testing.T) {
	service, _ := newTestService(&stubMaterials{})

	_, err := service.MintWithMaterials(context.Background(), "factory-1", "ipfs://g", "d", nil, "owner-1")
	if !errors.Is(err, domainerrors.ErrEmptyComposition) {
		t.Fatalf("expected empty composition error, got %v", err)
	}
}
