package unit

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	factoryerrors "atelier/contexts/asset-ledger/garment-factory/domain/errors"
	garmenterrors "atelier/contexts/asset-ledger/garment-registry/domain/errors"
	materialerrors "atelier/contexts/asset-ledger/material-catalog/domain/errors"
	accessentities "atelier/contexts/identity-access/access-registry/domain/entities"
	"atelier/internal/app/wiring"
	"atelier/internal/platform/config"
)

func testConfig() config.Config {
	return config.Config{
		SeedAdminAddress:  "admin-root",
		FactoryAddress:    "garment-factory",
		MaterialCatalogID: "material-catalog",
	}
}

func newLedger(t *testing.T) wiring.Modules {
	t.Helper()
	return wiring.NewInMemory(testConfig(), slog.Default())
}

func grantMinter(t *testing.T, modules wiring.Modules, address string) {
	t.Helper()
	if err := modules.Access.Service.Grant(context.Background(), "admin-root", address, accessentities.RoleMinter); err != nil {
		t.Fatalf("grant minter to %s: %v", address, err)
	}
}

func TestMaterialIDsAreSequentialAcrossCalls(t *testing.T) {
	modules := newLedger(t)
	ctx := context.Background()
	grantMinter(t, modules, "brand")

	first, err := modules.Factory.Service.CreateNewMaterial(ctx, "brand", "ipfs://cotton")
	if err != nil {
		t.Fatalf("create first material: %v", err)
	}
	batch, err := modules.Factory.Service.CreateNewMaterials(ctx, "brand", []string{"ipfs://wool", "ipfs://silk"})
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}
	last, err := modules.Factory.Service.CreateNewMaterial(ctx, "brand", "ipfs://linen")
	if err != nil {
		t.Fatalf("create last material: %v", err)
	}

	if first != 1 {
		t.Fatalf("expected first id 1, got %d", first)
	}
	if len(batch) != 2 || batch[0] != 2 || batch[1] != 3 {
		t.Fatalf("expected batch ids [2 3], got %v", batch)
	}
	if last != 4 {
		t.Fatalf("expected last id 4, got %d", last)
	}
}

func TestFailedCreateDoesNotConsumeIDs(t *testing.T) {
	modules := newLedger(t)
	ctx := context.Background()
	grantMinter(t, modules, "brand")

	if _, err := modules.Factory.Service.CreateNewMaterial(ctx, "stranger", "ipfs://stolen"); !errors.Is(err, factoryerrors.ErrRoleRequired) {
		t.Fatalf("expected role required, got %v", err)
	}
	if _, err := modules.Materials.Service.CreateMaterials(ctx, "brand", nil); !errors.Is(err, materialerrors.ErrEmptyBatch) {
		t.Fatalf("expected empty batch rejection, got %v", err)
	}

	id, err := modules.Factory.Service.CreateNewMaterial(ctx, "brand", "ipfs://cotton")
	if err != nil {
		t.Fatalf("create material: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1 after failed attempts, got %d", id)
	}
}

func TestMintGarmentWithFiveMaterials(t *testing.T) {
	modules := newLedger(t)
	ctx := context.Background()
	grantMinter(t, modules, "brand")

	uris := []string{"ipfs://cotton", "ipfs://wool", "ipfs://silk", "ipfs://linen", "ipfs://hemp"}
	ids, err := modules.Factory.Service.CreateNewMaterials(ctx, "brand", uris)
	if err != nil {
		t.Fatalf("create materials: %v", err)
	}
	for _, id := range ids {
		if err := modules.Materials.Service.Mint(ctx, "brand", "garment-factory", id, 10); err != nil {
			t.Fatalf("mint material %d: %v", id, err)
		}
	}

	amounts := []uint64{1, 5, 2, 2, 2}
	garmentID, err := modules.Factory.Service.MintGarmentWithMaterials(
		ctx, "brand", "ipfs://jacket", "ada", ids, amounts, "alice")
	if err != nil {
		t.Fatalf("mint garment: %v", err)
	}
	if garmentID != 1 {
		t.Fatalf("expected garment id 1, got %d", garmentID)
	}

	garment, err := modules.Garments.Service.Garment(ctx, garmentID)
	if err != nil {
		t.Fatalf("load garment: %v", err)
	}
	if garment.Owner != "alice" || garment.Designer != "ada" || garment.URI != "ipfs://jacket" {
		t.Fatalf("unexpected garment: %+v", garment)
	}

	composition, err := modules.Garments.Service.MaterialIDsOn(ctx, garmentID, "material-catalog")
	if err != nil {
		t.Fatalf("composition: %v", err)
	}
	if len(composition) != 5 {
		t.Fatalf("expected 5 composition entries, got %v", composition)
	}
	for i, id := range ids {
		if composition[i] != id {
			t.Fatalf("composition order mismatch: expected %v, got %v", ids, composition)
		}
		balance, err := modules.Garments.Service.MaterialBalance(ctx, garmentID, "material-catalog", id)
		if err != nil {
			t.Fatalf("garment balance %d: %v", id, err)
		}
		if balance != amounts[i] {
			t.Fatalf("material %d: expected garment balance %d, got %d", id, amounts[i], balance)
		}
		holderBalance, err := modules.Materials.Service.BalanceOf(ctx, "garment-factory", id)
		if err != nil {
			t.Fatalf("factory balance %d: %v", id, err)
		}
		if holderBalance != 10-amounts[i] {
			t.Fatalf("material %d: expected factory balance %d, got %d", id, 10-amounts[i], holderBalance)
		}
	}
}

func TestMintGarmentWithoutMaterials(t *testing.T) {
	modules := newLedger(t)
	ctx := context.Background()
	grantMinter(t, modules, "brand")

	garmentID, err := modules.Factory.Service.MintGarmentWithoutMaterials(ctx, "brand", "ipfs://plain", "ada", "alice")
	if err != nil {
		t.Fatalf("mint garment: %v", err)
	}

	composition, err := modules.Garments.Service.MaterialIDsOn(ctx, garmentID, "material-catalog")
	if err != nil {
		t.Fatalf("composition: %v", err)
	}
	if len(composition) != 0 {
		t.Fatalf("expected empty composition, got %v", composition)
	}
}

func TestUnauthorizedMintLeavesStateUntouched(t *testing.T) {
	modules := newLedger(t)
	ctx := context.Background()
	grantMinter(t, modules, "brand")

	if _, err := modules.Factory.Service.MintGarmentWithMaterials(
		ctx, "stranger", "ipfs://jacket", "ada", []uint64{1}, []uint64{1}, "alice"); !errors.Is(err, factoryerrors.ErrRoleRequired) {
		t.Fatalf("expected role required, got %v", err)
	}

	garmentID, err := modules.Factory.Service.MintGarmentWithoutMaterials(ctx, "brand", "ipfs://plain", "ada", "alice")
	if err != nil {
		t.Fatalf("mint garment: %v", err)
	}
	if garmentID != 1 {
		t.Fatalf("expected garment id 1 after rejected attempt, got %d", garmentID)
	}
}

func TestMintGarmentAbortsOnUnknownMaterial(t *testing.T) {
	modules := newLedger(t)
	ctx := context.Background()
	grantMinter(t, modules, "brand")

	ids, err := modules.Factory.Service.CreateNewMaterials(ctx, "brand", []string{"ipfs://cotton", "ipfs://wool"})
	if err != nil {
		t.Fatalf("create materials: %v", err)
	}
	for _, id := range ids {
		if err := modules.Materials.Service.Mint(ctx, "brand", "garment-factory", id, 10); err != nil {
			t.Fatalf("mint material %d: %v", id, err)
		}
	}

	_, err = modules.Factory.Service.MintGarmentWithMaterials(
		ctx, "brand", "ipfs://jacket", "ada", []uint64{1, 2, 99}, []uint64{1, 1, 1}, "alice")
	if !errors.Is(err, materialerrors.ErrUnknownMaterial) {
		t.Fatalf("expected unknown material, got %v", err)
	}

	for _, id := range ids {
		balance, balanceErr := modules.Materials.Service.BalanceOf(ctx, "garment-factory", id)
		if balanceErr != nil {
			t.Fatalf("balance %d: %v", id, balanceErr)
		}
		if balance != 10 {
			t.Fatalf("material %d: expected untouched balance 10, got %d", id, balance)
		}
	}
	if _, err := modules.Garments.Service.Garment(ctx, 1); !errors.Is(err, garmenterrors.ErrUnknownGarment) {
		t.Fatalf("expected no garment after aborted mint, got %v", err)
	}
}

func TestMintGarmentAbortsOnInsufficientBalance(t *testing.T) {
	modules := newLedger(t)
	ctx := context.Background()
	grantMinter(t, modules, "brand")

	ids, err := modules.Factory.Service.CreateNewMaterials(ctx, "brand", []string{"ipfs://cotton", "ipfs://wool"})
	if err != nil {
		t.Fatalf("create materials: %v", err)
	}
	if err := modules.Materials.Service.Mint(ctx, "brand", "garment-factory", ids[0], 10); err != nil {
		t.Fatalf("mint material: %v", err)
	}
	if err := modules.Materials.Service.Mint(ctx, "brand", "garment-factory", ids[1], 1); err != nil {
		t.Fatalf("mint material: %v", err)
	}

	_, err = modules.Factory.Service.MintGarmentWithMaterials(
		ctx, "brand", "ipfs://jacket", "ada", ids, []uint64{2, 2}, "alice")
	if !errors.Is(err, materialerrors.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}

	first, _ := modules.Materials.Service.BalanceOf(ctx, "garment-factory", ids[0])
	second, _ := modules.Materials.Service.BalanceOf(ctx, "garment-factory", ids[1])
	if first != 10 || second != 1 {
		t.Fatalf("expected untouched balances 10/1, got %d/%d", first, second)
	}

	garmentID, err := modules.Factory.Service.MintGarmentWithoutMaterials(ctx, "brand", "ipfs://plain", "ada", "alice")
	if err != nil {
		t.Fatalf("mint garment: %v", err)
	}
	if garmentID != 1 {
		t.Fatalf("expected garment id 1 after aborted mint, got %d", garmentID)
	}
}

func TestFactoryZipsPairsInOrder(t *testing.T) {
	modules := newLedger(t)
	ctx := context.Background()
	grantMinter(t, modules, "brand")

	_, err := modules.Factory.Service.MintGarmentWithMaterials(
		ctx, "brand", "ipfs://jacket", "ada", []uint64{1, 2}, []uint64{1}, "alice")
	if !errors.Is(err, factoryerrors.ErrLengthMismatch) {
		t.Fatalf("expected length mismatch, got %v", err)
	}
}
