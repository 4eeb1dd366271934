package ports

import "context"

// Material describes one created material token.
type Material struct {
	ID  uint64
	URI string
}

// MaterialPair links a material id with an amount to consume.
type MaterialPair struct {
	MaterialID uint64
	Amount     uint64
}

// Garment describes one minted garment token.
type Garment struct {
	ID       uint64
	Owner    string
	Designer string
	URI      string
}

// MaterialCreator is the catalog surface the factory forwards creations to.
type MaterialCreator interface {
	CreateMaterials(ctx context.Context, caller string, uris []string) ([]Material, error)
}

// GarmentMinter is the registry surface the factory orchestrates. The caller
// the factory passes is its own principal.
type GarmentMinter interface {
	MintWithMaterials(ctx context.Context, caller string, uri string, designer string, pairs []MaterialPair, recipient string) (Garment, error)
	MintWithoutMaterials(ctx context.Context, caller string, uri string, designer string, recipient string) (Garment, error)
}

// AccessControl is the registry surface for the factory's own gates.
type AccessControl interface {
	HasRole(ctx context.Context, address string, role string) (bool, error)
}

// RoleMinter is the role every factory entry point requires.
const RoleMinter = "minter"

// ChildrenCreated is the creation event payload for material batches; ids
// keep allocation order.
type ChildrenCreated struct {
	IDs []uint64 `json:"ids"`
}

// GarmentCreated is the creation event payload for one garment mint.
type GarmentCreated struct {
	GarmentTokenID uint64 `json:"garment_token_id"`
}

// CreationPublisher delivers creation events to external observers.
type CreationPublisher interface {
	PublishMaterialsCreated(ctx context.Context, event ChildrenCreated) error
	PublishGarmentCreated(ctx context.Context, event GarmentCreated) error
}
