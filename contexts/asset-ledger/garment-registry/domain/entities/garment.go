package entities

// Garment is a unique composed asset token.
type Garment struct {
	ID       uint64 `json:"id"`
	Owner    string `json:"owner"`
	Designer string `json:"designer"`
	URI      string `json:"uri"`
}

// MaterialAmount pairs a material id with a quantity to link.
type MaterialAmount struct {
	MaterialID uint64 `json:"material_id"`
	Amount     uint64 `json:"amount"`
}

// CompositionEntry records one linked material quantity under a garment.
// Entries keep mint-time link order and never change after creation.
type CompositionEntry struct {
	Catalog    string `json:"catalog"`
	MaterialID uint64 `json:"material_id"`
	Amount     uint64 `json:"amount"`
}
