package entities

// Material is a fungible-per-id component token. The URI is fixed at
// creation and never mutates.
type Material struct {
	ID  uint64 `json:"id"`
	URI string `json:"uri"`
}

// MaterialAmount pairs a material id with a quantity.
type MaterialAmount struct {
	MaterialID uint64 `json:"material_id"`
	Amount     uint64 `json:"amount"`
}
