package httptransport

// GarmentDTO describes one garment token.
type GarmentDTO struct {
	GarmentID uint64 `json:"garment_id"`
	Owner     string `json:"owner"`
	Designer  string `json:"designer"`
	URI       string `json:"uri"`
}

type CompositionEntryDTO struct {
	Catalog    string `json:"catalog"`
	MaterialID uint64 `json:"material_id"`
	Amount     uint64 `json:"amount"`
}

type CompositionResponse struct {
	GarmentID   uint64   `json:"garment_id"`
	Catalog     string   `json:"catalog"`
	MaterialIDs []uint64 `json:"material_ids"`
}

type MaterialBalanceResponse struct {
	GarmentID  uint64 `json:"garment_id"`
	Catalog    string `json:"catalog"`
	MaterialID uint64 `json:"material_id"`
	Balance    uint64 `json:"balance"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
