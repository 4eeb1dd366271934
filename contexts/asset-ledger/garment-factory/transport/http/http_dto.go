package httptransport

// CreateMaterialRequest is the request body for single-material creation
// through the factory.
type CreateMaterialRequest struct {
	URI string `json:"uri"`
}

type CreateMaterialResponse struct {
	MaterialID uint64 `json:"material_id"`
}

type CreateMaterialsRequest struct {
	URIs []string `json:"uris"`
}

type CreateMaterialsResponse struct {
	MaterialIDs []uint64 `json:"material_ids"`
}

// MintGarmentRequest is the request body for garment minting. MaterialIDs and
// Amounts zip pairwise; both empty means a plain mint.
type MintGarmentRequest struct {
	URI         string   `json:"uri"`
	Designer    string   `json:"designer"`
	MaterialIDs []uint64 `json:"material_ids,omitempty"`
	Amounts     []uint64 `json:"amounts,omitempty"`
	Recipient   string   `json:"recipient"`
}

type MintGarmentResponse struct {
	GarmentTokenID uint64 `json:"garment_token_id"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
