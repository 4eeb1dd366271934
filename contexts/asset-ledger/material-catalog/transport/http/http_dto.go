package httptransport

// CreateMaterialRequest is the request body for single-material creation.
type CreateMaterialRequest struct {
	URI string `json:"uri"`
}

type CreateMaterialResponse struct {
	MaterialID uint64 `json:"material_id"`
	URI        string `json:"uri"`
}

// CreateMaterialsRequest is the request body for atomic batch creation.
type CreateMaterialsRequest struct {
	URIs []string `json:"uris"`
}

type MaterialDTO struct {
	MaterialID uint64 `json:"material_id"`
	URI        string `json:"uri"`
}

type CreateMaterialsResponse struct {
	Materials []MaterialDTO `json:"materials"`
}

type MintMaterialRequest struct {
	Holder string `json:"holder"`
	Amount uint64 `json:"amount"`
}

type MintMaterialResponse struct {
	MaterialID uint64 `json:"material_id"`
	Holder     string `json:"holder"`
	Amount     uint64 `json:"amount"`
}

type MaterialURIResponse struct {
	MaterialID uint64 `json:"material_id"`
	URI        string `json:"uri"`
}

type BalanceResponse struct {
	Holder     string `json:"holder"`
	MaterialID uint64 `json:"material_id"`
	Balance    uint64 `json:"balance"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
