package httpadapter

import (
	"context"
	"log/slog"

	"atelier/contexts/asset-ledger/garment-factory/application"
	httptransport "atelier/contexts/asset-ledger/garment-factory/transport/http"
)

// Handler maps HTTP DTOs to factory operations.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateMaterialHandler(
	ctx context.Context,
	caller string,
	request httptransport.CreateMaterialRequest,
) (httptransport.CreateMaterialResponse, error) {
	id, err := h.Service.CreateNewMaterial(ctx, caller, request.URI)
	if err != nil {
		return httptransport.CreateMaterialResponse{}, err
	}
	return httptransport.CreateMaterialResponse{MaterialID: id}, nil
}

func (h Handler) CreateMaterialsHandler(
	ctx context.Context,
	caller string,
	request httptransport.CreateMaterialsRequest,
) (httptransport.CreateMaterialsResponse, error) {
	ids, err := h.Service.CreateNewMaterials(ctx, caller, request.URIs)
	if err != nil {
		return httptransport.CreateMaterialsResponse{}, err
	}
	return httptransport.CreateMaterialsResponse{MaterialIDs: ids}, nil
}

func (h Handler) MintGarmentHandler(
	ctx context.Context,
	caller string,
	request httptransport.MintGarmentRequest,
) (httptransport.MintGarmentResponse, error) {
	var (
		id  uint64
		err error
	)
	if len(request.MaterialIDs) == 0 && len(request.Amounts) == 0 {
		id, err = h.Service.MintGarmentWithoutMaterials(ctx, caller, request.URI, request.Designer, request.Recipient)
	} else {
		id, err = h.Service.MintGarmentWithMaterials(
			ctx, caller, request.URI, request.Designer, request.MaterialIDs, request.Amounts, request.Recipient)
	}
	if err != nil {
		return httptransport.MintGarmentResponse{}, err
	}
	return httptransport.MintGarmentResponse{GarmentTokenID: id}, nil
}
