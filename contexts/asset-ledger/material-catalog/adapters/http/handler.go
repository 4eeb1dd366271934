package httpadapter

import (
	"context"
	"log/slog"

	"atelier/contexts/asset-ledger/material-catalog/application"
	httptransport "atelier/contexts/asset-ledger/material-catalog/transport/http"
)

// Handler maps HTTP DTOs to catalog operations.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateMaterialHandler(
	ctx context.Context,
	caller string,
	request httptransport.CreateMaterialRequest,
) (httptransport.CreateMaterialResponse, error) {
	id, err := h.Service.CreateMaterial(ctx, caller, request.URI)
	if err != nil {
		return httptransport.CreateMaterialResponse{}, err
	}
	return httptransport.CreateMaterialResponse{MaterialID: id, URI: request.URI}, nil
}

func (h Handler) CreateMaterialsHandler(
	ctx context.Context,
	caller string,
	request httptransport.CreateMaterialsRequest,
) (httptransport.CreateMaterialsResponse, error) {
	materials, err := h.Service.CreateMaterials(ctx, caller, request.URIs)
	if err != nil {
		return httptransport.CreateMaterialsResponse{}, err
	}
	items := make([]httptransport.MaterialDTO, 0, len(materials))
	for _, material := range materials {
		items = append(items, httptransport.MaterialDTO{
			MaterialID: material.ID,
			URI:        material.URI,
		})
	}
	return httptransport.CreateMaterialsResponse{Materials: items}, nil
}

func (h Handler) MintMaterialHandler(
	ctx context.Context,
	caller string,
	materialID uint64,
	request httptransport.MintMaterialRequest,
) (httptransport.MintMaterialResponse, error) {
	if err := h.Service.Mint(ctx, caller, request.Holder, materialID, request.Amount); err != nil {
		return httptransport.MintMaterialResponse{}, err
	}
	return httptransport.MintMaterialResponse{
		MaterialID: materialID,
		Holder:     request.Holder,
		Amount:     request.Amount,
	}, nil
}

func (h Handler) MaterialURIHandler(ctx context.Context, materialID uint64) (httptransport.MaterialURIResponse, error) {
	uri, err := h.Service.URI(ctx, materialID)
	if err != nil {
		return httptransport.MaterialURIResponse{}, err
	}
	return httptransport.MaterialURIResponse{MaterialID: materialID, URI: uri}, nil
}

func (h Handler) BalanceHandler(
	ctx context.Context,
	holder string,
	materialID uint64,
) (httptransport.BalanceResponse, error) {
	balance, err := h.Service.BalanceOf(ctx, holder, materialID)
	if err != nil {
		return httptransport.BalanceResponse{}, err
	}
	return httptransport.BalanceResponse{
		Holder:     holder,
		MaterialID: materialID,
		Balance:    balance,
	}, nil
}
