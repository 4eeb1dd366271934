package httpadapter

import (
	"context"
	"log/slog"

	"atelier/contexts/asset-ledger/garment-registry/application"
	httptransport "atelier/contexts/asset-ledger/garment-registry/transport/http"
)

// Handler maps HTTP DTOs to registry queries. Mutations enter through the
// garment factory facade, not here.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GarmentHandler(ctx context.Context, garmentID uint64) (httptransport.GarmentDTO, error) {
	garment, err := h.Service.Garment(ctx, garmentID)
	if err != nil {
		return httptransport.GarmentDTO{}, err
	}
	return httptransport.GarmentDTO{
		GarmentID: garment.ID,
		Owner:     garment.Owner,
		Designer:  garment.Designer,
		URI:       garment.URI,
	}, nil
}

func (h Handler) CompositionHandler(
	ctx context.Context,
	garmentID uint64,
	catalog string,
) (httptransport.CompositionResponse, error) {
	ids, err := h.Service.MaterialIDsOn(ctx, garmentID, catalog)
	if err != nil {
		return httptransport.CompositionResponse{}, err
	}
	return httptransport.CompositionResponse{
		GarmentID:   garmentID,
		Catalog:     catalog,
		MaterialIDs: ids,
	}, nil
}

func (h Handler) MaterialBalanceHandler(
	ctx context.Context,
	garmentID uint64,
	catalog string,
	materialID uint64,
) (httptransport.MaterialBalanceResponse, error) {
	balance, err := h.Service.MaterialBalance(ctx, garmentID, catalog, materialID)
	if err != nil {
		return httptransport.MaterialBalanceResponse{}, err
	}
	return httptransport.MaterialBalanceResponse{
		GarmentID:  garmentID,
		Catalog:    catalog,
		MaterialID: materialID,
		Balance:    balance,
	}, nil
}
