package httpadapter

import (
	"context"
	"log/slog"

	application "atelier/contexts/identity-access/access-registry/application"
	"atelier/contexts/identity-access/access-registry/domain/entities"
	httptransport "atelier/contexts/identity-access/access-registry/transport/http"
)

// Handler maps HTTP DTOs to registry operations.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GrantHandler(
	ctx context.Context,
	caller string,
	request httptransport.GrantRequest,
) (httptransport.GrantResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http grant received",
		"event", "access_http_grant_received",
		"module", "identity-access/access-registry",
		"layer", "transport",
		"caller", caller,
		"address", request.Address,
		"role", request.Role,
	)

	if err := h.Service.Grant(ctx, caller, request.Address, entities.Role(request.Role)); err != nil {
		return httptransport.GrantResponse{}, err
	}
	return httptransport.GrantResponse{
		Address: request.Address,
		Role:    request.Role,
		Granted: true,
	}, nil
}

func (h Handler) RevokeHandler(
	ctx context.Context,
	caller string,
	request httptransport.RevokeRequest,
) (httptransport.RevokeResponse, error) {
	if err := h.Service.Revoke(ctx, caller, request.Address, entities.Role(request.Role)); err != nil {
		return httptransport.RevokeResponse{}, err
	}
	return httptransport.RevokeResponse{
		Address: request.Address,
		Role:    request.Role,
		Revoked: true,
	}, nil
}

func (h Handler) CheckRoleHandler(
	ctx context.Context,
	address string,
	role string,
) (httptransport.CheckRoleResponse, error) {
	held, err := h.Service.Has(ctx, address, entities.Role(role))
	if err != nil {
		return httptransport.CheckRoleResponse{}, err
	}
	return httptransport.CheckRoleResponse{
		Address: address,
		Role:    role,
		Held:    held,
	}, nil
}

func (h Handler) ListGrantsHandler(ctx context.Context, address string) (httptransport.ListGrantsResponse, error) {
	grants, err := h.Service.ListGrants(ctx, address)
	if err != nil {
		return httptransport.ListGrantsResponse{}, err
	}
	items := make([]httptransport.GrantDTO, 0, len(grants))
	for _, grant := range grants {
		items = append(items, httptransport.GrantDTO{
			Address:   grant.Address,
			Role:      string(grant.Role),
			GrantedBy: grant.GrantedBy,
			GrantedAt: grant.GrantedAt,
		})
	}
	return httptransport.ListGrantsResponse{Address: address, Grants: items}, nil
}
