package httptransport

import "time"

// GrantRequest is the request body for adding a grant.
type GrantRequest struct {
	Address string `json:"address"`
	Role    string `json:"role"`
}

// RevokeRequest is the request body for removing a grant.
type RevokeRequest struct {
	Address string `json:"address"`
	Role    string `json:"role"`
}

type GrantResponse struct {
	Address string `json:"address"`
	Role    string `json:"role"`
	Granted bool   `json:"granted"`
}

type RevokeResponse struct {
	Address string `json:"address"`
	Role    string `json:"role"`
	Revoked bool   `json:"revoked"`
}

type CheckRoleResponse struct {
	Address string `json:"address"`
	Role    string `json:"role"`
	Held    bool   `json:"held"`
}

type GrantDTO struct {
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	GrantedBy string    `json:"granted_by"`
	GrantedAt time.Time `json:"granted_at"`
}

type ListGrantsResponse struct {
	Address string     `json:"address"`
	Grants  []GrantDTO `json:"grants"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
