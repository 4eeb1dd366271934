package entities

import "time"

// Role is a capability name recorded against an address.
type Role string

const (
	// RoleAdmin may add and remove grants.
	RoleAdmin Role = "admin"
	// RoleMinter may create materials and mint garments through the factory.
	RoleMinter Role = "minter"
	// RoleSmartContract marks the trusted orchestrator; the garment registry
	// accepts its mutating calls from this role only.
	RoleSmartContract Role = "smart_contract"
)

// ValidRole reports whether the role is one the registry knows.
func ValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleMinter, RoleSmartContract:
		return true
	default:
		return false
	}
}

// Grant is one (address, role) capability entry.
type Grant struct {
	Address   string    `json:"address"`
	Role      Role      `json:"role"`
	GrantedBy string    `json:"granted_by"`
	GrantedAt time.Time `json:"granted_at"`
}
