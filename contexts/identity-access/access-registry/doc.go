// Package accessregistry implements the Access Registry inside Atelier.
//
// Layering:
// - domain: role grants, invariants, errors
// - application: grant/revoke/has operations using explicit ports
// - ports: stable boundaries for persistence
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Every mutating operation in the asset-ledger context is gated on a grant
//   recorded here; the registry itself is gated on the admin role.
// - Do not import other context adapters into domain/application.
package accessregistry
