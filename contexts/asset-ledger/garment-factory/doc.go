// Package garmentfactory implements the minting facade of the asset ledger.
//
// Minters never talk to the garment registry directly: the factory checks the
// minter role, validates input shape, zips material ids with amounts, and
// calls the registry as its own principal, the address carrying the
// smart_contract grant and the delegated material balances. Every successful
// mutation publishes a creation event on the ledger bus.
package garmentfactory
