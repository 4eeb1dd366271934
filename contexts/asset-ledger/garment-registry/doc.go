// Package garmentregistry implements the garment composition ledger: unique
// garment tokens plus the per-garment record of linked material quantities.
// Its mutating entry points accept only callers holding the smart_contract
// role, which in practice means the garment factory.
package garmentregistry
