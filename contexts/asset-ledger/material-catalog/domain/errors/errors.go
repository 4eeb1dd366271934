package errors

import "errors"

var (
	ErrRoleRequired        = errors.New("caller lacks required role")
	ErrUnknownMaterial     = errors.New("unknown material id")
	ErrEmptyBatch          = errors.New("batch must contain at least one uri")
	ErrEmptyURI            = errors.New("uri must not be empty")
	ErrEmptyHolder         = errors.New("holder address must not be empty")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient material balance")
)
