package errors

import "errors"

var (
	ErrRoleRequired     = errors.New("caller lacks required role")
	ErrUnknownGarment   = errors.New("unknown garment id")
	ErrEmptyComposition = errors.New("composition must contain at least one material")
	ErrEmptyRecipient   = errors.New("recipient address must not be empty")
	ErrEmptyURI         = errors.New("uri must not be empty")
)
