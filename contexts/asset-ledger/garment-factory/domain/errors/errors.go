package errors

import "errors"

var (
	ErrRoleRequired   = errors.New("caller lacks required role")
	ErrLengthMismatch = errors.New("material id and amount lists must match in length")
)
