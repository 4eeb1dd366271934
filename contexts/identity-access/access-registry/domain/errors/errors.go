package errors

import "errors"

var (
	ErrRoleRequired   = errors.New("caller lacks required role")
	ErrUnknownRole    = errors.New("unknown role")
	ErrInvalidAddress = errors.New("invalid address")
	ErrLastAdmin      = errors.New("cannot revoke the last admin grant")
)
