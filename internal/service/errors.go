package service

import "errors"

// Service-level errors, mapped to HTTP statuses by the handlers. Ownership
// misses surface as ErrNotFound so the API never reveals whether a record
// exists under another user.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
