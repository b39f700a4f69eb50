package domain

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrListingNotFound    = errors.New("listing not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrInvalidCredential  = errors.New("invalid email or password")
	ErrInvalidID          = errors.New("invalid id")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
