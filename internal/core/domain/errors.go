package domain

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidSeed     = errors.New("invalid seed data")
)
