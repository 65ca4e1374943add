// Package usecase implements the business logic for the listings feature.
package usecase

import "errors"

var (
	// ErrListingNotFound is returned when a listing cannot be found by ID.
	ErrListingNotFound = errors.New("listing not found")
)
