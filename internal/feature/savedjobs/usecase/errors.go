// Package usecase implements the business logic for the savedjobs feature.
package usecase

import "errors"

var (
	// ErrListingNotFound is returned when the target listing does not exist.
	// The active flag is irrelevant for saving.
	ErrListingNotFound = errors.New("job not found")

	// ErrAlreadySaved is returned when the identity has already saved the listing.
	ErrAlreadySaved = errors.New("job already saved")

	// ErrNotSaved is returned when unsaving a listing that was never saved.
	ErrNotSaved = errors.New("job not saved")
)
