// Package usecase implements the business logic for the applications feature.
package usecase

import "errors"

var (
	// ErrListingNotFoundOrInactive is returned when the target listing does
	// not exist or no longer accepts applications. The two cases are
	// deliberately not distinguished to the caller.
	ErrListingNotFoundOrInactive = errors.New("job not found or inactive")

	// ErrDuplicateApplication is returned when the identity has already
	// applied to the listing.
	ErrDuplicateApplication = errors.New("already applied to this job")

	// ErrResumeRequired is returned when the application payload is missing
	// the resume reference.
	ErrResumeRequired = errors.New("resume is required")
)
