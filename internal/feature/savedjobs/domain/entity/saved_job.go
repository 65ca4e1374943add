// Package entity defines the domain entities for the savedjobs feature.
package entity

import "time"

// SavedJob is a bookmark linking a user identity to a listing.
// The (ListingID, IdentityID) pair carries a unique index: at most one
// saved record may exist per pair, enforced by the database constraint.
type SavedJob struct {
	ID uint `gorm:"primaryKey"`

	// ListingID references the bookmarked listing.
	ListingID uint `gorm:"not null;uniqueIndex:idx_saved_jobs_listing_identity"`

	// IdentityID references the identity that saved the listing.
	IdentityID uint `gorm:"not null;uniqueIndex:idx_saved_jobs_listing_identity"`

	// SavedAt is the timestamp when the listing was bookmarked.
	SavedAt time.Time `gorm:"not null"`
}
