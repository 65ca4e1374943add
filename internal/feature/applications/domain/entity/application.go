// Package entity defines the domain entities for the applications feature.
package entity

import "time"

// Status is the review state of an application.
type Status string

const (
	// StatusPending means the application was submitted but not yet reviewed.
	StatusPending Status = "PENDING"
	// StatusReviewed means the employer has seen the application.
	StatusReviewed Status = "REVIEWED"
	// StatusShortlisted means the applicant has been shortlisted.
	StatusShortlisted Status = "SHORTLISTED"
	// StatusRejected means the application was not successful.
	StatusRejected Status = "REJECTED"
	// StatusHired means the applicant was hired for the position.
	StatusHired Status = "HIRED"
)

// Application represents a job seeker's submission against one listing.
// The (ListingID, ApplicantID) pair carries a unique index: an identity
// may apply to a given listing at most once, and the database constraint
// is the authoritative enforcement of that invariant.
type Application struct {
	ID uint `gorm:"primaryKey"`

	// ListingID references the listing being applied for.
	ListingID uint `gorm:"not null;uniqueIndex:idx_applications_listing_applicant"`

	// ApplicantID references the identity submitting the application.
	ApplicantID uint `gorm:"not null;uniqueIndex:idx_applications_listing_applicant"`

	// Resume is a reference to the uploaded resume document.
	Resume string `gorm:"size:512;not null"`

	// CoverLetter is optional cover letter text.
	CoverLetter string `gorm:"type:text"`

	// Status is the review state; new applications start as StatusPending.
	Status Status `gorm:"size:15;not null;default:PENDING"`

	// ListingTitle is populated by list queries via a join with the
	// listings table. It is not a column of this table.
	ListingTitle string `gorm:"->;-:migration"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
