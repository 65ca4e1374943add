// Package entity defines the domain entities for the listings feature.
package entity

import "time"

// Listing represents a job posting owned by one employer identity.
type Listing struct {
	// ID is the unique identifier for the listing.
	ID uint `gorm:"primaryKey"`

	// Title is the title of the position.
	Title string `gorm:"size:255;not null"`

	// Description is the detailed description of the role.
	Description string `gorm:"type:text;not null"`

	// Requirements lists the skills or qualifications required.
	Requirements string `gorm:"type:text"`

	// Location is the physical or remote location of the job.
	Location string `gorm:"size:255"`

	// Salary holds the compensation details.
	Salary string `gorm:"size:100"`

	// CompanyName is copied from the owner's company field on every write.
	// It is never settable by clients.
	CompanyName string `gorm:"size:255"`

	// EmployerID is the identity that owns this listing.
	EmployerID uint `gorm:"index;not null"`

	// IsActive marks whether the listing accepts applications.
	IsActive bool `gorm:"not null;default:true"`

	// CreatedAt is the timestamp when the listing was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the listing was last updated.
	UpdatedAt time.Time
}

// OwnerID returns the owning employer's identity ID. It satisfies the
// authorization policy's resource contract.
func (l *Listing) OwnerID() uint {
	return l.EmployerID
}
