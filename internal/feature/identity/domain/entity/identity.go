// Package entity defines the domain entities for the identity feature.
package entity

import "time"

// Role classifies an identity as either a job seeker or an employer.
type Role string

const (
	// RoleJobSeeker is an identity that applies to and saves listings.
	RoleJobSeeker Role = "job_seeker"

	// RoleEmployer is an identity that owns job listings.
	RoleEmployer Role = "employer"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// Identity represents a registered user in the system.
// It contains authentication credentials, contact data and the role that
// drives every authorization decision.
type Identity struct {
	// ID is the unique identifier for the identity.
	ID uint `gorm:"primaryKey"`

	// Email is the address used for authentication.
	// It must be unique across all identities.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// FullName is the display name of the identity.
	FullName string `gorm:"size:100;not null"`

	// Role is either RoleJobSeeker or RoleEmployer. Immutable after creation.
	Role Role `gorm:"size:20;not null"`

	// PhoneNumber is the contact number.
	PhoneNumber string `gorm:"size:20"`

	// Skills describes a job seeker's skills. Required for job seekers.
	Skills string `gorm:"type:text"`

	// Company is the employer's company name. Required for employers.
	// Listings owned by this identity copy it on every write.
	Company string `gorm:"size:255"`

	// Password is the bcrypt hash of the password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// IsActive marks whether the identity may authenticate.
	IsActive bool `gorm:"not null;default:true"`

	// CreatedAt is the timestamp when the identity was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the identity was last updated.
	UpdatedAt time.Time
}

// IsEmployer reports whether the identity has the employer role.
func (i *Identity) IsEmployer() bool {
	return i.Role == RoleEmployer
}

// IsJobSeeker reports whether the identity has the job seeker role.
func (i *Identity) IsJobSeeker() bool {
	return i.Role == RoleJobSeeker
}
