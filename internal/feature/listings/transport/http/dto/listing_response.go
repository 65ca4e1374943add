package dto

import "time"

// ListingItem is the public representation of a listing.
type ListingItem struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	CompanyName  string    `json:"company_name"`
	EmployerID   uint      `json:"employer"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
