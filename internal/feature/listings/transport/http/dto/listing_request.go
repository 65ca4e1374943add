// Package dto defines data transfer objects for the listings feature's HTTP transport layer.
package dto

// CreateListingReq represents the request body for creating a listing.
// company_name is not accepted: it is derived from the owner's profile.
type CreateListingReq struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
}

// UpdateListingReq represents the request body for updating a listing.
// All fields are optional; empty fields are left unchanged.
type UpdateListingReq struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
}
