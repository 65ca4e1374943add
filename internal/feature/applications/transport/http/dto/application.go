// Package dto defines data transfer objects for the applications feature's HTTP transport layer.
package dto

import "time"

// ApplyReq represents the request body for applying to a listing.
type ApplyReq struct {
	Resume      string `json:"resume" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

// ApplicationItem is the public representation of an application.
type ApplicationItem struct {
	ID          uint      `json:"id"`
	ListingID   uint      `json:"job"`
	JobTitle    string    `json:"job_title,omitempty"`
	Resume      string    `json:"resume"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
