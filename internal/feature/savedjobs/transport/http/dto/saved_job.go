// Package dto defines data transfer objects for the savedjobs feature's HTTP transport layer.
package dto

import "time"

// SavedJobItem is the public representation of a bookmark.
type SavedJobItem struct {
	ID        uint      `json:"id"`
	ListingID uint      `json:"job_id"`
	SavedAt   time.Time `json:"saved_at"`
}
