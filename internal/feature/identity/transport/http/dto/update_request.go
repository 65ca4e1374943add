package dto

// UpdateReq represents the request body for the profile-update endpoint.
// All fields are optional; empty fields are left unchanged. Role cannot
// be changed after registration and is deliberately absent.
type UpdateReq struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Skills      string `json:"skills"`
	Company     string `json:"company"`
	Password    string `json:"password" binding:"omitempty,min=8"`
}
