// Package dto defines data transfer objects for the identity feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the registration endpoint.
// Role-specific requirements (skills/company) are validated by the usecase;
// binding tags cover the structural validation only.
type RegisterReq struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=job_seeker employer"`
	PhoneNumber string `json:"phone_number"`
	Skills      string `json:"skills"`
	Company     string `json:"company"`
}
