// Package api defines the shared HTTP response envelopes used by all handlers.
package api

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the standard success body for operations without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// IdentityResponse is the public representation of an identity.
// The password hash is never serialized.
type IdentityResponse struct {
	ID          uint   `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
	Skills      string `json:"skills,omitempty"`
	Company     string `json:"company,omitempty"`
}

// AuthResponse is returned by /login and registration: the bearer token
// plus the resolved identity.
type AuthResponse struct {
	Token    string           `json:"token"`
	Identity IdentityResponse `json:"user"`
}
