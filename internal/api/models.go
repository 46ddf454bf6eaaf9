package api

import "github.com/4insec/pasaka-api/internal/domain"

// Common request/response structures

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SearchRequest defines the payload for the Bible search endpoint. An empty
// query is valid and matches every verse.
type SearchRequest struct {
	Query string `json:"query"`
}

// UserResponse is the public projection of an account: everything except
// the password hash.
type UserResponse struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	APIKey string `json:"api_key"`
}

// AuthResponse is the envelope for both authentication endpoints.
type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *UserResponse `json:"user,omitempty"`
}

// accountToUserResponse projects a domain.Account onto the wire format.
func accountToUserResponse(account *domain.Account) *UserResponse {
	return &UserResponse{
		ID:     account.ID,
		Email:  account.Email,
		APIKey: account.APIKey,
	}
}
