package models

import "encoding/json"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register. The backend names the
// display name "username".
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse holds the fields the client reads from an auth response.
// Anything else the backend sends is left in the raw body.
type AuthResponse struct {
	Token       string          `json:"token,omitempty"`
	AccessToken string          `json:"access_token,omitempty"`
	Message     string          `json:"message,omitempty"`
	User        json.RawMessage `json:"user,omitempty"`
}

// SessionToken returns token, falling back to access_token.
func (r AuthResponse) SessionToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// ErrorResponse is the body shape the backend uses for failures.
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
}
