// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// AdminLoginRequest represents the request body for admin login.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse represents the response for admin login.
type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ResetRequest represents the request body for the data reset.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}
