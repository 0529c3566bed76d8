package dto

import "github.com/prodcat-api/models"

// AuthResponse is returned by register and login: the account plus a fresh
// plain text bearer token.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}
