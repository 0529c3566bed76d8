package models

import (
	"time"
)

// AccessToken is an opaque bearer token issued on register/login. Only a
// SHA-256 hash of the secret is stored; the plain text form "<id>|<secret>"
// leaves the server exactly once, in the issuing response. Revocation removes
// the row, so a token is valid for as long as it exists here.
type AccessToken struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"index;not null"`
	Name       string     `json:"name" gorm:"not null"`
	TokenHash  string     `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}
