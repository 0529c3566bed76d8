package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product. Names must be unique among live
// products, compared case-insensitively and trimmed; the check is performed
// by the service layer since soft-deleted rows may legitimately reuse a name.
type Product struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	Name        string             `json:"name" gorm:"not null"`
	Description *string            `json:"description"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `json:"-" gorm:"index"`
	Attributes  []ProductAttribute `json:"attributes,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
