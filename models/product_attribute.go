package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductAttribute is a key/value pair owned by a product. CreatedAt is not
// auto-stamped: it carries the parent product's created_at (on create) or
// updated_at (on replacement), so a whole attribute set shares one timestamp.
type ProductAttribute struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ProductID uint           `json:"product_id" gorm:"index;not null"`
	Key       string         `json:"key" gorm:"not null"`
	Value     *string        `json:"value"`
	CreatedAt time.Time      `json:"created_at" gorm:"<-:create"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
