package repositories

import (
	"time"

	"github.com/prodcat-api/database"
	"github.com/prodcat-api/models"
)

// AccessTokenRepository handles database operations for bearer tokens
type AccessTokenRepository struct{}

// NewAccessTokenRepository creates a new access token repository instance
func NewAccessTokenRepository() *AccessTokenRepository {
	return &AccessTokenRepository{}
}

// Create inserts a new token row
func (r *AccessTokenRepository) Create(token models.AccessToken) (models.AccessToken, error) {
	result := database.DB.Create(&token)
	return token, result.Error
}

// FindByID retrieves a token by its row ID
func (r *AccessTokenRepository) FindByID(id uint) (models.AccessToken, error) {
	var token models.AccessToken
	result := database.DB.First(&token, "id = ?", id)
	return token, result.Error
}

// Touch records when the token was last presented
func (r *AccessTokenRepository) Touch(id uint) error {
	now := time.Now()
	return database.DB.Model(&models.AccessToken{}).
		Where("id = ?", id).
		Update("last_used_at", &now).Error
}

// DeleteByUserID revokes every token the user holds
func (r *AccessTokenRepository) DeleteByUserID(userID uint) error {
	return database.DB.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}
