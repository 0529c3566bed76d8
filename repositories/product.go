package repositories

import (
	"strings"

	"github.com/prodcat-api/database"
	"github.com/prodcat-api/models"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for products and their
// attributes. The gorm soft-delete scope keeps tombstoned rows out of every
// read here; callers never see deleted products or attributes.
type ProductRepository struct{}

// NewProductRepository creates a new product repository instance
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindAll retrieves all live products, attributes not included
func (r *ProductRepository) FindAll() ([]models.Product, error) {
	products := make([]models.Product, 0)
	result := database.DB.Find(&products)
	return products, result.Error
}

// FindByID retrieves a live product by its ID
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	result := database.DB.First(&product, "id = ?", id)
	return product, result.Error
}

// NameExists reports whether a live product already holds the name,
// compared trimmed and case-insensitively.
func (r *ProductRepository) NameExists(name string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Product{}).
		Where("LOWER(TRIM(name)) = ?", strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new product into the database
func (r *ProductRepository) Create(product models.Product) (models.Product, error) {
	result := database.DB.Create(&product)
	return product, result.Error
}

// Save persists field changes to an existing product
func (r *ProductRepository) Save(product *models.Product) error {
	return database.DB.Save(product).Error
}

// FindAttributes retrieves a product's live attributes
func (r *ProductRepository) FindAttributes(productID uint) ([]models.ProductAttribute, error) {
	attributes := make([]models.ProductAttribute, 0)
	result := database.DB.Where("product_id = ?", productID).Find(&attributes)
	return attributes, result.Error
}

// CreateAttributes inserts a batch of attributes for a product
func (r *ProductRepository) CreateAttributes(attributes []models.ProductAttribute) ([]models.ProductAttribute, error) {
	if len(attributes) == 0 {
		return attributes, nil
	}
	result := database.DB.Create(&attributes)
	return attributes, result.Error
}

// ReplaceAttributes soft-deletes every live attribute of the product and
// inserts the new set in one transaction, so a failure cannot leave the
// product half-replaced.
func (r *ProductRepository) ReplaceAttributes(productID uint, attributes []models.ProductAttribute) ([]models.ProductAttribute, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductAttribute{}).Error; err != nil {
			return err
		}
		if len(attributes) == 0 {
			return nil
		}
		return tx.Create(&attributes).Error
	})
	return attributes, err
}

// Delete soft-deletes a product and cascades the soft-delete to its
// attributes inside one transaction.
func (r *ProductRepository) Delete(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductAttribute{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}
