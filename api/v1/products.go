package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prodcat-api/dto"
	"github.com/prodcat-api/services"
	"gorm.io/gorm"
)

var productService = services.NewProductService()

// ListProducts returns every live product, attributes not embedded
func ListProducts(c *gin.Context) {
	products, err := productService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve products.",
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product without its attributes
func GetProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		productNotFound(c, "Cannot find product.")
		return
	}

	product, err := productService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			productNotFound(c, "Cannot find product.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve product.",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetProductAttributes returns a product's live attributes
func GetProductAttributes(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		productNotFound(c, "Cannot find product.")
		return
	}

	attributes, err := productService.Attributes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			productNotFound(c, "Cannot find product.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve product attributes.",
		})
		return
	}

	c.JSON(http.StatusOK, attributes)
}

// CreateProduct stores a new product and its attributes if specified
func CreateProduct(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewFieldError("Cannot create product.", "body", "Invalid request body."))
		return
	}

	product, verrs, err := productService.Create(body)
	if verrs.Any() {
		c.JSON(http.StatusBadRequest, dto.NewError("Cannot create product.", verrs))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create product.",
		})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct applies supplied fields and replaces the attribute set when
// one was supplied
func UpdateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		productNotFound(c, "Cannot update product.")
		return
	}

	body, ok := bindBody(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewFieldError("Cannot update product.", "body", "Invalid request body."))
		return
	}

	product, verrs, err := productService.Update(id, body)
	if verrs.Any() {
		c.JSON(http.StatusBadRequest, dto.NewError("Cannot update product.", verrs))
		return
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			productNotFound(c, "Cannot update product.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update product.",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct soft-deletes a product and its attributes
func DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		productNotFound(c, "Cannot delete product.")
		return
	}

	if err := productService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			productNotFound(c, "Cannot delete product.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete product.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted.",
	})
}

func productNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewFieldError(message, "id", "Product does not exist."))
}
