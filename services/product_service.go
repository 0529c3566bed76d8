package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/prodcat-api/lib/cache"
	"github.com/prodcat-api/models"
	"github.com/prodcat-api/repositories"
	"github.com/prodcat-api/validation"
)

// ProductService handles business logic for products: validation,
// case-insensitive name uniqueness, attribute replacement and the cascading
// soft-delete. Missing products surface as gorm.ErrRecordNotFound so the
// HTTP layer can map them to 404 responses.
type ProductService struct {
	productRepo *repositories.ProductRepository
}

// NewProductService creates a new product service instance
func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

// List retrieves every live product, attributes not embedded. Served from
// the Redis cache when warm.
func (s *ProductService) List() ([]models.Product, error) {
	ctx := context.Background()
	if products, ok := cache.Default().GetProducts(ctx); ok {
		return products, nil
	}

	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	cache.Default().SetProducts(ctx, products)
	return products, nil
}

// Get retrieves a live product without its attributes
func (s *ProductService) Get(id uint) (models.Product, error) {
	return s.productRepo.FindByID(id)
}

// Attributes retrieves a live product's live attributes
func (s *ProductService) Attributes(id uint) ([]models.ProductAttribute, error) {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return nil, err
	}
	return s.productRepo.FindAttributes(id)
}

// Create validates the input and persists a new product, plus its attribute
// set when one was supplied. Each attribute is stamped with the product's
// creation time. Validation failures come back as field-keyed errors.
func (s *ProductService) Create(input map[string]any) (models.Product, validation.Errors, error) {
	v := validation.New().
		Field("name", validation.Required(), validation.String(), validation.Unique(s.nameTaken)).
		Field("description", validation.String()).
		Field("attributes", validation.Array()).
		Field("attributes.*.key", validation.RequiredWith("attributes"), validation.Distinct()).
		Field("attributes.*.value", validation.String()).
		Messages(map[string]string{
			"name.required": "Missing product name.",
			"name.unique":   "Product already exists.",
		})

	if errs := v.Validate(input); errs.Any() {
		return models.Product{}, errs, nil
	}

	product := models.Product{
		Name:        stringField(input, "name"),
		Description: optionalString(input, "description"),
	}

	product, err := s.productRepo.Create(product)
	if err != nil {
		return models.Product{}, nil, err
	}

	if elements, supplied := attributeElements(input); supplied {
		attributes := buildAttributes(product.ID, product.CreatedAt, elements)
		attributes, err = s.productRepo.CreateAttributes(attributes)
		if err != nil {
			return models.Product{}, nil, err
		}
		product.Attributes = attributes
	}

	cache.Default().InvalidateProducts(context.Background())
	return product, nil, nil
}

// Update applies the supplied fields to an existing product. The name
// uniqueness check is skipped when the submitted name matches the current
// one (trimmed, case-insensitive). When the attributes key was supplied the
// whole set is replaced, stamped with the product's update time; when it was
// omitted the existing set is untouched.
func (s *ProductService) Update(id uint, input map[string]any) (models.Product, validation.Errors, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return models.Product{}, nil, err
	}

	v := validation.New().
		Field("name", validation.String()).
		Field("description", validation.String()).
		Field("attributes", validation.Array()).
		Field("attributes.*.key", validation.RequiredWith("attributes"), validation.Distinct()).
		Field("attributes.*.value", validation.String())

	if errs := v.Validate(input); errs.Any() {
		return models.Product{}, errs, nil
	}

	changed := false

	// A blank name counts as not supplied; products can never be renamed
	// to an empty string.
	if name, ok := input["name"].(string); ok && strings.TrimSpace(name) != "" {
		if !strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(product.Name)) {
			taken, err := s.productRepo.NameExists(name)
			if err != nil {
				return models.Product{}, nil, err
			}
			if taken {
				return models.Product{}, validation.Errors{"name": {"Product already exists."}}, nil
			}
		}
		if name != product.Name {
			product.Name = name
			changed = true
		}
	}

	if raw, ok := input["description"]; ok {
		if value, ok := raw.(string); ok {
			if product.Description == nil || *product.Description != value {
				product.Description = &value
				changed = true
			}
		} else if product.Description != nil {
			product.Description = nil
			changed = true
		}
	}

	// Only a real field change touches the row, so a no-op update does not
	// bump updated_at.
	if changed {
		if err := s.productRepo.Save(&product); err != nil {
			return models.Product{}, nil, err
		}
	}

	if elements, supplied := attributeElements(input); supplied {
		attributes := buildAttributes(product.ID, product.UpdatedAt, elements)
		attributes, err = s.productRepo.ReplaceAttributes(product.ID, attributes)
		if err != nil {
			return models.Product{}, nil, err
		}
		product.Attributes = attributes
	}

	cache.Default().InvalidateProducts(context.Background())
	return product, nil, nil
}

// Delete soft-deletes a product and cascades the soft-delete to its
// attributes.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	cache.Default().InvalidateProducts(context.Background())
	return nil
}

// nameTaken backs the unique rule on create. Lookup errors count as "not
// taken": the create itself will surface the database problem.
func (s *ProductService) nameTaken(name string) bool {
	taken, err := s.productRepo.NameExists(name)
	if err != nil {
		log.Printf("product name lookup failed: %v", err)
		return false
	}
	return taken
}

// buildAttributes maps validated attribute elements to records sharing the
// parent product's timestamp.
func buildAttributes(productID uint, stamp time.Time, elements []any) []models.ProductAttribute {
	attributes := make([]models.ProductAttribute, 0, len(elements))
	for _, element := range elements {
		em, _ := element.(map[string]any)
		attribute := models.ProductAttribute{
			ProductID: productID,
			Key:       stringify(em["key"]),
			CreatedAt: stamp,
		}
		if value, ok := em["value"].(string); ok {
			attribute.Value = &value
		}
		attributes = append(attributes, attribute)
	}
	return attributes
}

// stringify renders a validated attribute key as text. Keys only have to be
// present and distinct, so numeric and boolean keys are stored in their
// string form rather than dropped.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
