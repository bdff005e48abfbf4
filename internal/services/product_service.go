package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"recordstore/internal/models"
	"recordstore/internal/repository"
)

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrProductNameRequired     = errors.New("product name cannot be empty")
	ErrProductCategoryRequired = errors.New("product category cannot be empty")
	ErrProductNameTaken        = errors.New("product name already exists")
	ErrProductCategoryTaken    = errors.New("product category already exists")
	ErrProductConflict         = errors.New("product name or category already exists")
)

// ProductService handles product business logic
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a new ProductService
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProductInput represents input for creating a product
type CreateProductInput struct {
	Name      string
	Category  string
	Price     int64
	Available *bool
}

// UpdateProductInput represents input for updating a product. Nil fields
// were not supplied and are left untouched.
type UpdateProductInput struct {
	Name      *string
	Category  *string
	Price     *int64
	Available *bool
}

// CreateProduct inserts a new product. Availability defaults to true.
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, ErrProductCategoryRequired
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	var product *models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		products := repository.NewProductRepository(tx)

		if err := ensureProductUnique(products, name, category, 0); err != nil {
			return err
		}

		product = &models.Product{
			Name:      name,
			Category:  category,
			Price:     input.Price,
			Available: available,
		}
		if err := products.Create(product); err != nil {
			// A concurrent insert can slip past the pre-check; the unique
			// indexes are the backstop.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrProductConflict
			}
			return fmt.Errorf("failed to create product: %w", err)
		}

		created, err := products.FindByID(product.ID)
		if err != nil {
			return fmt.Errorf("failed to reload product: %w", err)
		}
		product = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies the supplied fields to an existing product.
func (s *ProductService) UpdateProduct(id uint64, input UpdateProductInput) (*models.Product, error) {
	var product *models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		products := repository.NewProductRepository(tx)

		found, err := products.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrProductNotFound, id)
			}
			return fmt.Errorf("failed to find product: %w", err)
		}
		product = found

		newName := product.Name
		newCategory := product.Category

		if input.Name != nil {
			newName = strings.TrimSpace(*input.Name)
			if newName == "" {
				return ErrProductNameRequired
			}
		}
		if input.Category != nil {
			newCategory = strings.TrimSpace(*input.Category)
			if newCategory == "" {
				return ErrProductCategoryRequired
			}
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Available != nil {
			product.Available = *input.Available
		}

		if err := ensureProductUnique(products, newName, newCategory, product.ID); err != nil {
			return err
		}
		product.Name = newName
		product.Category = newCategory

		if err := products.Save(product); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrProductConflict
			}
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts returns all products.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	products, err := repository.NewProductRepository(s.db).FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// DeleteProduct removes a product.
func (s *ProductService) DeleteProduct(id uint64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return repository.NewProductRepository(tx).Delete(id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// ensureProductUnique checks the name and category uniqueness invariants,
// ignoring the row identified by selfID.
func ensureProductUnique(products repository.ProductRepository, name, category string, selfID uint64) error {
	existing, err := products.FindByName(name)
	if err == nil && existing.ID != selfID {
		return ErrProductNameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check product name: %w", err)
	}

	existing, err = products.FindByCategory(category)
	if err == nil && existing.ID != selfID {
		return ErrProductCategoryTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check product category: %w", err)
	}

	return nil
}
