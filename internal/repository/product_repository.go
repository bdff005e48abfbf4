package repository

import (
	"gorm.io/gorm"

	"recordstore/internal/models"
)

// GormProductRepository is a GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

var _ ProductRepository = (*GormProductRepository)(nil)

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts a new product
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(id uint64) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByName finds a product by name
func (r *GormProductRepository) FindByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByCategory finds a product by category
func (r *GormProductRepository) FindByCategory(category string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("category = ?", category).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll returns every product in natural store order
func (r *GormProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save persists all fields of an existing product
func (r *GormProductRepository) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product
func (r *GormProductRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
