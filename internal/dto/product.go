package dto

import (
	"time"

	"recordstore/internal/models"
)

// CreateProductRequest is the payload for POST /products. Price is a
// pointer so a zero price still satisfies the presence check.
type CreateProductRequest struct {
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category" binding:"required"`
	Price     *int64 `json:"price" binding:"required"`
	Available *bool  `json:"available"`
}

// UpdateProductRequest is the payload for PATCH /products?product_id=
type UpdateProductRequest struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	Price     *int64  `json:"price"`
	Available *bool   `json:"available"`
}

// ProductResponse is the projection of a stored product
type ProductResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     int64     `json:"price"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProductResponse converts a Product model to ProductResponse
func ToProductResponse(product models.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Available: product.Available,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ToProductResponse(product)
	}
	return responses
}
