package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"recordstore/internal/dto"
	apierrors "recordstore/internal/errors"
	"recordstore/internal/services"
)

// ProductHandler coordinates product HTTP handlers.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ListProducts returns all products.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts()
	if err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// CreateProduct creates a new product.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(services.CreateProductInput{
		Name:      req.Name,
		Category:  req.Category,
		Price:     *req.Price,
		Available: req.Available,
	})
	if err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// UpdateProduct applies a partial update to the product named by the
// product_id query parameter.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c.Query("product_id"))
	if !ok {
		apierrors.BadRequest(c, "Invalid product_id")
		return
	}

	var req dto.UpdateProductRequest
	raw, err := bindPatchBody(c, &req)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if field := firstNullField(raw, "name", "category", "price", "available"); field != "" {
		apierrors.BadRequest(c, fmt.Sprintf("Field %s cannot be null", field))
		return
	}

	product, err := h.productService.UpdateProduct(id, services.UpdateProductInput{
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Available: req.Available,
	})
	if err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// DeleteProduct removes a product.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apierrors.BadRequest(c, "Invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Product id: %d deleted", id),
	})
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNameRequired),
		errors.Is(err, services.ErrProductCategoryRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProductNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProductNameTaken),
		errors.Is(err, services.ErrProductCategoryTaken),
		errors.Is(err, services.ErrProductConflict):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
