package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recordstore/internal/dto"
	"recordstore/internal/models"
	"recordstore/internal/services"
)

type productTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupProductTestEnv(t *testing.T) productTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Product{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewProductHandler(services.NewProductService(db))
	router.GET("/products", handler.ListProducts)
	router.POST("/products", handler.CreateProduct)
	router.PATCH("/products", handler.UpdateProduct)
	router.DELETE("/products/:id", handler.DeleteProduct)

	return productTestEnv{db: db, router: router}
}

func (env productTestEnv) do(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestProductHandler_CreateProduct(t *testing.T) {
	env := setupProductTestEnv(t)

	w := env.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":     "widget",
		"category": "hardware",
		"price":    1500,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	require.Equal(t, "widget", response.Name)
	require.Equal(t, "hardware", response.Category)
	require.EqualValues(t, 1500, response.Price)
	require.True(t, response.Available, "availability defaults to true")
	require.False(t, response.CreatedAt.IsZero())
}

func TestProductHandler_CreateProduct_ZeroPrice(t *testing.T) {
	env := setupProductTestEnv(t)

	// A free product is still a valid product.
	w := env.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":     "sampler",
		"category": "promo",
		"price":    0,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Zero(t, response.Price)
	require.Equal(t, "sampler", response.Name)
}

func TestProductHandler_CreateProduct_MissingPrice(t *testing.T) {
	env := setupProductTestEnv(t)

	w := env.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":     "sampler",
		"category": "promo",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, "INVALID_INPUT", apiErr["code"])
}

func TestProductHandler_CreateProduct_DuplicateCategory(t *testing.T) {
	env := setupProductTestEnv(t)

	w := env.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":     "widget",
		"category": "hardware",
		"price":    1500,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Category is unique across products, stricter than task categories.
	w = env.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":     "gadget",
		"category": "hardware",
		"price":    900,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, "CONFLICT", apiErr["code"])
}

func TestProductHandler_UpdateProduct_ByQueryParam(t *testing.T) {
	env := setupProductTestEnv(t)

	w := env.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":      "widget",
		"category":  "hardware",
		"price":     1500,
		"available": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPatch, "/products?product_id=1", map[string]interface{}{
		"price":     1200,
		"available": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.EqualValues(t, 1200, response.Price)
	require.False(t, response.Available)
	require.Equal(t, "widget", response.Name, "unsupplied fields survive unchanged")
	require.Equal(t, "hardware", response.Category)
}

func TestProductHandler_UpdateProduct_MissingQueryParam(t *testing.T) {
	env := setupProductTestEnv(t)

	w := env.do(t, http.MethodPatch, "/products", map[string]interface{}{
		"price": 1200,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_UpdateProduct_NotFound(t *testing.T) {
	env := setupProductTestEnv(t)

	w := env.do(t, http.MethodPatch, "/products?product_id=42", map[string]interface{}{
		"price": 1200,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, "NOT_FOUND", apiErr["code"])
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	env := setupProductTestEnv(t)

	w := env.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":     "widget",
		"category": "hardware",
		"price":    1500,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/products/1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondProductError_DuplicateKeyBackstop(t *testing.T) {
	// A concurrent insert surfaces as ErrProductConflict from the service
	// layer; it must map to the same conflict response as the pre-check.
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondProductError(c, services.ErrProductConflict)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, "CONFLICT", apiErr["code"])
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"health":"Good"}`, w.Body.String())
}
