package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"catalog-service/internal/config"
	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func seedOptionValue(t *testing.T, repo *repository.CatalogRepository) (uint, uint) {
	t.Helper()
	optionType := &models.OptionType{Name: "Color"}
	require.NoError(t, repo.CreateOptionType(optionType))
	optionValue := &models.OptionValue{OptionTypeID: optionType.ID, Value: "Red"}
	require.NoError(t, repo.CreateOptionValue(optionValue))
	return optionType.ID, optionValue.ID
}

type sentNotification struct {
	Subject string
	Body    string
	From    string
	To      []string
}

// fakeNotifier records notifications and optionally fails every send.
type fakeNotifier struct {
	sent    []sentNotification
	sendErr error
}

func (f *fakeNotifier) Send(ctx context.Context, subject, body, from string, to []string) error {
	f.sent = append(f.sent, sentNotification{Subject: subject, Body: body, From: from, To: to})
	return f.sendErr
}

func setupTestServer(t *testing.T, notifier *fakeNotifier) (*gin.Engine, *repository.CatalogRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))

	repo := repository.NewCatalogRepository(db, nil)
	cfg := &config.Config{
		AdminEmail: "admin@example.com",
		FromEmail:  "catalog@example.com",
	}

	handler := NewCatalogHandler(repo, notifier, nil, cfg)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", handler.GetCategories)
		v1.POST("/categories", handler.CreateCategory)
		v1.GET("/categories/:id", handler.GetCategory)
		v1.PATCH("/categories/:id", handler.UpdateCategory)
		v1.DELETE("/categories/:id", handler.DeleteCategory)

		v1.GET("/products", handler.GetProducts)
		v1.POST("/products", handler.CreateProduct)
		v1.GET("/products/:id", handler.GetProduct)
		v1.PATCH("/products/:id", handler.UpdateProduct)
		v1.DELETE("/products/:id", handler.DeleteProduct)
		v1.GET("/products/:id/images", handler.GetProductImages)
		v1.POST("/products/:id/images", handler.CreateProductImage)
		v1.GET("/products/:id/variants", handler.GetProductVariants)
		v1.POST("/products/:id/variants", handler.CreateProductVariant)

		v1.GET("/variants/:id", handler.GetProductVariant)
		v1.POST("/variants/:id/options", handler.CreateVariantOption)
		v1.DELETE("/variant-options/:id", handler.DeleteVariantOption)
	}
	router.GET("/health", handler.Health)

	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createCategory(t *testing.T, router *gin.Engine, name string) uint {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/categories", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

func TestCreateProductWorkflow(t *testing.T) {
	notifier := &fakeNotifier{}
	router, repo := setupTestServer(t, notifier)
	categoryID := createCategory(t, router, "Shoes")

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name":        "Sneaker",
		"category_id": categoryID,
		"description": "Classic low-top",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Sneaker", data["name"])
	assert.Equal(t, "0", data["base_price"])
	category := data["category"].(map[string]interface{})
	assert.Equal(t, "Shoes", category["name"])

	// Aggregate maintained within the creation transaction.
	stored, err := repo.GetCategoryByID(categoryID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ProductCount)

	// Admin notification sent after commit.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "New Product Created", notifier.sent[0].Subject)
	assert.Contains(t, notifier.sent[0].Body, "Sneaker")
	assert.Contains(t, notifier.sent[0].Body, "Shoes")
	assert.Contains(t, notifier.sent[0].Body, "0.00")
	assert.Equal(t, "catalog@example.com", notifier.sent[0].From)
	assert.Equal(t, []string{"admin@example.com"}, notifier.sent[0].To)
}

func TestCreateProductNotificationFailureDoesNotFailRequest(t *testing.T) {
	notifier := &fakeNotifier{sendErr: errors.New("smtp down")}
	router, _ := setupTestServer(t, notifier)
	categoryID := createCategory(t, router, "Shoes")

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name":        "Sneaker",
		"category_id": categoryID,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, notifier.sent, 1)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	router, _ := setupTestServer(t, &fakeNotifier{})

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name":        "Ghost",
		"category_id": 999,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	fields := errObj["fields"].([]interface{})
	field := fields[0].(map[string]interface{})
	assert.Equal(t, "category_id", field["field"])
	assert.Equal(t, "Category not found.", field["message"])
}

func TestCreateProductValidationErrors(t *testing.T) {
	router, _ := setupTestServer(t, &fakeNotifier{})

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name":        "",
		"category_id": 0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	errObj := body["error"].(map[string]interface{})
	fields := errObj["fields"].([]interface{})
	assert.Len(t, fields, 2)
}

func TestGetProductsWithTotals(t *testing.T) {
	router, _ := setupTestServer(t, &fakeNotifier{})
	shoes := createCategory(t, router, "Shoes")
	createCategory(t, router, "Hats")

	for _, name := range []string{"Sneaker", "Boot"} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
			"name":        name,
			"category_id": shoes,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total_products"])
	assert.Equal(t, float64(2), body["total_categories"])
	products := body["products"].([]interface{})
	assert.Len(t, products, 2)
}

func TestGetProductNotFound(t *testing.T) {
	router, _ := setupTestServer(t, &fakeNotifier{})

	w := doJSON(t, router, http.MethodGet, "/api/v1/products/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}

func TestDeleteCategoryReturnsNoContent(t *testing.T) {
	router, repo := setupTestServer(t, &fakeNotifier{})
	categoryID := createCategory(t, router, "Shoes")

	w := doJSON(t, router, http.MethodDelete, "/api/v1/categories/"+itoa(categoryID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	_, err := repo.GetCategoryByID(categoryID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestCreateImageOnProductFromPath(t *testing.T) {
	router, _ := setupTestServer(t, &fakeNotifier{})
	categoryID := createCategory(t, router, "Shoes")

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name":        "Sneaker",
		"category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	productID := uint(decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, router, http.MethodPost, "/api/v1/products/"+itoa(productID)+"/images", gin.H{
		"url":        "https://cdn.example.com/snk.jpg",
		"is_primary": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(productID), data["product_id"])
	assert.Equal(t, true, data["is_primary"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/products/"+itoa(productID)+"/images", gin.H{
		"url": "nope",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errObj := decodeBody(t, w)["error"].(map[string]interface{})
	fields := errObj["fields"].([]interface{})
	field := fields[0].(map[string]interface{})
	assert.Equal(t, "Enter a valid URL.", field["message"])
}

func TestVariantOptionLifecycle(t *testing.T) {
	router, repo := setupTestServer(t, &fakeNotifier{})
	categoryID := createCategory(t, router, "Shoes")

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name":        "Sneaker",
		"category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	productID := uint(decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, router, http.MethodPost, "/api/v1/products/"+itoa(productID)+"/variants", gin.H{
		"sku":            "SNK-001",
		"stock_quantity": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	variantID := uint(decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64))

	_, optionValueID := seedOptionValue(t, repo)

	w = doJSON(t, router, http.MethodPost, "/api/v1/variants/"+itoa(variantID)+"/options", gin.H{
		"option_value_id": optionValueID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	optionID := uint(decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64))

	// A second identical assignment is rejected with the exact message.
	w = doJSON(t, router, http.MethodPost, "/api/v1/variants/"+itoa(variantID)+"/options", gin.H{
		"option_value_id": optionValueID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errObj := decodeBody(t, w)["error"].(map[string]interface{})
	fields := errObj["fields"].([]interface{})
	field := fields[0].(map[string]interface{})
	assert.Equal(t, "This option has already been assigned to the variant.", field["message"])

	w = doJSON(t, router, http.MethodDelete, "/api/v1/variant-options/"+itoa(optionID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHealth(t *testing.T) {
	router, _ := setupTestServer(t, &fakeNotifier{})

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
