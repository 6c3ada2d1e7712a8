package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"catalog-service/internal/models"
)

// GetProducts returns all products together with store-wide totals. The
// totals are recomputed on every call rather than read from the denormalized
// counters.
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {object} models.ProductListResponse
// @Router /products [get]
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.repo.GetProducts()
	if err != nil {
		h.respondError(c, err)
		return
	}
	totalProducts, err := h.repo.CountProducts()
	if err != nil {
		h.respondError(c, err)
		return
	}
	totalCategories, err := h.repo.CountCategories()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{
		Success:         true,
		TotalProducts:   totalProducts,
		TotalCategories: totalCategories,
		Products:        products,
	})
}

// CreateProduct creates a new product. The insert, the base price backfill
// and the category recount commit atomically; the admin notification and the
// product.created event run after commit and never fail the request.
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product"
// @Success 201 {object} models.ProductResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product, err := h.serializer.CreateProduct(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.notifyProductCreated(c.Request.Context(), product)
	if h.publisher != nil {
		h.publisher.PublishProductCreated(product)
	}

	c.JSON(http.StatusCreated, models.ProductResponse{Success: true, Data: product})
}

// notifyProductCreated sends the admin notification for a freshly created
// product. Failures are logged and swallowed.
func (h *CatalogHandler) notifyProductCreated(ctx context.Context, product *models.Product) {
	if h.notifier == nil {
		return
	}

	categoryName := ""
	if product.Category != nil {
		categoryName = product.Category.Name
	}
	description := ""
	if product.Description != nil {
		description = *product.Description
	}
	basePrice := decimal.Zero
	if product.BasePrice != nil {
		basePrice = *product.BasePrice
	}

	body := fmt.Sprintf(
		"A new product has been created:\n\nName: %s\nCategory: %s\nDescription: %s\nBase Price: %s",
		product.Name, categoryName, description, basePrice.StringFixed(2),
	)

	notifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := h.notifier.Send(notifyCtx, "New Product Created", body, h.cfg.FromEmail, []string{h.cfg.AdminEmail})
	if err != nil {
		h.logger.WithError(err).WithField("product_id", product.ID).
			Error("failed to send product creation notification")
	}
}

// GetProduct returns a single product by ID with its category embedded
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.repo.GetProductByID(productID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductResponse{Success: true, Data: product})
}

// UpdateProduct applies a partial update to a product. PUT and PATCH share
// this handler.
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ProductResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product, err := h.serializer.UpdateProduct(productID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductResponse{Success: true, Data: product})
}

// DeleteProduct deletes a product with its images, variants and variant
// options.
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.DeleteProductCascade(productID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProductImages lists the images of a product, primary first
// @Summary List product images
// @Tags images
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductImageListResponse
// @Router /products/{id}/images [get]
func (h *CatalogHandler) GetProductImages(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.repo.GetProductByID(productID); err != nil {
		h.respondError(c, err)
		return
	}

	images, err := h.repo.GetProductImages(productID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductImageListResponse{Success: true, Data: images})
}

// CreateProductImage attaches an image to the product in the path
// @Summary Attach an image to a product
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param image body models.CreateProductImageRequest true "Image"
// @Success 201 {object} models.ProductImageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /products/{id}/images [post]
func (h *CatalogHandler) CreateProductImage(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	req.ProductID = productID

	image, err := h.serializer.CreateProductImage(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ProductImageResponse{Success: true, Data: image})
}

// GetProductVariants lists the variants of a product with their options
// @Summary List product variants
// @Tags variants
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductVariantListResponse
// @Router /products/{id}/variants [get]
func (h *CatalogHandler) GetProductVariants(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.repo.GetProductByID(productID); err != nil {
		h.respondError(c, err)
		return
	}

	variants, err := h.repo.GetProductVariants(productID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductVariantListResponse{Success: true, Data: variants})
}

// CreateProductVariant creates a variant of the product in the path
// @Summary Create a product variant
// @Tags variants
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param variant body models.CreateProductVariantRequest true "Variant"
// @Success 201 {object} models.ProductVariantResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /products/{id}/variants [post]
func (h *CatalogHandler) CreateProductVariant(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateProductVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	req.ProductID = productID

	variant, err := h.serializer.CreateProductVariant(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ProductVariantResponse{Success: true, Data: variant})
}
