package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/models"
)

// GetProductImage returns a single image by ID with its product embedded
// @Summary Get an image
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} models.ProductImageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /images/{id} [get]
func (h *CatalogHandler) GetProductImage(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	image, err := h.repo.GetProductImageByID(imageID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductImageResponse{Success: true, Data: image})
}

// UpdateProductImage applies a partial update to an image
// @Summary Update an image
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Image ID"
// @Param image body models.UpdateProductImageRequest true "Fields to update"
// @Success 200 {object} models.ProductImageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /images/{id} [put]
func (h *CatalogHandler) UpdateProductImage(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	image, err := h.serializer.UpdateProductImage(imageID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductImageResponse{Success: true, Data: image})
}

// DeleteProductImage deletes an image
// @Summary Delete an image
// @Tags images
// @Param id path int true "Image ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /images/{id} [delete]
func (h *CatalogHandler) DeleteProductImage(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteProductImage(imageID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
