package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/models"
)

// GetProductVariant returns a single variant by ID with its product and
// options embedded
// @Summary Get a variant
// @Tags variants
// @Produce json
// @Param id path int true "Variant ID"
// @Success 200 {object} models.ProductVariantResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /variants/{id} [get]
func (h *CatalogHandler) GetProductVariant(c *gin.Context) {
	variantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	variant, err := h.repo.GetProductVariantByID(variantID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductVariantResponse{Success: true, Data: variant})
}

// UpdateProductVariant applies a partial update to a variant
// @Summary Update a variant
// @Tags variants
// @Accept json
// @Produce json
// @Param id path int true "Variant ID"
// @Param variant body models.UpdateProductVariantRequest true "Fields to update"
// @Success 200 {object} models.ProductVariantResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /variants/{id} [put]
func (h *CatalogHandler) UpdateProductVariant(c *gin.Context) {
	variantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProductVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	variant, err := h.serializer.UpdateProductVariant(variantID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductVariantResponse{Success: true, Data: variant})
}

// DeleteProductVariant deletes a variant and its option assignments
// @Summary Delete a variant
// @Tags variants
// @Param id path int true "Variant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /variants/{id} [delete]
func (h *CatalogHandler) DeleteProductVariant(c *gin.Context) {
	variantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.DeleteProductVariantCascade(variantID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetVariantOptions lists the option assignments of a variant
// @Summary List variant options
// @Tags variants
// @Produce json
// @Param id path int true "Variant ID"
// @Success 200 {object} models.VariantOptionListResponse
// @Router /variants/{id}/options [get]
func (h *CatalogHandler) GetVariantOptions(c *gin.Context) {
	variantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.repo.GetProductVariantByID(variantID); err != nil {
		h.respondError(c, err)
		return
	}

	variantOptions, err := h.repo.GetVariantOptions(variantID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.VariantOptionListResponse{Success: true, Data: variantOptions})
}

// CreateVariantOption assigns an option value to the variant in the path
// @Summary Assign an option value to a variant
// @Tags variants
// @Accept json
// @Produce json
// @Param id path int true "Variant ID"
// @Param option body models.CreateVariantOptionRequest true "Option assignment"
// @Success 201 {object} models.VariantOptionResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /variants/{id}/options [post]
func (h *CatalogHandler) CreateVariantOption(c *gin.Context) {
	variantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateVariantOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	req.VariantID = variantID

	variantOption, err := h.serializer.CreateVariantOption(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.VariantOptionResponse{Success: true, Data: variantOption})
}

// DeleteVariantOption removes an option assignment from its variant
// @Summary Unassign an option value from a variant
// @Tags variants
// @Param id path int true "Variant option ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /variant-options/{id} [delete]
func (h *CatalogHandler) DeleteVariantOption(c *gin.Context) {
	variantOptionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteVariantOption(variantOptionID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
