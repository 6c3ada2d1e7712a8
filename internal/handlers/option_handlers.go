package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/models"
)

// Option types

// GetOptionTypes returns all option types
// @Summary List option types
// @Tags options
// @Produce json
// @Success 200 {object} models.OptionTypeListResponse
// @Router /option-types [get]
func (h *CatalogHandler) GetOptionTypes(c *gin.Context) {
	optionTypes, err := h.repo.GetOptionTypes()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OptionTypeListResponse{Success: true, Data: optionTypes})
}

// CreateOptionType creates a new option type
// @Summary Create an option type
// @Tags options
// @Accept json
// @Produce json
// @Param optionType body models.CreateOptionTypeRequest true "Option type"
// @Success 201 {object} models.OptionTypeResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /option-types [post]
func (h *CatalogHandler) CreateOptionType(c *gin.Context) {
	var req models.CreateOptionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	optionType, err := h.serializer.CreateOptionType(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.OptionTypeResponse{Success: true, Data: optionType})
}

// GetOptionType returns a single option type by ID
// @Summary Get an option type
// @Tags options
// @Produce json
// @Param id path int true "Option type ID"
// @Success 200 {object} models.OptionTypeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /option-types/{id} [get]
func (h *CatalogHandler) GetOptionType(c *gin.Context) {
	optionTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	optionType, err := h.repo.GetOptionTypeByID(optionTypeID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OptionTypeResponse{Success: true, Data: optionType})
}

// UpdateOptionType renames an option type
// @Summary Update an option type
// @Tags options
// @Accept json
// @Produce json
// @Param id path int true "Option type ID"
// @Param optionType body models.UpdateOptionTypeRequest true "Fields to update"
// @Success 200 {object} models.OptionTypeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /option-types/{id} [put]
func (h *CatalogHandler) UpdateOptionType(c *gin.Context) {
	optionTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateOptionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	optionType, err := h.serializer.UpdateOptionType(optionTypeID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OptionTypeResponse{Success: true, Data: optionType})
}

// DeleteOptionType deletes an option type with its values and every variant
// option referencing them.
// @Summary Delete an option type
// @Tags options
// @Param id path int true "Option type ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /option-types/{id} [delete]
func (h *CatalogHandler) DeleteOptionType(c *gin.Context) {
	optionTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.DeleteOptionTypeCascade(optionTypeID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Option values

// GetOptionValues returns all option values with their types embedded
// @Summary List option values
// @Tags options
// @Produce json
// @Success 200 {object} models.OptionValueListResponse
// @Router /option-values [get]
func (h *CatalogHandler) GetOptionValues(c *gin.Context) {
	optionValues, err := h.repo.GetOptionValues()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OptionValueListResponse{Success: true, Data: optionValues})
}

// CreateOptionValue creates a new option value
// @Summary Create an option value
// @Tags options
// @Accept json
// @Produce json
// @Param optionValue body models.CreateOptionValueRequest true "Option value"
// @Success 201 {object} models.OptionValueResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /option-values [post]
func (h *CatalogHandler) CreateOptionValue(c *gin.Context) {
	var req models.CreateOptionValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	optionValue, err := h.serializer.CreateOptionValue(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.OptionValueResponse{Success: true, Data: optionValue})
}

// GetOptionValue returns a single option value by ID
// @Summary Get an option value
// @Tags options
// @Produce json
// @Param id path int true "Option value ID"
// @Success 200 {object} models.OptionValueResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /option-values/{id} [get]
func (h *CatalogHandler) GetOptionValue(c *gin.Context) {
	optionValueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	optionValue, err := h.repo.GetOptionValueByID(optionValueID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OptionValueResponse{Success: true, Data: optionValue})
}

// UpdateOptionValue applies a partial update to an option value
// @Summary Update an option value
// @Tags options
// @Accept json
// @Produce json
// @Param id path int true "Option value ID"
// @Param optionValue body models.UpdateOptionValueRequest true "Fields to update"
// @Success 200 {object} models.OptionValueResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /option-values/{id} [put]
func (h *CatalogHandler) UpdateOptionValue(c *gin.Context) {
	optionValueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateOptionValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	optionValue, err := h.serializer.UpdateOptionValue(optionValueID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OptionValueResponse{Success: true, Data: optionValue})
}

// DeleteOptionValue deletes an option value and every variant option
// referencing it.
// @Summary Delete an option value
// @Tags options
// @Param id path int true "Option value ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /option-values/{id} [delete]
func (h *CatalogHandler) DeleteOptionValue(c *gin.Context) {
	optionValueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.DeleteOptionValueCascade(optionValueID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
