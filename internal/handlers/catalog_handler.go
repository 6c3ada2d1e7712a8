package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-service/internal/clients"
	"catalog-service/internal/config"
	"catalog-service/internal/events"
	"catalog-service/internal/models"
	"catalog-service/internal/repository"
	"catalog-service/internal/serializers"
)

// CatalogHandler serves the catalog HTTP API. The publisher and notifier are
// optional; a nil value disables that side effect.
type CatalogHandler struct {
	repo       *repository.CatalogRepository
	serializer *serializers.CatalogSerializer
	notifier   clients.NotificationSender
	publisher  *events.Publisher
	cfg        *config.Config
	logger     *logrus.Entry
}

func NewCatalogHandler(repo *repository.CatalogRepository, notifier clients.NotificationSender, publisher *events.Publisher, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		repo:       repo,
		serializer: serializers.NewCatalogSerializer(repo),
		notifier:   notifier,
		publisher:  publisher,
		cfg:        cfg,
		logger:     logrus.WithField("component", "catalog_handler"),
	}
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "Invalid identifier: " + raw,
			},
		})
		return 0, false
	}
	return uint(id), true
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "VALIDATION_ERROR",
			Message: message,
		},
	})
}

// respondError translates layered errors into the response envelope:
// validation failures and constraint violations map to 400, missing rows to
// 404, everything else to 500.
func (h *CatalogHandler) respondError(c *gin.Context, err error) {
	var fieldErrs models.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "Validation failed",
				Fields:  fieldErrs,
			},
		})
		return
	}

	var constraintErr *repository.ConstraintError
	if errors.As(err, &constraintErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: constraintErr.Message,
				Fields: []models.FieldError{
					{Field: constraintErr.Field, Message: constraintErr.Message},
				},
			},
		})
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Resource not found",
			},
		})
		return
	}

	h.logger.WithError(err).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "INTERNAL_ERROR",
			Message: "An internal error occurred",
		},
	})
}
