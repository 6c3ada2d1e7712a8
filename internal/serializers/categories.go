package serializers

import (
	"strings"

	"catalog-service/internal/models"
)

// CreateCategory validates and persists a new category.
func (s *CatalogSerializer) CreateCategory(req *models.CreateCategoryRequest) (*models.Category, error) {
	var errs models.FieldErrors
	if isBlank(req.Name) {
		errs = errs.Add("name", "Category name is required.")
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := s.repo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory validates the supplied fields and applies a partial update.
func (s *CatalogSerializer) UpdateCategory(categoryID uint, req *models.UpdateCategoryRequest) (*models.Category, error) {
	var errs models.FieldErrors
	updates := map[string]interface{}{}

	if req.Name != nil {
		if isBlank(*req.Name) {
			errs = errs.Add("name", "Category name is required.")
		} else {
			updates["name"] = strings.TrimSpace(*req.Name)
		}
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ParentID != nil {
		updates["parent_id"] = *req.ParentID
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	return s.repo.UpdateCategory(categoryID, updates)
}
