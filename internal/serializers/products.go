package serializers

import (
	"strings"

	"catalog-service/internal/models"
)

// CreateProduct validates and persists a new product. A missing base price is
// backfilled to 0.00 by the repository as part of the same transaction.
func (s *CatalogSerializer) CreateProduct(req *models.CreateProductRequest) (*models.Product, error) {
	var errs models.FieldErrors
	if isBlank(req.Name) {
		errs = errs.Add("name", "Product name is required.")
	}
	if req.CategoryID == 0 {
		errs = errs.Add("category_id", "Category is required.")
	}
	if req.BasePrice != nil && req.BasePrice.IsNegative() {
		errs = errs.Add("base_price", "Base price cannot be negative.")
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CategoryID:  req.CategoryID,
		BasePrice:   req.BasePrice,
	}
	if err := s.repo.CreateProduct(product); err != nil {
		return nil, err
	}
	return s.repo.GetProductByID(product.ID)
}

// UpdateProduct validates the supplied fields and applies a partial update.
func (s *CatalogSerializer) UpdateProduct(productID uint, req *models.UpdateProductRequest) (*models.Product, error) {
	var errs models.FieldErrors
	updates := map[string]interface{}{}

	if req.Name != nil {
		if isBlank(*req.Name) {
			errs = errs.Add("name", "Product name is required.")
		} else {
			updates["name"] = strings.TrimSpace(*req.Name)
		}
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryID != nil {
		if *req.CategoryID == 0 {
			errs = errs.Add("category_id", "Category is required.")
		} else {
			updates["category_id"] = *req.CategoryID
		}
	}
	if req.BasePrice != nil {
		if req.BasePrice.IsNegative() {
			errs = errs.Add("base_price", "Base price cannot be negative.")
		} else {
			updates["base_price"] = *req.BasePrice
		}
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	return s.repo.UpdateProduct(productID, updates)
}
