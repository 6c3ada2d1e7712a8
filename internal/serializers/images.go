package serializers

import (
	"catalog-service/internal/models"
)

// CreateProductImage validates and persists a new product image.
func (s *CatalogSerializer) CreateProductImage(req *models.CreateProductImageRequest) (*models.ProductImage, error) {
	var errs models.FieldErrors
	if req.ProductID == 0 {
		errs = errs.Add("product_id", "Product is required.")
	}
	if isBlank(req.URL) {
		errs = errs.Add("url", "Image URL is required.")
	} else if !isValidURL(req.URL) {
		errs = errs.Add("url", "Enter a valid URL.")
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	image := &models.ProductImage{
		ProductID: req.ProductID,
		URL:       req.URL,
		AltText:   req.AltText,
		IsPrimary: req.IsPrimary,
	}
	if err := s.repo.CreateProductImage(image); err != nil {
		return nil, err
	}
	return image, nil
}

// UpdateProductImage validates the supplied fields and applies a partial
// update.
func (s *CatalogSerializer) UpdateProductImage(imageID uint, req *models.UpdateProductImageRequest) (*models.ProductImage, error) {
	var errs models.FieldErrors
	updates := map[string]interface{}{}

	if req.URL != nil {
		if isBlank(*req.URL) {
			errs = errs.Add("url", "Image URL is required.")
		} else if !isValidURL(*req.URL) {
			errs = errs.Add("url", "Enter a valid URL.")
		} else {
			updates["url"] = *req.URL
		}
	}
	if req.AltText != nil {
		updates["alt_text"] = *req.AltText
	}
	if req.IsPrimary != nil {
		updates["is_primary"] = *req.IsPrimary
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	return s.repo.UpdateProductImage(imageID, updates)
}
