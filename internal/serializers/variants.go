package serializers

import (
	"strings"

	"catalog-service/internal/models"
)

// CreateProductVariant validates and persists a new product variant. A nil
// price is kept nil; such variants sell at the product's base price.
func (s *CatalogSerializer) CreateProductVariant(req *models.CreateProductVariantRequest) (*models.ProductVariant, error) {
	var errs models.FieldErrors
	if req.ProductID == 0 {
		errs = errs.Add("product_id", "Product is required.")
	}
	if isBlank(req.SKU) {
		errs = errs.Add("sku", "SKU is required.")
	}
	if req.Price != nil && req.Price.IsNegative() {
		errs = errs.Add("price", "Variant price cannot be negative.")
	}
	if req.StockQuantity != nil && *req.StockQuantity < 0 {
		errs = errs.Add("stock_quantity", "Stock quantity cannot be negative.")
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	variant := &models.ProductVariant{
		ProductID: req.ProductID,
		SKU:       strings.TrimSpace(req.SKU),
		Price:     req.Price,
	}
	if req.StockQuantity != nil {
		variant.StockQuantity = *req.StockQuantity
	}
	if err := s.repo.CreateProductVariant(variant); err != nil {
		return nil, err
	}
	return s.repo.GetProductVariantByID(variant.ID)
}

// UpdateProductVariant validates the supplied fields and applies a partial
// update.
func (s *CatalogSerializer) UpdateProductVariant(variantID uint, req *models.UpdateProductVariantRequest) (*models.ProductVariant, error) {
	var errs models.FieldErrors
	updates := map[string]interface{}{}

	if req.SKU != nil {
		if isBlank(*req.SKU) {
			errs = errs.Add("sku", "SKU is required.")
		} else {
			updates["sku"] = strings.TrimSpace(*req.SKU)
		}
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			errs = errs.Add("price", "Variant price cannot be negative.")
		} else {
			updates["price"] = *req.Price
		}
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			errs = errs.Add("stock_quantity", "Stock quantity cannot be negative.")
		} else {
			updates["stock_quantity"] = *req.StockQuantity
		}
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	return s.repo.UpdateProductVariant(variantID, updates)
}

// CreateVariantOption validates and persists an option assignment. The
// duplicate check runs here so a repeated assignment surfaces as a field
// error before any write is attempted.
func (s *CatalogSerializer) CreateVariantOption(req *models.CreateVariantOptionRequest) (*models.VariantOption, error) {
	var errs models.FieldErrors
	if req.VariantID == 0 {
		errs = errs.Add("variant_id", "Variant is required.")
	}
	if req.OptionValueID == 0 {
		errs = errs.Add("option_value_id", "Option value is required.")
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	exists, err := s.repo.VariantOptionExists(req.VariantID, req.OptionValueID)
	if err != nil {
		return nil, err
	}
	if exists {
		var dup models.FieldErrors
		return nil, dup.Add("option_value_id", "This option has already been assigned to the variant.")
	}

	variantOption := &models.VariantOption{
		VariantID:     req.VariantID,
		OptionValueID: req.OptionValueID,
	}
	if err := s.repo.CreateVariantOption(variantOption); err != nil {
		return nil, err
	}
	return s.repo.GetVariantOptionByID(variantOption.ID)
}
