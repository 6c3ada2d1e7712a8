package repository

import (
	"time"

	"gorm.io/gorm"

	"catalog-service/internal/models"
)

// Product Variant CRUD Operations

// CreateProductVariant creates a variant of an existing product, enforcing
// SKU uniqueness and a non-negative stock quantity.
func (r *CatalogRepository) CreateProductVariant(variant *models.ProductVariant) error {
	variant.CreatedAt = time.Now()
	variant.UpdatedAt = time.Now()

	if variant.StockQuantity < 0 {
		return &ConstraintError{Field: "stock_quantity", Message: "Stock quantity cannot be negative."}
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, variant.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &ConstraintError{Field: "product_id", Message: "Product not found."}
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.ProductVariant{}).Where("sku = ?", variant.SKU).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return &ConstraintError{Field: "sku", Message: "A variant with this SKU already exists."}
		}

		return translateErr(tx.Create(variant).Error)
	})
}

// GetProductVariants retrieves all variants of a product with their options
// embedded.
func (r *CatalogRepository) GetProductVariants(productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Preload("Options.OptionValue.OptionType").
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

// GetProductVariantByID retrieves a variant by primary key with its product
// and options embedded. The options list is derived from the variant-option
// rows, not stored on the variant.
func (r *CatalogRepository) GetProductVariantByID(variantID uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.Preload("Product.Category").
		Preload("Options.OptionValue.OptionType").
		First(&variant, variantID).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &variant, nil
}

// GetProductVariantBySKU retrieves a variant by its unique SKU.
func (r *CatalogRepository) GetProductVariantBySKU(sku string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.Preload("Product.Category").
		Where("sku = ?", sku).
		First(&variant).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &variant, nil
}

// UpdateProductVariant applies the supplied fields to a variant, re-checking
// SKU uniqueness and the non-negative stock invariant.
func (r *CatalogRepository) UpdateProductVariant(variantID uint, updates map[string]interface{}) (*models.ProductVariant, error) {
	var variant models.ProductVariant

	if raw, ok := updates["stock_quantity"]; ok {
		if qty, isInt := raw.(int); isInt && qty < 0 {
			return nil, &ConstraintError{Field: "stock_quantity", Message: "Stock quantity cannot be negative."}
		}
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&variant, variantID).Error; err != nil {
			return translateErr(err)
		}

		if sku, ok := updates["sku"]; ok {
			var existing int64
			if err := tx.Model(&models.ProductVariant{}).
				Where("sku = ? AND id <> ?", sku, variantID).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				return &ConstraintError{Field: "sku", Message: "A variant with this SKU already exists."}
			}
		}

		updates["updated_at"] = time.Now()
		if err := tx.Model(&variant).Updates(updates).Error; err != nil {
			return translateErr(err)
		}
		return tx.Preload("Options.OptionValue.OptionType").First(&variant, variantID).Error
	})
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// DeleteProductVariantCascade deletes a variant and its variant options,
// atomically.
func (r *CatalogRepository) DeleteProductVariantCascade(variantID uint) (*models.CascadeDeleteResult, error) {
	result := &models.CascadeDeleteResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var variant models.ProductVariant
		if err := tx.First(&variant, variantID).Error; err != nil {
			return translateErr(err)
		}

		res := tx.Where("variant_id = ?", variantID).Delete(&models.VariantOption{})
		if res.Error != nil {
			return res.Error
		}
		result.VariantOptionsDeleted = res.RowsAffected

		if err := tx.Delete(&variant).Error; err != nil {
			return err
		}
		result.VariantsDeleted = 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Variant Option Operations

// VariantOptionExists reports whether an option value is already assigned to
// a variant.
func (r *CatalogRepository) VariantOptionExists(variantID, optionValueID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.VariantOption{}).
		Where("variant_id = ? AND option_value_id = ?", variantID, optionValueID).
		Count(&count).Error
	return count > 0, err
}

// CreateVariantOption assigns an option value to a variant, enforcing
// referential integrity and uniqueness of the (variant, option_value) pair.
func (r *CatalogRepository) CreateVariantOption(variantOption *models.VariantOption) error {
	variantOption.CreatedAt = time.Now()
	variantOption.UpdatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		var variant models.ProductVariant
		if err := tx.First(&variant, variantOption.VariantID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &ConstraintError{Field: "variant_id", Message: "Variant not found."}
			}
			return err
		}

		var optionValue models.OptionValue
		if err := tx.First(&optionValue, variantOption.OptionValueID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &ConstraintError{Field: "option_value_id", Message: "Option value not found."}
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.VariantOption{}).
			Where("variant_id = ? AND option_value_id = ?", variantOption.VariantID, variantOption.OptionValueID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return &ConstraintError{Field: "option_value_id", Message: "This option has already been assigned to the variant."}
		}

		return translateErr(tx.Create(variantOption).Error)
	})
}

// GetVariantOptions retrieves the option assignments of a variant with the
// option value and its type embedded.
func (r *CatalogRepository) GetVariantOptions(variantID uint) ([]models.VariantOption, error) {
	var variantOptions []models.VariantOption
	err := r.db.Preload("OptionValue.OptionType").
		Where("variant_id = ?", variantID).
		Order("id ASC").
		Find(&variantOptions).Error
	if err != nil {
		return nil, err
	}
	return variantOptions, nil
}

// GetVariantOptionByID retrieves a variant option by primary key.
func (r *CatalogRepository) GetVariantOptionByID(variantOptionID uint) (*models.VariantOption, error) {
	var variantOption models.VariantOption
	err := r.db.Preload("OptionValue.OptionType").First(&variantOption, variantOptionID).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &variantOption, nil
}

// DeleteVariantOption removes a single option assignment from a variant.
func (r *CatalogRepository) DeleteVariantOption(variantOptionID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var variantOption models.VariantOption
		if err := tx.First(&variantOption, variantOptionID).Error; err != nil {
			return translateErr(err)
		}
		return tx.Delete(&variantOption).Error
	})
}
