package repository

import (
	"time"

	"gorm.io/gorm"

	"catalog-service/internal/models"
)

// Option Type CRUD Operations

// CreateOptionType creates a new option type, enforcing name uniqueness.
func (r *CatalogRepository) CreateOptionType(optionType *models.OptionType) error {
	optionType.CreatedAt = time.Now()
	optionType.UpdatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.OptionType{}).Where("name = ?", optionType.Name).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return &ConstraintError{Field: "name", Message: "An option type with this name already exists."}
		}
		return translateErr(tx.Create(optionType).Error)
	})
}

// GetOptionTypes retrieves all option types.
func (r *CatalogRepository) GetOptionTypes() ([]models.OptionType, error) {
	var optionTypes []models.OptionType
	if err := r.db.Order("id ASC").Find(&optionTypes).Error; err != nil {
		return nil, err
	}
	return optionTypes, nil
}

// GetOptionTypeByID retrieves an option type by primary key.
func (r *CatalogRepository) GetOptionTypeByID(optionTypeID uint) (*models.OptionType, error) {
	var optionType models.OptionType
	if err := r.db.First(&optionType, optionTypeID).Error; err != nil {
		return nil, translateErr(err)
	}
	return &optionType, nil
}

// UpdateOptionType applies the supplied fields to an option type.
func (r *CatalogRepository) UpdateOptionType(optionTypeID uint, updates map[string]interface{}) (*models.OptionType, error) {
	var optionType models.OptionType

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&optionType, optionTypeID).Error; err != nil {
			return translateErr(err)
		}

		if name, ok := updates["name"]; ok {
			var existing int64
			if err := tx.Model(&models.OptionType{}).
				Where("name = ? AND id <> ?", name, optionTypeID).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				return &ConstraintError{Field: "name", Message: "An option type with this name already exists."}
			}
		}

		updates["updated_at"] = time.Now()
		if err := tx.Model(&optionType).Updates(updates).Error; err != nil {
			return translateErr(err)
		}
		return tx.First(&optionType, optionTypeID).Error
	})
	if err != nil {
		return nil, err
	}
	return &optionType, nil
}

// DeleteOptionTypeCascade deletes an option type, its values, and every
// variant option referencing those values, atomically.
func (r *CatalogRepository) DeleteOptionTypeCascade(optionTypeID uint) (*models.CascadeDeleteResult, error) {
	result := &models.CascadeDeleteResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var optionType models.OptionType
		if err := tx.First(&optionType, optionTypeID).Error; err != nil {
			return translateErr(err)
		}

		var valueIDs []uint
		if err := tx.Model(&models.OptionValue{}).
			Where("option_type_id = ?", optionTypeID).
			Pluck("id", &valueIDs).Error; err != nil {
			return err
		}

		if len(valueIDs) > 0 {
			res := tx.Where("option_value_id IN ?", valueIDs).Delete(&models.VariantOption{})
			if res.Error != nil {
				return res.Error
			}
			result.VariantOptionsDeleted = res.RowsAffected

			res = tx.Where("id IN ?", valueIDs).Delete(&models.OptionValue{})
			if res.Error != nil {
				return res.Error
			}
			result.OptionValuesDeleted = res.RowsAffected
		}

		return tx.Delete(&optionType).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Option Value CRUD Operations

// CreateOptionValue creates a new option value, enforcing referential
// integrity of the option type and uniqueness of (option_type_id, value).
func (r *CatalogRepository) CreateOptionValue(optionValue *models.OptionValue) error {
	optionValue.CreatedAt = time.Now()
	optionValue.UpdatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		var optionType models.OptionType
		if err := tx.First(&optionType, optionValue.OptionTypeID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &ConstraintError{Field: "option_type_id", Message: "Option type not found."}
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.OptionValue{}).
			Where("option_type_id = ? AND value = ?", optionValue.OptionTypeID, optionValue.Value).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return &ConstraintError{Field: "value", Message: "This value already exists for the option type."}
		}

		return translateErr(tx.Create(optionValue).Error)
	})
}

// GetOptionValues retrieves all option values with their option type
// embedded.
func (r *CatalogRepository) GetOptionValues() ([]models.OptionValue, error) {
	var optionValues []models.OptionValue
	if err := r.db.Preload("OptionType").Order("id ASC").Find(&optionValues).Error; err != nil {
		return nil, err
	}
	return optionValues, nil
}

// GetOptionValueByID retrieves an option value by primary key with its option
// type embedded.
func (r *CatalogRepository) GetOptionValueByID(optionValueID uint) (*models.OptionValue, error) {
	var optionValue models.OptionValue
	if err := r.db.Preload("OptionType").First(&optionValue, optionValueID).Error; err != nil {
		return nil, translateErr(err)
	}
	return &optionValue, nil
}

// UpdateOptionValue applies the supplied fields to an option value,
// re-checking the (option_type_id, value) pair against the merged row.
func (r *CatalogRepository) UpdateOptionValue(optionValueID uint, updates map[string]interface{}) (*models.OptionValue, error) {
	var optionValue models.OptionValue

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&optionValue, optionValueID).Error; err != nil {
			return translateErr(err)
		}

		typeID := optionValue.OptionTypeID
		if raw, ok := updates["option_type_id"]; ok {
			if id, isID := raw.(uint); isID {
				typeID = id
			}
		}
		value := optionValue.Value
		if raw, ok := updates["value"]; ok {
			if v, isString := raw.(string); isString {
				value = v
			}
		}

		if typeID != optionValue.OptionTypeID {
			var optionType models.OptionType
			if err := tx.First(&optionType, typeID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return &ConstraintError{Field: "option_type_id", Message: "Option type not found."}
				}
				return err
			}
		}

		var existing int64
		if err := tx.Model(&models.OptionValue{}).
			Where("option_type_id = ? AND value = ? AND id <> ?", typeID, value, optionValueID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return &ConstraintError{Field: "value", Message: "This value already exists for the option type."}
		}

		updates["updated_at"] = time.Now()
		if err := tx.Model(&optionValue).Updates(updates).Error; err != nil {
			return translateErr(err)
		}
		return tx.Preload("OptionType").First(&optionValue, optionValueID).Error
	})
	if err != nil {
		return nil, err
	}
	return &optionValue, nil
}

// DeleteOptionValueCascade deletes an option value and every variant option
// referencing it, atomically.
func (r *CatalogRepository) DeleteOptionValueCascade(optionValueID uint) (*models.CascadeDeleteResult, error) {
	result := &models.CascadeDeleteResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var optionValue models.OptionValue
		if err := tx.First(&optionValue, optionValueID).Error; err != nil {
			return translateErr(err)
		}

		res := tx.Where("option_value_id = ?", optionValueID).Delete(&models.VariantOption{})
		if res.Error != nil {
			return res.Error
		}
		result.VariantOptionsDeleted = res.RowsAffected

		if err := tx.Delete(&optionValue).Error; err != nil {
			return err
		}
		result.OptionValuesDeleted = 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
