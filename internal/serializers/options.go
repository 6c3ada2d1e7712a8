package serializers

import (
	"strings"

	"catalog-service/internal/models"
)

// CreateOptionType validates and persists a new option type.
func (s *CatalogSerializer) CreateOptionType(req *models.CreateOptionTypeRequest) (*models.OptionType, error) {
	var errs models.FieldErrors
	if isBlank(req.Name) {
		errs = errs.Add("name", "Option type name is required.")
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	optionType := &models.OptionType{Name: strings.TrimSpace(req.Name)}
	if err := s.repo.CreateOptionType(optionType); err != nil {
		return nil, err
	}
	return optionType, nil
}

// UpdateOptionType validates the supplied fields and renames an option type.
func (s *CatalogSerializer) UpdateOptionType(optionTypeID uint, req *models.UpdateOptionTypeRequest) (*models.OptionType, error) {
	var errs models.FieldErrors
	updates := map[string]interface{}{}

	if req.Name != nil {
		if isBlank(*req.Name) {
			errs = errs.Add("name", "Option type name is required.")
		} else {
			updates["name"] = strings.TrimSpace(*req.Name)
		}
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	return s.repo.UpdateOptionType(optionTypeID, updates)
}

// CreateOptionValue validates and persists a new option value.
func (s *CatalogSerializer) CreateOptionValue(req *models.CreateOptionValueRequest) (*models.OptionValue, error) {
	var errs models.FieldErrors
	if req.OptionTypeID == 0 {
		errs = errs.Add("option_type_id", "Option type is required.")
	}
	if isBlank(req.Value) {
		errs = errs.Add("value", "Option value is required.")
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	optionValue := &models.OptionValue{
		OptionTypeID: req.OptionTypeID,
		Value:        strings.TrimSpace(req.Value),
	}
	if err := s.repo.CreateOptionValue(optionValue); err != nil {
		return nil, err
	}
	return s.repo.GetOptionValueByID(optionValue.ID)
}

// UpdateOptionValue validates the supplied fields and applies a partial
// update.
func (s *CatalogSerializer) UpdateOptionValue(optionValueID uint, req *models.UpdateOptionValueRequest) (*models.OptionValue, error) {
	var errs models.FieldErrors
	updates := map[string]interface{}{}

	if req.OptionTypeID != nil {
		if *req.OptionTypeID == 0 {
			errs = errs.Add("option_type_id", "Option type is required.")
		} else {
			updates["option_type_id"] = *req.OptionTypeID
		}
	}
	if req.Value != nil {
		if isBlank(*req.Value) {
			errs = errs.Add("value", "Option value is required.")
		} else {
			updates["value"] = strings.TrimSpace(*req.Value)
		}
	}
	if err := errsOrNil(errs); err != nil {
		return nil, err
	}

	return s.repo.UpdateOptionValue(optionValueID, updates)
}
