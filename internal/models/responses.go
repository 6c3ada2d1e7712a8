package models

import "strings"

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the structured list of field→message pairs reported by the
// serialization layer. It implements error so it can travel through normal
// error returns.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Add appends a field error and returns the extended list.
func (e FieldErrors) Add(field, message string) FieldErrors {
	return append(e, FieldError{Field: field, Message: message})
}

type Error struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

type CategoryResponse struct {
	Success bool      `json:"success"`
	Data    *Category `json:"data"`
}

type CategoryListResponse struct {
	Success bool       `json:"success"`
	Data    []Category `json:"data"`
}

type ProductResponse struct {
	Success bool     `json:"success"`
	Data    *Product `json:"data"`
}

// ProductListResponse carries the listed products together with store-wide
// summary counters recomputed on every call.
type ProductListResponse struct {
	Success         bool      `json:"success"`
	TotalProducts   int64     `json:"total_products"`
	TotalCategories int64     `json:"total_categories"`
	Products        []Product `json:"products"`
}

type ProductImageResponse struct {
	Success bool          `json:"success"`
	Data    *ProductImage `json:"data"`
}

type ProductImageListResponse struct {
	Success bool           `json:"success"`
	Data    []ProductImage `json:"data"`
}

type OptionTypeResponse struct {
	Success bool        `json:"success"`
	Data    *OptionType `json:"data"`
}

type OptionTypeListResponse struct {
	Success bool         `json:"success"`
	Data    []OptionType `json:"data"`
}

type OptionValueResponse struct {
	Success bool         `json:"success"`
	Data    *OptionValue `json:"data"`
}

type OptionValueListResponse struct {
	Success bool          `json:"success"`
	Data    []OptionValue `json:"data"`
}

type ProductVariantResponse struct {
	Success bool            `json:"success"`
	Data    *ProductVariant `json:"data"`
}

type ProductVariantListResponse struct {
	Success bool             `json:"success"`
	Data    []ProductVariant `json:"data"`
}

type VariantOptionResponse struct {
	Success bool           `json:"success"`
	Data    *VariantOption `json:"data"`
}

type VariantOptionListResponse struct {
	Success bool            `json:"success"`
	Data    []VariantOption `json:"data"`
}
