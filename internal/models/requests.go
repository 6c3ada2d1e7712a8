package models

import "github.com/shopspring/decimal"

// Write shapes: flat request bodies referencing related entities by primary
// key. Update requests use pointer fields so partial updates only touch what
// the caller supplied.

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ParentID    *uint   `json:"parent_id,omitempty"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ParentID    *uint   `json:"parent_id,omitempty"`
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	CategoryID  uint             `json:"category_id"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	CategoryID  *uint            `json:"category_id,omitempty"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
}

// CreateProductImageRequest represents a request to attach an image to a product
type CreateProductImageRequest struct {
	ProductID uint    `json:"product_id"`
	URL       string  `json:"url"`
	AltText   *string `json:"alt_text,omitempty"`
	IsPrimary bool    `json:"is_primary"`
}

// UpdateProductImageRequest represents a request to update an image
type UpdateProductImageRequest struct {
	URL       *string `json:"url,omitempty"`
	AltText   *string `json:"alt_text,omitempty"`
	IsPrimary *bool   `json:"is_primary,omitempty"`
}

// CreateOptionTypeRequest represents a request to create an option type
type CreateOptionTypeRequest struct {
	Name string `json:"name"`
}

// UpdateOptionTypeRequest represents a request to rename an option type
type UpdateOptionTypeRequest struct {
	Name *string `json:"name,omitempty"`
}

// CreateOptionValueRequest represents a request to create an option value
type CreateOptionValueRequest struct {
	OptionTypeID uint   `json:"option_type_id"`
	Value        string `json:"value"`
}

// UpdateOptionValueRequest represents a request to update an option value
type UpdateOptionValueRequest struct {
	OptionTypeID *uint   `json:"option_type_id,omitempty"`
	Value        *string `json:"value,omitempty"`
}

// CreateProductVariantRequest represents a request to create a product variant
type CreateProductVariantRequest struct {
	ProductID     uint             `json:"product_id"`
	SKU           string           `json:"sku"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty"`
}

// UpdateProductVariantRequest represents a request to update a product variant
type UpdateProductVariantRequest struct {
	SKU           *string          `json:"sku,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty"`
}

// CreateVariantOptionRequest represents a request to assign an option value
// to a variant
type CreateVariantOptionRequest struct {
	VariantID     uint `json:"variant_id"`
	OptionValueID uint `json:"option_value_id"`
}
