package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category represents a product category. Categories form a tree through
// ParentID; ProductCount is a denormalized aggregate recounted on product
// creation.
type Category struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	ParentID     *uint            `json:"parent_id,omitempty" gorm:"index"`
	Name         string           `json:"name" gorm:"size:255;not null;uniqueIndex:idx_categories_name"`
	Description  *string          `json:"description,omitempty"`
	ProductCount int              `json:"product_count" gorm:"not null;default:0"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Product represents a product entity. BasePrice is the fallback price for
// variants that carry no price of their own.
type Product struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	CategoryID  uint             `json:"category_id" gorm:"not null;index"`
	Category    *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Name        string           `json:"name" gorm:"size:255;not null;index"`
	Description *string          `json:"description,omitempty"`
	BasePrice   *decimal.Decimal `json:"base_price" gorm:"type:decimal(10,2)"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductImage represents an image attached to a product. Nothing enforces at
// most one primary image per product; callers own that if they care.
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index:idx_product_images_product_primary"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	URL       string    `json:"url" gorm:"not null"`
	AltText   *string   `json:"alt_text,omitempty" gorm:"size:255"`
	IsPrimary bool      `json:"is_primary" gorm:"not null;default:false;index:idx_product_images_product_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OptionType is a variant attribute axis, e.g. "Color" or "Size".
type OptionType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:63;not null;uniqueIndex:idx_option_types_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OptionValue is a concrete value of an option type, e.g. "Red". The
// (option_type_id, value) pair is unique.
type OptionValue struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	OptionTypeID uint        `json:"option_type_id" gorm:"not null;uniqueIndex:idx_option_values_type_value"`
	OptionType   *OptionType `json:"option_type,omitempty" gorm:"foreignKey:OptionTypeID;constraint:OnDelete:CASCADE"`
	Value        string      `json:"value" gorm:"size:63;not null;uniqueIndex:idx_option_values_type_value"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ProductVariant represents a sellable variant of a product. A nil Price
// means the variant defers to the product's base price.
type ProductVariant struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	ProductID     uint             `json:"product_id" gorm:"not null;index"`
	Product       *Product         `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	SKU           string           `json:"sku" gorm:"size:100;not null;uniqueIndex:idx_product_variants_sku"`
	Price         *decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	StockQuantity int              `json:"stock_quantity" gorm:"not null;default:0"`
	Options       []VariantOption  `json:"options,omitempty" gorm:"foreignKey:VariantID"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// EffectivePrice resolves the variant's selling price: its own price when set,
// otherwise the product's base price, otherwise zero.
func (v *ProductVariant) EffectivePrice(product *Product) decimal.Decimal {
	if v.Price != nil {
		return *v.Price
	}
	if product != nil && product.BasePrice != nil {
		return *product.BasePrice
	}
	return decimal.Zero
}

// VariantOption assigns an option value to a variant. The pair
// (variant_id, option_value_id) is unique; a variant may carry values from
// any number of distinct option types.
type VariantOption struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	VariantID     uint         `json:"variant_id" gorm:"not null;uniqueIndex:idx_variant_options_variant_value"`
	OptionValueID uint         `json:"option_value_id" gorm:"not null;uniqueIndex:idx_variant_options_variant_value"`
	OptionValue   *OptionValue `json:"option_value,omitempty" gorm:"foreignKey:OptionValueID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// TableName returns the table name for the ProductImage model
func (ProductImage) TableName() string {
	return "product_images"
}

// TableName returns the table name for the OptionType model
func (OptionType) TableName() string {
	return "option_types"
}

// TableName returns the table name for the OptionValue model
func (OptionValue) TableName() string {
	return "option_values"
}

// TableName returns the table name for the ProductVariant model
func (ProductVariant) TableName() string {
	return "product_variants"
}

// TableName returns the table name for the VariantOption model
func (VariantOption) TableName() string {
	return "variant_options"
}
