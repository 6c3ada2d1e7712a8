package models

// CascadeDeleteResult reports what a cascading delete removed. Deletes are
// all-or-nothing; a result is only produced for a fully committed cascade.
type CascadeDeleteResult struct {
	CategoriesDeleted     int64 `json:"categories_deleted,omitempty"`
	ProductsDeleted       int64 `json:"products_deleted,omitempty"`
	ImagesDeleted         int64 `json:"images_deleted,omitempty"`
	VariantsDeleted       int64 `json:"variants_deleted,omitempty"`
	OptionValuesDeleted   int64 `json:"option_values_deleted,omitempty"`
	VariantOptionsDeleted int64 `json:"variant_options_deleted,omitempty"`
}
