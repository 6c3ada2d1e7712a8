package repository

import (
	"time"

	"gorm.io/gorm"

	"catalog-service/internal/models"
)

// Product Image CRUD Operations

// CreateProductImage attaches an image to an existing product.
func (r *CatalogRepository) CreateProductImage(image *models.ProductImage) error {
	image.CreatedAt = time.Now()
	image.UpdatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, image.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &ConstraintError{Field: "product_id", Message: "Product not found."}
			}
			return err
		}
		return translateErr(tx.Create(image).Error)
	})
}

// GetProductImages retrieves all images of a product, primary images first.
// Served by the (product_id, is_primary) index.
func (r *CatalogRepository) GetProductImages(productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.Where("product_id = ?", productID).
		Order("is_primary DESC, id ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// GetPrimaryProductImage returns the first image flagged primary for a
// product, if any. More than one primary image is possible; the model does
// not forbid it.
func (r *CatalogRepository) GetPrimaryProductImage(productID uint) (*models.ProductImage, error) {
	var image models.ProductImage
	err := r.db.Where("product_id = ? AND is_primary = ?", productID, true).
		Order("id ASC").
		First(&image).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &image, nil
}

// GetProductImageByID retrieves an image by primary key with its product
// embedded.
func (r *CatalogRepository) GetProductImageByID(imageID uint) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.db.Preload("Product.Category").First(&image, imageID).Error; err != nil {
		return nil, translateErr(err)
	}
	return &image, nil
}

// UpdateProductImage applies the supplied fields to an image.
func (r *CatalogRepository) UpdateProductImage(imageID uint, updates map[string]interface{}) (*models.ProductImage, error) {
	var image models.ProductImage

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&image, imageID).Error; err != nil {
			return translateErr(err)
		}
		updates["updated_at"] = time.Now()
		if err := tx.Model(&image).Updates(updates).Error; err != nil {
			return translateErr(err)
		}
		return tx.First(&image, imageID).Error
	})
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// DeleteProductImage deletes an image. Images have no dependents, so no
// cascade is involved.
func (r *CatalogRepository) DeleteProductImage(imageID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var image models.ProductImage
		if err := tx.First(&image, imageID).Error; err != nil {
			return translateErr(err)
		}
		return tx.Delete(&image).Error
	})
}
