package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"catalog-service/internal/models"
)

// deleteProductDependents removes images, variants and variant options for
// the given products, in dependency order, inside the caller's transaction.
func deleteProductDependents(tx *gorm.DB, productIDs []uint, result *models.CascadeDeleteResult) error {
	var variantIDs []uint
	if err := tx.Model(&models.ProductVariant{}).
		Where("product_id IN ?", productIDs).
		Pluck("id", &variantIDs).Error; err != nil {
		return err
	}

	if len(variantIDs) > 0 {
		res := tx.Where("variant_id IN ?", variantIDs).Delete(&models.VariantOption{})
		if res.Error != nil {
			return res.Error
		}
		result.VariantOptionsDeleted += res.RowsAffected

		res = tx.Where("id IN ?", variantIDs).Delete(&models.ProductVariant{})
		if res.Error != nil {
			return res.Error
		}
		result.VariantsDeleted += res.RowsAffected
	}

	res := tx.Where("product_id IN ?", productIDs).Delete(&models.ProductImage{})
	if res.Error != nil {
		return res.Error
	}
	result.ImagesDeleted += res.RowsAffected
	return nil
}

// Product CRUD Operations

// CreateProduct inserts a product and maintains the category aggregate as a
// single atomic unit: insert, backfill a missing base price with 0.00, then
// recount the owning category's product_count. If any step fails nothing is
// visible to subsequent reads.
func (r *CatalogRepository) CreateProduct(product *models.Product) error {
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, product.CategoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &ConstraintError{Field: "category_id", Message: "Category not found."}
			}
			return err
		}

		if err := tx.Create(product).Error; err != nil {
			return translateErr(err)
		}

		if product.BasePrice == nil {
			zero := decimal.Zero
			product.BasePrice = &zero
			if err := tx.Model(product).Update("base_price", zero).Error; err != nil {
				return err
			}
		}

		return r.recountCategoryProducts(tx, product.CategoryID)
	})
	if err != nil {
		return err
	}

	r.cacheDelete(categoryCacheKey(product.CategoryID))
	return nil
}

// GetProducts retrieves all products with their category embedded.
func (r *CatalogRepository) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Category").Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductsByCategory retrieves the products referencing a category.
func (r *CatalogRepository) GetProductsByCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductByID retrieves a product by primary key with caching.
func (r *CatalogRepository) GetProductByID(productID uint) (*models.Product, error) {
	var product models.Product
	if r.cacheGet(productCacheKey(productID), &product) {
		return &product, nil
	}

	if err := r.db.Preload("Category").First(&product, productID).Error; err != nil {
		return nil, translateErr(err)
	}

	r.cacheSet(productCacheKey(productID), &product, ProductCacheTTL)
	return &product, nil
}

// UpdateProduct applies the supplied fields to a product. A changed
// category_id is verified against the store before anything is written.
func (r *CatalogRepository) UpdateProduct(productID uint, updates map[string]interface{}) (*models.Product, error) {
	var product models.Product

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, productID).Error; err != nil {
			return translateErr(err)
		}

		if categoryID, ok := updates["category_id"]; ok {
			var category models.Category
			if err := tx.First(&category, categoryID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return &ConstraintError{Field: "category_id", Message: "Category not found."}
				}
				return err
			}
		}

		updates["updated_at"] = time.Now()
		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			return translateErr(err)
		}
		return tx.Preload("Category").First(&product, productID).Error
	})
	if err != nil {
		return nil, err
	}

	r.cacheDelete(productCacheKey(productID))
	return &product, nil
}

// DeleteProductCascade deletes a product together with its images, variants
// and variant options, atomically.
func (r *CatalogRepository) DeleteProductCascade(productID uint) (*models.CascadeDeleteResult, error) {
	result := &models.CascadeDeleteResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			return translateErr(err)
		}

		if err := deleteProductDependents(tx, []uint{productID}, result); err != nil {
			return err
		}

		res := tx.Delete(&models.Product{}, productID)
		if res.Error != nil {
			return res.Error
		}
		result.ProductsDeleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.cacheDelete(productCacheKey(productID))
	return result, nil
}
