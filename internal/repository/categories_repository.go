package repository

import (
	"time"

	"gorm.io/gorm"

	"catalog-service/internal/models"
)

// Category CRUD Operations

// CreateCategory creates a new category, enforcing name uniqueness and parent
// existence.
func (r *CatalogRepository) CreateCategory(category *models.Category) error {
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Category{}).Where("name = ?", category.Name).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return &ConstraintError{Field: "name", Message: "A category with this name already exists."}
		}

		if category.ParentID != nil {
			var parent models.Category
			if err := tx.First(&parent, *category.ParentID).Error; err != nil {
				return translateErr(err)
			}
		}

		return translateErr(tx.Create(category).Error)
	})
	return err
}

// GetCategories retrieves all categories.
func (r *CatalogRepository) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by primary key with caching.
func (r *CatalogRepository) GetCategoryByID(categoryID uint) (*models.Category, error) {
	var category models.Category
	if r.cacheGet(categoryCacheKey(categoryID), &category) {
		return &category, nil
	}

	if err := r.db.First(&category, categoryID).Error; err != nil {
		return nil, translateErr(err)
	}

	r.cacheSet(categoryCacheKey(categoryID), &category, CategoryCacheTTL)
	return &category, nil
}

// UpdateCategory applies the supplied fields to a category. Uniqueness of the
// name and existence of the new parent are re-checked inside the transaction.
func (r *CatalogRepository) UpdateCategory(categoryID uint, updates map[string]interface{}) (*models.Category, error) {
	var category models.Category

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, categoryID).Error; err != nil {
			return translateErr(err)
		}

		if name, ok := updates["name"]; ok {
			var existing int64
			if err := tx.Model(&models.Category{}).
				Where("name = ? AND id <> ?", name, categoryID).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				return &ConstraintError{Field: "name", Message: "A category with this name already exists."}
			}
		}

		if parentID, ok := updates["parent_id"]; ok && parentID != nil {
			pid, isID := parentID.(uint)
			if isID {
				if pid == categoryID {
					return &ConstraintError{Field: "parent_id", Message: "A category cannot be its own parent."}
				}
				var parent models.Category
				if err := tx.First(&parent, pid).Error; err != nil {
					return translateErr(err)
				}
			}
		}

		updates["updated_at"] = time.Now()
		if err := tx.Model(&category).Updates(updates).Error; err != nil {
			return translateErr(err)
		}
		return tx.First(&category, categoryID).Error
	})
	if err != nil {
		return nil, err
	}

	r.cacheDelete(categoryCacheKey(categoryID))
	return &category, nil
}

// collectDescendantCategoryIDs walks the category tree breadth-first from the
// given roots and returns roots plus every descendant id. The seen set keeps
// a corrupted parent chain from looping.
func collectDescendantCategoryIDs(tx *gorm.DB, rootIDs []uint) ([]uint, error) {
	seen := make(map[uint]bool, len(rootIDs))
	ordered := make([]uint, 0, len(rootIDs))
	frontier := rootIDs

	for _, id := range rootIDs {
		seen[id] = true
		ordered = append(ordered, id)
	}

	for len(frontier) > 0 {
		var childIDs []uint
		if err := tx.Model(&models.Category{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &childIDs).Error; err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for _, id := range childIDs {
			if !seen[id] {
				seen[id] = true
				ordered = append(ordered, id)
				frontier = append(frontier, id)
			}
		}
	}

	return ordered, nil
}

// DeleteCategoryCascade deletes a category, its descendant categories, and
// every product (with images, variants and variant options) referencing any
// of them. The whole cascade commits or rolls back as one unit.
func (r *CatalogRepository) DeleteCategoryCascade(categoryID uint) (*models.CascadeDeleteResult, error) {
	result := &models.CascadeDeleteResult{}
	var productIDs []uint
	var categoryIDs []uint

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			return translateErr(err)
		}

		var err error
		categoryIDs, err = collectDescendantCategoryIDs(tx, []uint{categoryID})
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Product{}).
			Where("category_id IN ?", categoryIDs).
			Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if len(productIDs) > 0 {
			if err := deleteProductDependents(tx, productIDs, result); err != nil {
				return err
			}
			res := tx.Where("id IN ?", productIDs).Delete(&models.Product{})
			if res.Error != nil {
				return res.Error
			}
			result.ProductsDeleted = res.RowsAffected
		}

		res := tx.Where("id IN ?", categoryIDs).Delete(&models.Category{})
		if res.Error != nil {
			return res.Error
		}
		result.CategoriesDeleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(categoryIDs)+len(productIDs))
	for _, id := range categoryIDs {
		keys = append(keys, categoryCacheKey(id))
	}
	for _, id := range productIDs {
		keys = append(keys, productCacheKey(id))
	}
	r.cacheDelete(keys...)
	return result, nil
}
