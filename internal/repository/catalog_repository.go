package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"catalog-service/internal/models"
)

// Cache TTL constants
const (
	ProductCacheTTL  = 5 * time.Minute
	CategoryCacheTTL = 30 * time.Minute // Categories rarely change
)

var (
	// ErrNotFound is returned when a requested or referenced row is absent.
	ErrNotFound = errors.New("record not found")
	// ErrConstraintViolation is returned when a uniqueness or integrity
	// constraint would be broken. The operation leaves the store unchanged.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ConstraintError is a constraint violation tied to a specific field, so
// handlers can surface it as a field-level validation error.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraintViolation }

// CatalogRepository is the entity store for the catalog: categories,
// products, images, option types/values, variants and variant options.
// The Redis client is optional; a nil client disables caching.
type CatalogRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewCatalogRepository(db *gorm.DB, redisClient *redis.Client) *CatalogRepository {
	return &CatalogRepository{
		db:    db,
		redis: redisClient,
	}
}

// DB exposes the underlying handle for callers that compose their own reads.
func (r *CatalogRepository) DB() *gorm.DB {
	return r.db
}

// isDuplicateErr reports whether a driver error came from a unique index.
// Pre-checks inside transactions catch most duplicates; this is the backstop
// for concurrent writers racing past the check.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "UNIQUE constraint")
}

func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isDuplicateErr(err) {
		return fmt.Errorf("%w: duplicate value for a unique field", ErrConstraintViolation)
	}
	return err
}

// Cache helpers. All cache failures are ignored; the database is the source
// of truth.

func (r *CatalogRepository) cacheGet(key string, out interface{}) bool {
	if r.redis == nil {
		return false
	}
	val, err := r.redis.Get(context.Background(), key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

func (r *CatalogRepository) cacheSet(key string, value interface{}, ttl time.Duration) {
	if r.redis == nil {
		return
	}
	if data, err := json.Marshal(value); err == nil {
		r.redis.Set(context.Background(), key, data, ttl)
	}
}

func (r *CatalogRepository) cacheDelete(keys ...string) {
	if r.redis == nil || len(keys) == 0 {
		return
	}
	r.redis.Del(context.Background(), keys...)
}

func productCacheKey(id uint) string  { return fmt.Sprintf("catalog:product:%d", id) }
func categoryCacheKey(id uint) string { return fmt.Sprintf("catalog:category:%d", id) }

// Summary counters

// CountProducts returns the total number of products in the store.
func (r *CatalogRepository) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

// CountCategories returns the total number of categories in the store.
func (r *CatalogRepository) CountCategories() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}

// CountProductsByCategory returns the live count of products referencing a
// category.
func (r *CatalogRepository) CountProductsByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// recountCategoryProducts persists product_count as the exact live count of
// products referencing the category. A full recount rather than an increment,
// so any prior drift self-heals.
func (r *CatalogRepository) recountCategoryProducts(tx *gorm.DB, categoryID uint) error {
	var count int64
	if err := tx.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.Category{}).Where("id = ?", categoryID).
		Updates(map[string]interface{}{"product_count": count, "updated_at": time.Now()}).Error
}
