package serializers

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"catalog-service/internal/config"
	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

func setupSerializer(t *testing.T) (*CatalogSerializer, *repository.CatalogRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))
	repo := repository.NewCatalogRepository(db, nil)
	return NewCatalogSerializer(repo), repo
}

func fieldMessage(t *testing.T, err error, field string) string {
	t.Helper()
	var fieldErrs models.FieldErrors
	require.True(t, errors.As(err, &fieldErrs), "expected field errors, got %v", err)
	for _, fe := range fieldErrs {
		if fe.Field == field {
			return fe.Message
		}
	}
	t.Fatalf("no error for field %q in %v", field, fieldErrs)
	return ""
}

func TestCreateCategoryBlankName(t *testing.T) {
	s, repo := setupSerializer(t)

	_, err := s.CreateCategory(&models.CreateCategoryRequest{Name: "   "})
	assert.Equal(t, "Category name is required.", fieldMessage(t, err, "name"))

	categories, err := repo.GetCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCreateCategoryTrimsName(t *testing.T) {
	s, _ := setupSerializer(t)

	category, err := s.CreateCategory(&models.CreateCategoryRequest{Name: "  Shoes  "})
	require.NoError(t, err)
	assert.Equal(t, "Shoes", category.Name)
}

func TestCreateProductNegativeBasePrice(t *testing.T) {
	s, repo := setupSerializer(t)
	category, err := s.CreateCategory(&models.CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)

	negative := decimal.RequireFromString("-1.00")
	_, err = s.CreateProduct(&models.CreateProductRequest{
		Name:       "Sneaker",
		CategoryID: category.ID,
		BasePrice:  &negative,
	})
	assert.Equal(t, "Base price cannot be negative.", fieldMessage(t, err, "base_price"))

	total, err := repo.CountProducts()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateProductEmbedsCategory(t *testing.T) {
	s, _ := setupSerializer(t)
	category, err := s.CreateCategory(&models.CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)

	product, err := s.CreateProduct(&models.CreateProductRequest{Name: "Sneaker", CategoryID: category.ID})
	require.NoError(t, err)
	require.NotNil(t, product.Category)
	assert.Equal(t, "Shoes", product.Category.Name)
	require.NotNil(t, product.BasePrice)
	assert.True(t, product.BasePrice.Equal(decimal.Zero))
}

func TestCreateProductMultipleFieldErrors(t *testing.T) {
	s, _ := setupSerializer(t)

	_, err := s.CreateProduct(&models.CreateProductRequest{Name: ""})
	var fieldErrs models.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Len(t, fieldErrs, 2)
}

func TestCreateProductImageInvalidURL(t *testing.T) {
	s, _ := setupSerializer(t)
	category, err := s.CreateCategory(&models.CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)
	product, err := s.CreateProduct(&models.CreateProductRequest{Name: "Sneaker", CategoryID: category.ID})
	require.NoError(t, err)

	_, err = s.CreateProductImage(&models.CreateProductImageRequest{
		ProductID: product.ID,
		URL:       "not-a-url",
	})
	assert.Equal(t, "Enter a valid URL.", fieldMessage(t, err, "url"))

	_, err = s.CreateProductImage(&models.CreateProductImageRequest{
		ProductID: product.ID,
		URL:       "https://cdn.example.com/snk.jpg",
	})
	assert.NoError(t, err)
}

func TestCreateOptionValueBlankValue(t *testing.T) {
	s, _ := setupSerializer(t)
	optionType, err := s.CreateOptionType(&models.CreateOptionTypeRequest{Name: "Color"})
	require.NoError(t, err)

	_, err = s.CreateOptionValue(&models.CreateOptionValueRequest{OptionTypeID: optionType.ID, Value: ""})
	assert.Equal(t, "Option value is required.", fieldMessage(t, err, "value"))
}

func TestCreateProductVariantNegativePrice(t *testing.T) {
	s, _ := setupSerializer(t)
	category, err := s.CreateCategory(&models.CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)
	product, err := s.CreateProduct(&models.CreateProductRequest{Name: "Sneaker", CategoryID: category.ID})
	require.NoError(t, err)

	negative := decimal.RequireFromString("-5")
	_, err = s.CreateProductVariant(&models.CreateProductVariantRequest{
		ProductID: product.ID,
		SKU:       "SNK-001",
		Price:     &negative,
	})
	assert.Equal(t, "Variant price cannot be negative.", fieldMessage(t, err, "price"))
}

func TestCreateVariantOptionDuplicate(t *testing.T) {
	s, _ := setupSerializer(t)
	category, err := s.CreateCategory(&models.CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)
	product, err := s.CreateProduct(&models.CreateProductRequest{Name: "Sneaker", CategoryID: category.ID})
	require.NoError(t, err)
	variant, err := s.CreateProductVariant(&models.CreateProductVariantRequest{ProductID: product.ID, SKU: "SNK-001"})
	require.NoError(t, err)

	optionType, err := s.CreateOptionType(&models.CreateOptionTypeRequest{Name: "Color"})
	require.NoError(t, err)
	optionValue, err := s.CreateOptionValue(&models.CreateOptionValueRequest{OptionTypeID: optionType.ID, Value: "Red"})
	require.NoError(t, err)

	first, err := s.CreateVariantOption(&models.CreateVariantOptionRequest{
		VariantID:     variant.ID,
		OptionValueID: optionValue.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, first.OptionValue)
	assert.Equal(t, "Red", first.OptionValue.Value)

	_, err = s.CreateVariantOption(&models.CreateVariantOptionRequest{
		VariantID:     variant.ID,
		OptionValueID: optionValue.ID,
	})
	assert.Equal(t, "This option has already been assigned to the variant.",
		fieldMessage(t, err, "option_value_id"))
}

func TestUpdateProductPartial(t *testing.T) {
	s, _ := setupSerializer(t)
	category, err := s.CreateCategory(&models.CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)
	desc := "Classic"
	product, err := s.CreateProduct(&models.CreateProductRequest{
		Name:        "Sneaker",
		Description: &desc,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	newName := "Runner"
	updated, err := s.UpdateProduct(product.ID, &models.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Runner", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Classic", *updated.Description)
}

func TestUpdateCategoryBlankNameRejected(t *testing.T) {
	s, repo := setupSerializer(t)
	category, err := s.CreateCategory(&models.CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)

	blank := ""
	_, err = s.UpdateCategory(category.ID, &models.UpdateCategoryRequest{Name: &blank})
	assert.Equal(t, "Category name is required.", fieldMessage(t, err, "name"))

	stored, err := repo.GetCategoryByID(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", stored.Name)
}
