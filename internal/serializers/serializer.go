package serializers

import (
	"net/url"
	"strings"

	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

// CatalogSerializer validates write requests and translates them into
// repository operations. Validation failures are reported as
// models.FieldErrors before any write happens.
type CatalogSerializer struct {
	repo *repository.CatalogRepository
}

// NewCatalogSerializer creates a serializer over the given repository.
func NewCatalogSerializer(repo *repository.CatalogRepository) *CatalogSerializer {
	return &CatalogSerializer{repo: repo}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isValidURL accepts absolute http(s) URLs only.
func isValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func errsOrNil(errs models.FieldErrors) error {
	if len(errs) > 0 {
		return errs
	}
	return nil
}
