package autoservice

import (
	"context"
	"net/http"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// CreateCategoryRequest is the payload for POST /categories
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// Validate checks required fields; presence only.
func (r CreateCategoryRequest) Validate() error {
	if r.Name == "" {
		return apperrors.NewValidationError("name", "name is required")
	}
	return nil
}

// ListCategories returns all categories
func (c *HTTPClient) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var out []entities.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &out, "failed to load categories"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory creates a category and returns the server's representation
func (c *HTTPClient) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*entities.Category, error) {
	out := &entities.Category{}
	if err := c.doJSON(ctx, http.MethodPost, "/categories", req, out, "failed to create category"); err != nil {
		return nil, err
	}
	return out, nil
}
