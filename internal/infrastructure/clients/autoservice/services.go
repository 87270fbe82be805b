package autoservice

import (
	"context"
	"net/http"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// CreateServiceRequest is the payload for POST /services.
// Duration uses the "HH:MM:SS" form, e.g. "01:30:00".
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	CategoryID  int64   `json:"category_id,omitempty"`
	Duration    string  `json:"duration,omitempty"`
}

// Validate checks required fields; presence only.
func (r CreateServiceRequest) Validate() error {
	if r.Name == "" {
		return apperrors.NewValidationError("name", "name is required")
	}
	if r.Price == 0 {
		return apperrors.NewValidationError("price", "price is required")
	}
	return nil
}

// ListServices returns all services
func (c *HTTPClient) ListServices(ctx context.Context) ([]entities.Service, error) {
	var out []entities.Service
	if err := c.doJSON(ctx, http.MethodGet, "/services", nil, &out, "failed to load services"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateService creates a service and returns the server's representation
func (c *HTTPClient) CreateService(ctx context.Context, req CreateServiceRequest) (*entities.Service, error) {
	out := &entities.Service{}
	if err := c.doJSON(ctx, http.MethodPost, "/services", req, out, "failed to create service"); err != nil {
		return nil, err
	}
	return out, nil
}
