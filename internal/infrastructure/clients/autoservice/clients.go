package autoservice

import (
	"context"
	"net/http"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// CreateClientRequest is the payload for POST /clients
type CreateClientRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Phone      string  `json:"phone,omitempty"`
	Email      string  `json:"email,omitempty"`
	ClientType string  `json:"client_type,omitempty"`
	Discount   float64 `json:"discount,omitempty"`
}

// Validate checks required fields; presence only.
func (r CreateClientRequest) Validate() error {
	if r.FirstName == "" {
		return apperrors.NewValidationError("first_name", "first name is required")
	}
	if r.LastName == "" {
		return apperrors.NewValidationError("last_name", "last name is required")
	}
	return nil
}

// ListClients returns all clients
func (c *HTTPClient) ListClients(ctx context.Context) ([]entities.Client, error) {
	var out []entities.Client
	if err := c.doJSON(ctx, http.MethodGet, "/clients", nil, &out, "failed to load clients"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateClient creates a client and returns the server's representation
func (c *HTTPClient) CreateClient(ctx context.Context, req CreateClientRequest) (*entities.Client, error) {
	out := &entities.Client{}
	if err := c.doJSON(ctx, http.MethodPost, "/clients", req, out, "failed to create client"); err != nil {
		return nil, err
	}
	return out, nil
}
