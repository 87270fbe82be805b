package autoservice

import (
	"context"
	"net/http"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// CreateEmployeeRequest is the payload for POST /employees
type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Validate checks required fields; presence only.
func (r CreateEmployeeRequest) Validate() error {
	if r.FirstName == "" {
		return apperrors.NewValidationError("first_name", "first name is required")
	}
	if r.LastName == "" {
		return apperrors.NewValidationError("last_name", "last name is required")
	}
	if r.Role == "" {
		return apperrors.NewValidationError("role", "role is required")
	}
	return nil
}

// ListEmployees returns all employees
func (c *HTTPClient) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	var out []entities.Employee
	if err := c.doJSON(ctx, http.MethodGet, "/employees", nil, &out, "failed to load employees"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmployee creates an employee and returns the server's representation
func (c *HTTPClient) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*entities.Employee, error) {
	out := &entities.Employee{}
	if err := c.doJSON(ctx, http.MethodPost, "/employees", req, out, "failed to create employee"); err != nil {
		return nil, err
	}
	return out, nil
}
