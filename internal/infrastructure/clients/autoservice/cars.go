package autoservice

import (
	"context"
	"net/http"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// CreateCarRequest is the payload for POST /cars. Mileage defaults to 0
// and Status to "active" when left unset.
type CreateCarRequest struct {
	ClientID     int64  `json:"client_id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin,omitempty"`
	Color        string `json:"color,omitempty"`
	Mileage      int    `json:"mileage"`
	Status       string `json:"status"`
}

// Validate checks required fields; presence only.
func (r CreateCarRequest) Validate() error {
	if r.ClientID == 0 {
		return apperrors.NewValidationError("client_id", "select an owner")
	}
	if r.Make == "" {
		return apperrors.NewValidationError("make", "make is required")
	}
	if r.Model == "" {
		return apperrors.NewValidationError("model", "model is required")
	}
	return nil
}

// ListCars returns all cars
func (c *HTTPClient) ListCars(ctx context.Context) ([]entities.Car, error) {
	var out []entities.Car
	if err := c.doJSON(ctx, http.MethodGet, "/cars", nil, &out, "failed to load cars"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCar creates a car and returns the server's representation
func (c *HTTPClient) CreateCar(ctx context.Context, req CreateCarRequest) (*entities.Car, error) {
	if req.Status == "" {
		req.Status = string(entities.CarStatusActive)
	}

	out := &entities.Car{}
	if err := c.doJSON(ctx, http.MethodPost, "/cars", req, out, "failed to create car"); err != nil {
		return nil, err
	}
	return out, nil
}
