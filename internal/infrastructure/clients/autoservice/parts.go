package autoservice

import (
	"context"
	"net/http"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// CreatePartRequest is the payload for POST /parts
type CreatePartRequest struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	StockQty      int     `json:"stock_qty"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	CarID         int64   `json:"car_id"`
}

// Validate checks required fields; presence only.
func (r CreatePartRequest) Validate() error {
	if r.Name == "" {
		return apperrors.NewValidationError("name", "name is required")
	}
	if r.SKU == "" {
		return apperrors.NewValidationError("sku", "sku is required")
	}
	if r.CarID == 0 {
		return apperrors.NewValidationError("car_id", "select a car")
	}
	return nil
}

// ListParts returns all parts
func (c *HTTPClient) ListParts(ctx context.Context) ([]entities.Part, error) {
	var out []entities.Part
	if err := c.doJSON(ctx, http.MethodGet, "/parts", nil, &out, "failed to load parts"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePart creates a part and returns the server's representation
func (c *HTTPClient) CreatePart(ctx context.Context, req CreatePartRequest) (*entities.Part, error) {
	out := &entities.Part{}
	if err := c.doJSON(ctx, http.MethodPost, "/parts", req, out, "failed to create part"); err != nil {
		return nil, err
	}
	return out, nil
}
