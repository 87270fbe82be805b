package autoservice

import (
	"context"
	"net/http"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// CreateReviewRequest is the payload for POST /reviews. Rating bounds
// are left to the input widget; only presence is checked here.
type CreateReviewRequest struct {
	AppointmentID int64  `json:"appointment_id"`
	ClientID      int64  `json:"client_id"`
	ServiceID     int64  `json:"service_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// Validate checks required fields; presence only.
func (r CreateReviewRequest) Validate() error {
	if r.AppointmentID == 0 {
		return apperrors.NewValidationError("appointment_id", "select an appointment")
	}
	if r.Rating == 0 {
		return apperrors.NewValidationError("rating", "rating is required")
	}
	return nil
}

// ListReviews returns all reviews
func (c *HTTPClient) ListReviews(ctx context.Context) ([]entities.Review, error) {
	var out []entities.Review
	if err := c.doJSON(ctx, http.MethodGet, "/reviews", nil, &out, "failed to load reviews"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReview creates a review and returns the server's representation
func (c *HTTPClient) CreateReview(ctx context.Context, req CreateReviewRequest) (*entities.Review, error) {
	out := &entities.Review{}
	if err := c.doJSON(ctx, http.MethodPost, "/reviews", req, out, "failed to create review"); err != nil {
		return nil, err
	}
	return out, nil
}
