package autoservice

import (
	"context"
	"net/http"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// CreateAppointmentRequest is the payload for POST /appointments.
// Status defaults to "scheduled" when left unset; ClientID is derived
// from the selected car by the caller.
type CreateAppointmentRequest struct {
	ClientID        int64  `json:"client_id"`
	CarID           int64  `json:"car_id"`
	ServiceID       int64  `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	EmployeeID      int64  `json:"employee_id,omitempty"`
	Status          string `json:"status"`
}

// Validate checks required fields; presence only.
func (r CreateAppointmentRequest) Validate() error {
	if r.CarID == 0 {
		return apperrors.NewValidationError("car_id", "select a car")
	}
	if r.ServiceID == 0 {
		return apperrors.NewValidationError("service_id", "select a service")
	}
	if r.AppointmentDate == "" {
		return apperrors.NewValidationError("appointment_date", "date and time are required")
	}
	return nil
}

// ListAppointments returns all appointments
func (c *HTTPClient) ListAppointments(ctx context.Context) ([]entities.Appointment, error) {
	var out []entities.Appointment
	if err := c.doJSON(ctx, http.MethodGet, "/appointments", nil, &out, "failed to load appointments"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment creates an appointment and returns the server's representation
func (c *HTTPClient) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*entities.Appointment, error) {
	if req.Status == "" {
		req.Status = string(entities.AppointmentStatusScheduled)
	}

	out := &entities.Appointment{}
	if err := c.doJSON(ctx, http.MethodPost, "/appointments", req, out, "failed to create appointment"); err != nil {
		return nil, err
	}
	return out, nil
}
