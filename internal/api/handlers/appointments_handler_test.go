package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avtoservice/admin-console/internal/api/handlers"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

func testCars() []entities.Car {
	return []entities.Car{
		{ID: 3, ClientID: 7, Make: "Lada", Model: "Vesta", LicensePlate: "A123BC"},
	}
}

func testServices() []entities.Service {
	return []entities.Service{
		{ID: 4, Name: "Oil change", Price: 1500},
	}
}

func mountAppointments(t *testing.T, api *fakeAPI) *handlers.AppointmentsHandler {
	t.Helper()
	handler := handlers.NewAppointmentsHandler(api, newTestStore(t), newTestRenderer(t))
	w := httptest.NewRecorder()
	handler.ShowPage(w, httptest.NewRequest("GET", "/appointments", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	return handler
}

func TestAppointmentsHandler_ShowPage_LabelsRows(t *testing.T) {
	api := &fakeAPI{t: t,
		listAppointments: func(ctx context.Context) ([]entities.Appointment, error) {
			return []entities.Appointment{
				{ID: 1, ClientID: 7, CarID: 3, ServiceID: 4, AppointmentDate: "2026-09-01T10:00:00", Status: "scheduled"},
			}, nil
		},
		listCars:     func(ctx context.Context) ([]entities.Car, error) { return testCars(), nil },
		listServices: func(ctx context.Context) ([]entities.Service, error) { return testServices(), nil },
	}
	handler := handlers.NewAppointmentsHandler(api, newTestStore(t), newTestRenderer(t))

	w := httptest.NewRecorder()
	handler.ShowPage(w, httptest.NewRequest("GET", "/appointments", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Lada Vesta (A123BC)")
	assert.Contains(t, body, "Oil change")
	assert.Contains(t, body, "2026-09-01T10:00:00")
}

func TestAppointmentsHandler_ShowPage_LookupFailureFallsBackToIDs(t *testing.T) {
	api := &fakeAPI{t: t,
		listAppointments: func(ctx context.Context) ([]entities.Appointment, error) {
			return []entities.Appointment{
				{ID: 1, CarID: 3, ServiceID: 4, AppointmentDate: "2026-09-01T10:00:00", Status: "scheduled"},
			}, nil
		},
		listCars: func(ctx context.Context) ([]entities.Car, error) {
			return nil, apperrors.NewExternalError("failed to load cars", nil)
		},
		listServices: func(ctx context.Context) ([]entities.Service, error) { return testServices(), nil },
	}
	handler := handlers.NewAppointmentsHandler(api, newTestStore(t), newTestRenderer(t))

	w := httptest.NewRecorder()
	handler.ShowPage(w, httptest.NewRequest("GET", "/appointments", nil))

	// the appointments list still renders, with the raw car id
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<td>3</td>")
	assert.Contains(t, body, "Oil change")
}

func TestAppointmentsHandler_Create_DerivesClientFromCar(t *testing.T) {
	var got autoservice.CreateAppointmentRequest
	api := &fakeAPI{t: t,
		listCars:     func(ctx context.Context) ([]entities.Car, error) { return testCars(), nil },
		listServices: func(ctx context.Context) ([]entities.Service, error) { return testServices(), nil },
		createAppointment: func(ctx context.Context, req autoservice.CreateAppointmentRequest) (*entities.Appointment, error) {
			got = req
			return &entities.Appointment{ID: 9, ClientID: req.ClientID, CarID: req.CarID, ServiceID: req.ServiceID,
				AppointmentDate: req.AppointmentDate, Status: "scheduled"}, nil
		},
	}
	handler := mountAppointments(t, api)

	w := httptest.NewRecorder()
	handler.Create(w, postForm("/appointments", url.Values{
		"car_id":           {"3"},
		"service_id":       {"4"},
		"appointment_date": {"2026-09-02T09:30"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), got.ClientID)
	assert.Contains(t, w.Body.String(), "appointment added")
}

func TestAppointmentsHandler_Create_UnknownCar(t *testing.T) {
	api := &fakeAPI{t: t,
		listCars:     func(ctx context.Context) ([]entities.Car, error) { return testCars(), nil },
		listServices: func(ctx context.Context) ([]entities.Service, error) { return testServices(), nil },
	} // CreateAppointment must not be reached
	handler := mountAppointments(t, api)

	w := httptest.NewRecorder()
	handler.Create(w, postForm("/appointments", url.Values{
		"car_id":           {"99"},
		"service_id":       {"4"},
		"appointment_date": {"2026-09-02T09:30"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "car not found")
}

func TestAppointmentsHandler_Create_MissingDate(t *testing.T) {
	api := &fakeAPI{t: t,
		listCars:     func(ctx context.Context) ([]entities.Car, error) { return testCars(), nil },
		listServices: func(ctx context.Context) ([]entities.Service, error) { return testServices(), nil },
	}
	handler := mountAppointments(t, api)

	w := httptest.NewRecorder()
	handler.Create(w, postForm("/appointments", url.Values{
		"car_id":     {"3"},
		"service_id": {"4"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "date and time are required")
}
