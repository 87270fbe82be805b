package handlers

import (
	"net/http"
	"strconv"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/application/controllers"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// AppointmentsHandler serves the appointments page. The page owns its
// own copies of the car and service lists for the selects and row
// labels; it never borrows another page's data.
type AppointmentsHandler struct {
	store    *session.Store
	views    *views.Renderer
	ctrl     *controllers.Controller[entities.Appointment, autoservice.CreateAppointmentRequest]
	cars     *controllers.ListCache[entities.Car]
	services *controllers.ListCache[entities.Service]
}

// NewAppointmentsHandler creates a new appointments handler.
func NewAppointmentsHandler(api autoservice.Client, store *session.Store, renderer *views.Renderer) *AppointmentsHandler {
	return &AppointmentsHandler{
		store: store,
		views: renderer,
		ctrl: controllers.New(
			"appointment added",
			api.ListAppointments,
			api.CreateAppointment,
			autoservice.CreateAppointmentRequest.Validate,
		),
		cars:     controllers.NewListCache(api.ListCars),
		services: controllers.NewListCache(api.ListServices),
	}
}

// ShowPage handles GET /appointments
func (h *AppointmentsHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	controllers.LoadAll(r.Context(),
		controllers.Source{Name: "appointments", Load: h.ctrl.Load},
		controllers.Source{Name: "cars", Load: h.cars.Load},
		controllers.Source{Name: "services", Load: h.services.Load},
	)
	h.render(w, autoservice.CreateAppointmentRequest{}, "")
}

// Create handles POST /appointments. The client id is derived from the
// selected car's owner rather than asked for twice.
func (h *AppointmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := autoservice.CreateAppointmentRequest{
		CarID:           formInt64(r, "car_id"),
		ServiceID:       formInt64(r, "service_id"),
		AppointmentDate: formString(r, "appointment_date"),
		Status:          formString(r, "status"),
	}

	if req.CarID != 0 {
		car, ok := h.findCar(req.CarID)
		if !ok {
			h.render(w, req, "car not found")
			return
		}
		req.ClientID = car.ClientID
	}

	if _, err := h.ctrl.Submit(r.Context(), req); err != nil {
		h.render(w, req, "")
		return
	}
	h.render(w, autoservice.CreateAppointmentRequest{}, "")
}

func (h *AppointmentsHandler) findCar(id int64) (entities.Car, bool) {
	for _, car := range h.cars.Items() {
		if car.ID == id {
			return car, true
		}
	}
	return entities.Car{}, false
}

func (h *AppointmentsHandler) render(w http.ResponseWriter, form autoservice.CreateAppointmentRequest, errMsg string) {
	snap := h.ctrl.Snapshot()
	cars := h.cars.Items()
	services := h.services.Items()

	carLabels := make(map[int64]string, len(cars))
	for _, car := range cars {
		carLabels[car.ID] = car.Label()
	}
	serviceLabels := make(map[int64]string, len(services))
	for _, svc := range services {
		serviceLabels[svc.ID] = svc.Name
	}

	rows := make([]views.AppointmentRow, 0, len(snap.Items))
	for _, appt := range snap.Items {
		row := views.AppointmentRow{
			Appointment:  appt,
			CarLabel:     carLabels[appt.CarID],
			ServiceLabel: serviceLabels[appt.ServiceID],
		}
		// raw ids still identify the row when a lookup list failed to load
		if row.CarLabel == "" {
			row.CarLabel = strconv.FormatInt(appt.CarID, 10)
		}
		if row.ServiceLabel == "" {
			row.ServiceLabel = strconv.FormatInt(appt.ServiceID, 10)
		}
		rows = append(rows, row)
	}

	h.views.Render(w, "appointments", views.AppointmentsData{
		Page:     pageState("Appointments", h.store, snap, errMsg),
		Rows:     rows,
		Cars:     cars,
		Services: services,
		Form:     form,
	})
}
