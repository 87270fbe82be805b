package handlers

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/application/controllers"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// CarsHandler serves the cars page. The owner select is fed by the
// page's own copy of the client list.
type CarsHandler struct {
	store   *session.Store
	views   *views.Renderer
	ctrl    *controllers.Controller[entities.Car, autoservice.CreateCarRequest]
	clients *controllers.ListCache[entities.Client]
}

// NewCarsHandler creates a new cars handler.
func NewCarsHandler(api autoservice.Client, store *session.Store, renderer *views.Renderer) *CarsHandler {
	return &CarsHandler{
		store: store,
		views: renderer,
		ctrl: controllers.New(
			"car added",
			api.ListCars,
			api.CreateCar,
			autoservice.CreateCarRequest.Validate,
		),
		clients: controllers.NewListCache(api.ListClients),
	}
}

// ShowPage handles GET /cars
func (h *CarsHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	controllers.LoadAll(r.Context(),
		controllers.Source{Name: "cars", Load: h.ctrl.Load},
		controllers.Source{Name: "clients", Load: h.clients.Load},
	)
	h.render(w, autoservice.CreateCarRequest{}, "")
}

// Create handles POST /cars
func (h *CarsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := autoservice.CreateCarRequest{
		ClientID:     formInt64(r, "client_id"),
		Make:         formString(r, "make"),
		Model:        formString(r, "model"),
		Year:         formInt(r, "year"),
		LicensePlate: formString(r, "license_plate"),
		VIN:          formString(r, "vin"),
		Color:        formString(r, "color"),
		Mileage:      formInt(r, "mileage"),
		Status:       formString(r, "status"),
	}

	if _, err := h.ctrl.Submit(r.Context(), req); err != nil {
		h.render(w, req, "")
		return
	}
	h.render(w, autoservice.CreateCarRequest{}, "")
}

func (h *CarsHandler) render(w http.ResponseWriter, form autoservice.CreateCarRequest, errMsg string) {
	snap := h.ctrl.Snapshot()
	h.views.Render(w, "cars", views.CarsData{
		Page:    pageState("Cars", h.store, snap, errMsg),
		Cars:    snap.Items,
		Clients: h.clients.Items(),
		Form:    form,
	})
}
