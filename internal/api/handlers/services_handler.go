package handlers

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/application/controllers"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// ServicesHandler serves the services page.
type ServicesHandler struct {
	store      *session.Store
	views      *views.Renderer
	ctrl       *controllers.Controller[entities.Service, autoservice.CreateServiceRequest]
	categories *controllers.ListCache[entities.Category]
}

// NewServicesHandler creates a new services handler.
func NewServicesHandler(api autoservice.Client, store *session.Store, renderer *views.Renderer) *ServicesHandler {
	return &ServicesHandler{
		store: store,
		views: renderer,
		ctrl: controllers.New(
			"service added",
			api.ListServices,
			api.CreateService,
			autoservice.CreateServiceRequest.Validate,
		),
		categories: controllers.NewListCache(api.ListCategories),
	}
}

// ShowPage handles GET /services
func (h *ServicesHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	controllers.LoadAll(r.Context(),
		controllers.Source{Name: "services", Load: h.ctrl.Load},
		controllers.Source{Name: "categories", Load: h.categories.Load},
	)
	h.render(w, autoservice.CreateServiceRequest{}, "")
}

// Create handles POST /services. Duration is sent verbatim as the
// "HH:MM:SS" string the operator typed.
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := autoservice.CreateServiceRequest{
		Name:        formString(r, "name"),
		Price:       formFloat(r, "price"),
		Description: formString(r, "description"),
		CategoryID:  formInt64(r, "category_id"),
		Duration:    formString(r, "duration"),
	}

	if _, err := h.ctrl.Submit(r.Context(), req); err != nil {
		h.render(w, req, "")
		return
	}
	h.render(w, autoservice.CreateServiceRequest{}, "")
}

func (h *ServicesHandler) render(w http.ResponseWriter, form autoservice.CreateServiceRequest, errMsg string) {
	snap := h.ctrl.Snapshot()
	h.views.Render(w, "services", views.ServicesData{
		Page:       pageState("Services", h.store, snap, errMsg),
		Services:   snap.Items,
		Categories: h.categories.Items(),
		Form:       form,
	})
}
