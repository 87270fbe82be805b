package handlers

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/application/controllers"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// ClientsHandler serves the clients page.
type ClientsHandler struct {
	store *session.Store
	views *views.Renderer
	ctrl  *controllers.Controller[entities.Client, autoservice.CreateClientRequest]
}

// NewClientsHandler creates a new clients handler.
func NewClientsHandler(api autoservice.Client, store *session.Store, renderer *views.Renderer) *ClientsHandler {
	return &ClientsHandler{
		store: store,
		views: renderer,
		ctrl: controllers.New(
			"client added",
			api.ListClients,
			api.CreateClient,
			autoservice.CreateClientRequest.Validate,
		),
	}
}

// ShowPage handles GET /
func (h *ClientsHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	controllers.LoadAll(r.Context(),
		controllers.Source{Name: "clients", Load: h.ctrl.Load},
	)
	h.render(w, autoservice.CreateClientRequest{}, "")
}

// Create handles POST /clients. A failed submit keeps the entered form;
// a successful one clears it and appends the server's row.
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := autoservice.CreateClientRequest{
		FirstName:  formString(r, "first_name"),
		LastName:   formString(r, "last_name"),
		Phone:      formString(r, "phone"),
		Email:      formString(r, "email"),
		ClientType: formString(r, "client_type"),
		Discount:   formFloat(r, "discount"),
	}

	if _, err := h.ctrl.Submit(r.Context(), req); err != nil {
		h.render(w, req, "")
		return
	}
	h.render(w, autoservice.CreateClientRequest{}, "")
}

func (h *ClientsHandler) render(w http.ResponseWriter, form autoservice.CreateClientRequest, errMsg string) {
	snap := h.ctrl.Snapshot()
	h.views.Render(w, "clients", views.ClientsData{
		Page:    pageState("Clients", h.store, snap, errMsg),
		Clients: snap.Items,
		Form:    form,
	})
}
