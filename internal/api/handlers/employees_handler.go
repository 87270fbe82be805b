package handlers

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/application/controllers"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// EmployeesHandler serves the employees page.
type EmployeesHandler struct {
	store *session.Store
	views *views.Renderer
	ctrl  *controllers.Controller[entities.Employee, autoservice.CreateEmployeeRequest]
}

// NewEmployeesHandler creates a new employees handler.
func NewEmployeesHandler(api autoservice.Client, store *session.Store, renderer *views.Renderer) *EmployeesHandler {
	return &EmployeesHandler{
		store: store,
		views: renderer,
		ctrl: controllers.New(
			"employee added",
			api.ListEmployees,
			api.CreateEmployee,
			autoservice.CreateEmployeeRequest.Validate,
		),
	}
}

// ShowPage handles GET /employees
func (h *EmployeesHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	controllers.LoadAll(r.Context(),
		controllers.Source{Name: "employees", Load: h.ctrl.Load},
	)
	h.render(w, autoservice.CreateEmployeeRequest{}, "")
}

// Create handles POST /employees
func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := autoservice.CreateEmployeeRequest{
		FirstName: formString(r, "first_name"),
		LastName:  formString(r, "last_name"),
		Role:      formString(r, "role"),
		Phone:     formString(r, "phone"),
		Email:     formString(r, "email"),
	}

	if _, err := h.ctrl.Submit(r.Context(), req); err != nil {
		h.render(w, req, "")
		return
	}
	h.render(w, autoservice.CreateEmployeeRequest{}, "")
}

func (h *EmployeesHandler) render(w http.ResponseWriter, form autoservice.CreateEmployeeRequest, errMsg string) {
	snap := h.ctrl.Snapshot()
	h.views.Render(w, "employees", views.EmployeesData{
		Page:      pageState("Employees", h.store, snap, errMsg),
		Employees: snap.Items,
		Form:      form,
	})
}
