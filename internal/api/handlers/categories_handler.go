package handlers

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/application/controllers"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// CategoriesHandler serves the service categories page.
type CategoriesHandler struct {
	store *session.Store
	views *views.Renderer
	ctrl  *controllers.Controller[entities.Category, autoservice.CreateCategoryRequest]
}

// NewCategoriesHandler creates a new categories handler.
func NewCategoriesHandler(api autoservice.Client, store *session.Store, renderer *views.Renderer) *CategoriesHandler {
	return &CategoriesHandler{
		store: store,
		views: renderer,
		ctrl: controllers.New(
			"category added",
			api.ListCategories,
			api.CreateCategory,
			autoservice.CreateCategoryRequest.Validate,
		),
	}
}

// ShowPage handles GET /categories
func (h *CategoriesHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	controllers.LoadAll(r.Context(),
		controllers.Source{Name: "categories", Load: h.ctrl.Load},
	)
	h.render(w, autoservice.CreateCategoryRequest{}, "")
}

// Create handles POST /categories
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := autoservice.CreateCategoryRequest{
		Name: formString(r, "name"),
	}

	if _, err := h.ctrl.Submit(r.Context(), req); err != nil {
		h.render(w, req, "")
		return
	}
	h.render(w, autoservice.CreateCategoryRequest{}, "")
}

func (h *CategoriesHandler) render(w http.ResponseWriter, form autoservice.CreateCategoryRequest, errMsg string) {
	snap := h.ctrl.Snapshot()
	h.views.Render(w, "categories", views.CategoriesData{
		Page:       pageState("Categories", h.store, snap, errMsg),
		Categories: snap.Items,
		Form:       form,
	})
}
