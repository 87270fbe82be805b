package handlers

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/application/controllers"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// PartsHandler serves the parts page. Parts are tracked per car, so
// the form's car select is fed by the page's own car list.
type PartsHandler struct {
	store *session.Store
	views *views.Renderer
	ctrl  *controllers.Controller[entities.Part, autoservice.CreatePartRequest]
	cars  *controllers.ListCache[entities.Car]
}

// NewPartsHandler creates a new parts handler.
func NewPartsHandler(api autoservice.Client, store *session.Store, renderer *views.Renderer) *PartsHandler {
	return &PartsHandler{
		store: store,
		views: renderer,
		ctrl: controllers.New(
			"part added",
			api.ListParts,
			api.CreatePart,
			autoservice.CreatePartRequest.Validate,
		),
		cars: controllers.NewListCache(api.ListCars),
	}
}

// ShowPage handles GET /parts
func (h *PartsHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	controllers.LoadAll(r.Context(),
		controllers.Source{Name: "parts", Load: h.ctrl.Load},
		controllers.Source{Name: "cars", Load: h.cars.Load},
	)
	h.render(w, autoservice.CreatePartRequest{}, "")
}

// Create handles POST /parts
func (h *PartsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := autoservice.CreatePartRequest{
		Name:          formString(r, "name"),
		SKU:           formString(r, "sku"),
		StockQty:      formInt(r, "stock_qty"),
		PurchasePrice: formFloat(r, "purchase_price"),
		SalePrice:     formFloat(r, "sale_price"),
		CarID:         formInt64(r, "car_id"),
	}

	if _, err := h.ctrl.Submit(r.Context(), req); err != nil {
		h.render(w, req, "")
		return
	}
	h.render(w, autoservice.CreatePartRequest{}, "")
}

func (h *PartsHandler) render(w http.ResponseWriter, form autoservice.CreatePartRequest, errMsg string) {
	snap := h.ctrl.Snapshot()
	h.views.Render(w, "parts", views.PartsData{
		Page:  pageState("Parts", h.store, snap, errMsg),
		Parts: snap.Items,
		Cars:  h.cars.Items(),
		Form:  form,
	})
}
