package handlers

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/application/controllers"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

var reviewRatings = []int{1, 2, 3, 4, 5}

// ReviewsHandler serves the reviews page. Three lookup lists feed the
// form selects; each is this page's own copy.
type ReviewsHandler struct {
	store        *session.Store
	views        *views.Renderer
	ctrl         *controllers.Controller[entities.Review, autoservice.CreateReviewRequest]
	appointments *controllers.ListCache[entities.Appointment]
	clients      *controllers.ListCache[entities.Client]
	services     *controllers.ListCache[entities.Service]
}

// NewReviewsHandler creates a new reviews handler.
func NewReviewsHandler(api autoservice.Client, store *session.Store, renderer *views.Renderer) *ReviewsHandler {
	return &ReviewsHandler{
		store: store,
		views: renderer,
		ctrl: controllers.New(
			"review added",
			api.ListReviews,
			api.CreateReview,
			autoservice.CreateReviewRequest.Validate,
		),
		appointments: controllers.NewListCache(api.ListAppointments),
		clients:      controllers.NewListCache(api.ListClients),
		services:     controllers.NewListCache(api.ListServices),
	}
}

// ShowPage handles GET /reviews
func (h *ReviewsHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	controllers.LoadAll(r.Context(),
		controllers.Source{Name: "reviews", Load: h.ctrl.Load},
		controllers.Source{Name: "appointments", Load: h.appointments.Load},
		controllers.Source{Name: "clients", Load: h.clients.Load},
		controllers.Source{Name: "services", Load: h.services.Load},
	)
	h.render(w, autoservice.CreateReviewRequest{}, "")
}

// Create handles POST /reviews
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := autoservice.CreateReviewRequest{
		AppointmentID: formInt64(r, "appointment_id"),
		ClientID:      formInt64(r, "client_id"),
		ServiceID:     formInt64(r, "service_id"),
		Rating:        formInt(r, "rating"),
		Comment:       formString(r, "comment"),
	}

	if _, err := h.ctrl.Submit(r.Context(), req); err != nil {
		h.render(w, req, "")
		return
	}
	h.render(w, autoservice.CreateReviewRequest{}, "")
}

func (h *ReviewsHandler) render(w http.ResponseWriter, form autoservice.CreateReviewRequest, errMsg string) {
	snap := h.ctrl.Snapshot()
	h.views.Render(w, "reviews", views.ReviewsData{
		Page:         pageState("Reviews", h.store, snap, errMsg),
		Reviews:      snap.Items,
		Appointments: h.appointments.Items(),
		Clients:      h.clients.Items(),
		Services:     h.services.Items(),
		Ratings:      reviewRatings,
		Form:         form,
	})
}
