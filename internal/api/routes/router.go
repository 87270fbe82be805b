package routes

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/api/handlers"
	"github.com/avtoservice/admin-console/internal/api/middleware"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	store *session.Store

	authHandler *handlers.AuthHandler

	clientsHandler      *handlers.ClientsHandler
	carsHandler         *handlers.CarsHandler
	servicesHandler     *handlers.ServicesHandler
	appointmentsHandler *handlers.AppointmentsHandler
	employeesHandler    *handlers.EmployeesHandler
	partsHandler        *handlers.PartsHandler
	categoriesHandler   *handlers.CategoriesHandler
	reviewsHandler      *handlers.ReviewsHandler

	tracing bool
}

// NewRouter creates a new router
func NewRouter(
	store *session.Store,

	authHandler *handlers.AuthHandler,

	clientsHandler *handlers.ClientsHandler,
	carsHandler *handlers.CarsHandler,
	servicesHandler *handlers.ServicesHandler,
	appointmentsHandler *handlers.AppointmentsHandler,
	employeesHandler *handlers.EmployeesHandler,
	partsHandler *handlers.PartsHandler,
	categoriesHandler *handlers.CategoriesHandler,
	reviewsHandler *handlers.ReviewsHandler,

	tracing bool,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		store: store,

		authHandler: authHandler,

		clientsHandler:      clientsHandler,
		carsHandler:         carsHandler,
		servicesHandler:     servicesHandler,
		appointmentsHandler: appointmentsHandler,
		employeesHandler:    employeesHandler,
		partsHandler:        partsHandler,
		categoriesHandler:   categoriesHandler,
		reviewsHandler:      reviewsHandler,

		tracing: tracing,
	}
}

// SetupRoutes configures all console routes. Every page except login
// and register sits behind the session guard; the guard runs on every
// request, so a cleared session redirects no matter which page the
// operator lands on.
func (r *Router) SetupRoutes() http.Handler {
	// Auth pages stay reachable without a session
	r.mux.HandleFunc("GET /login", r.authHandler.ShowLogin)
	r.mux.HandleFunc("POST /login", r.authHandler.Login)
	r.mux.HandleFunc("GET /register", r.authHandler.ShowRegister)
	r.mux.HandleFunc("POST /register", r.authHandler.Register)
	r.mux.HandleFunc("POST /logout", r.authHandler.Logout)

	protected := http.NewServeMux()

	// Clients page doubles as the console landing page
	protected.HandleFunc("GET /{$}", r.clientsHandler.ShowPage)
	protected.HandleFunc("POST /clients", r.clientsHandler.Create)

	protected.HandleFunc("GET /cars", r.carsHandler.ShowPage)
	protected.HandleFunc("POST /cars", r.carsHandler.Create)

	protected.HandleFunc("GET /services", r.servicesHandler.ShowPage)
	protected.HandleFunc("POST /services", r.servicesHandler.Create)

	protected.HandleFunc("GET /appointments", r.appointmentsHandler.ShowPage)
	protected.HandleFunc("POST /appointments", r.appointmentsHandler.Create)

	protected.HandleFunc("GET /employees", r.employeesHandler.ShowPage)
	protected.HandleFunc("POST /employees", r.employeesHandler.Create)

	protected.HandleFunc("GET /parts", r.partsHandler.ShowPage)
	protected.HandleFunc("POST /parts", r.partsHandler.Create)

	protected.HandleFunc("GET /categories", r.categoriesHandler.ShowPage)
	protected.HandleFunc("POST /categories", r.categoriesHandler.Create)

	protected.HandleFunc("GET /reviews", r.reviewsHandler.ShowPage)
	protected.HandleFunc("POST /reviews", r.reviewsHandler.Create)

	r.mux.Handle("/", middleware.RequireSession(r.store)(protected))

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	if r.tracing {
		handler = middleware.ObservabilityMiddleware(handler)
	}
	handler = middleware.RequestIDMiddleware(handler)

	return handler
}
