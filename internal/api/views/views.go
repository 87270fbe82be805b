package views

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/observability"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer executes the embedded page templates
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named page template. A template failure is a
// console-side fault, not a page state.
func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		observability.GetLogger().Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Page carries the fields every page template shares
type Page struct {
	Title      string
	User       *entities.User
	Error      string
	Success    string
	Submitting bool
}

// LoginData feeds the login page
type LoginData struct {
	Page
	Username string
}

// RegisterData feeds the registration page
type RegisterData struct {
	Page
	Username string
}

// ClientsData feeds the clients page
type ClientsData struct {
	Page
	Clients []entities.Client
	Form    autoservice.CreateClientRequest
}

// CarsData feeds the cars page
type CarsData struct {
	Page
	Cars    []entities.Car
	Clients []entities.Client
	Form    autoservice.CreateCarRequest
}

// ServicesData feeds the services page
type ServicesData struct {
	Page
	Services   []entities.Service
	Categories []entities.Category
	Form       autoservice.CreateServiceRequest
}

// AppointmentRow is an appointment with resolved display labels.
// Labels fall back to raw ids when the cross-referenced list is missing.
type AppointmentRow struct {
	entities.Appointment
	CarLabel     string
	ServiceLabel string
}

// AppointmentsData feeds the appointments page
type AppointmentsData struct {
	Page
	Rows     []AppointmentRow
	Cars     []entities.Car
	Services []entities.Service
	Form     autoservice.CreateAppointmentRequest
}

// EmployeesData feeds the employees page
type EmployeesData struct {
	Page
	Employees []entities.Employee
	Form      autoservice.CreateEmployeeRequest
}

// PartsData feeds the parts page
type PartsData struct {
	Page
	Parts []entities.Part
	Cars  []entities.Car
	Form  autoservice.CreatePartRequest
}

// CategoriesData feeds the categories page
type CategoriesData struct {
	Page
	Categories []entities.Category
	Form       autoservice.CreateCategoryRequest
}

// ReviewsData feeds the reviews page
type ReviewsData struct {
	Page
	Reviews      []entities.Review
	Appointments []entities.Appointment
	Clients      []entities.Client
	Services     []entities.Service
	Ratings      []int
	Form         autoservice.CreateReviewRequest
}
