package handlers_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// fakeAPI implements autoservice.Client from per-test function fields.
// Unset list fields return empty lists, unset create fields fail the
// test if reached.
type fakeAPI struct {
	t *testing.T

	login    func(ctx context.Context, username, password string) (*autoservice.LoginResponse, error)
	register func(ctx context.Context, username, password string) error

	listClients       func(ctx context.Context) ([]entities.Client, error)
	createClient      func(ctx context.Context, req autoservice.CreateClientRequest) (*entities.Client, error)
	listCars          func(ctx context.Context) ([]entities.Car, error)
	createCar         func(ctx context.Context, req autoservice.CreateCarRequest) (*entities.Car, error)
	listServices      func(ctx context.Context) ([]entities.Service, error)
	createService     func(ctx context.Context, req autoservice.CreateServiceRequest) (*entities.Service, error)
	listAppointments  func(ctx context.Context) ([]entities.Appointment, error)
	createAppointment func(ctx context.Context, req autoservice.CreateAppointmentRequest) (*entities.Appointment, error)
	listEmployees     func(ctx context.Context) ([]entities.Employee, error)
	createEmployee    func(ctx context.Context, req autoservice.CreateEmployeeRequest) (*entities.Employee, error)
	listParts         func(ctx context.Context) ([]entities.Part, error)
	createPart        func(ctx context.Context, req autoservice.CreatePartRequest) (*entities.Part, error)
	listCategories    func(ctx context.Context) ([]entities.Category, error)
	createCategory    func(ctx context.Context, req autoservice.CreateCategoryRequest) (*entities.Category, error)
	listReviews       func(ctx context.Context) ([]entities.Review, error)
	createReview      func(ctx context.Context, req autoservice.CreateReviewRequest) (*entities.Review, error)
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*autoservice.LoginResponse, error) {
	if f.login == nil {
		f.t.Fatal("unexpected Login call")
	}
	return f.login(ctx, username, password)
}

func (f *fakeAPI) Register(ctx context.Context, username, password string) error {
	if f.register == nil {
		f.t.Fatal("unexpected Register call")
	}
	return f.register(ctx, username, password)
}

func (f *fakeAPI) ListClients(ctx context.Context) ([]entities.Client, error) {
	if f.listClients == nil {
		return []entities.Client{}, nil
	}
	return f.listClients(ctx)
}

func (f *fakeAPI) CreateClient(ctx context.Context, req autoservice.CreateClientRequest) (*entities.Client, error) {
	if f.createClient == nil {
		f.t.Fatal("unexpected CreateClient call")
	}
	return f.createClient(ctx, req)
}

func (f *fakeAPI) ListCars(ctx context.Context) ([]entities.Car, error) {
	if f.listCars == nil {
		return []entities.Car{}, nil
	}
	return f.listCars(ctx)
}

func (f *fakeAPI) CreateCar(ctx context.Context, req autoservice.CreateCarRequest) (*entities.Car, error) {
	if f.createCar == nil {
		f.t.Fatal("unexpected CreateCar call")
	}
	return f.createCar(ctx, req)
}

func (f *fakeAPI) ListServices(ctx context.Context) ([]entities.Service, error) {
	if f.listServices == nil {
		return []entities.Service{}, nil
	}
	return f.listServices(ctx)
}

func (f *fakeAPI) CreateService(ctx context.Context, req autoservice.CreateServiceRequest) (*entities.Service, error) {
	if f.createService == nil {
		f.t.Fatal("unexpected CreateService call")
	}
	return f.createService(ctx, req)
}

func (f *fakeAPI) ListAppointments(ctx context.Context) ([]entities.Appointment, error) {
	if f.listAppointments == nil {
		return []entities.Appointment{}, nil
	}
	return f.listAppointments(ctx)
}

func (f *fakeAPI) CreateAppointment(ctx context.Context, req autoservice.CreateAppointmentRequest) (*entities.Appointment, error) {
	if f.createAppointment == nil {
		f.t.Fatal("unexpected CreateAppointment call")
	}
	return f.createAppointment(ctx, req)
}

func (f *fakeAPI) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	if f.listEmployees == nil {
		return []entities.Employee{}, nil
	}
	return f.listEmployees(ctx)
}

func (f *fakeAPI) CreateEmployee(ctx context.Context, req autoservice.CreateEmployeeRequest) (*entities.Employee, error) {
	if f.createEmployee == nil {
		f.t.Fatal("unexpected CreateEmployee call")
	}
	return f.createEmployee(ctx, req)
}

func (f *fakeAPI) ListParts(ctx context.Context) ([]entities.Part, error) {
	if f.listParts == nil {
		return []entities.Part{}, nil
	}
	return f.listParts(ctx)
}

func (f *fakeAPI) CreatePart(ctx context.Context, req autoservice.CreatePartRequest) (*entities.Part, error) {
	if f.createPart == nil {
		f.t.Fatal("unexpected CreatePart call")
	}
	return f.createPart(ctx, req)
}

func (f *fakeAPI) ListCategories(ctx context.Context) ([]entities.Category, error) {
	if f.listCategories == nil {
		return []entities.Category{}, nil
	}
	return f.listCategories(ctx)
}

func (f *fakeAPI) CreateCategory(ctx context.Context, req autoservice.CreateCategoryRequest) (*entities.Category, error) {
	if f.createCategory == nil {
		f.t.Fatal("unexpected CreateCategory call")
	}
	return f.createCategory(ctx, req)
}

func (f *fakeAPI) ListReviews(ctx context.Context) ([]entities.Review, error) {
	if f.listReviews == nil {
		return []entities.Review{}, nil
	}
	return f.listReviews(ctx)
}

func (f *fakeAPI) CreateReview(ctx context.Context, req autoservice.CreateReviewRequest) (*entities.Review, error) {
	if f.createReview == nil {
		f.t.Fatal("unexpected CreateReview call")
	}
	return f.createReview(ctx, req)
}

func testUser() entities.User {
	return entities.User{Username: "admin", UserID: 1}
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(session.NewFileRepository(filepath.Join(t.TempDir(), "session.json")))
}

func newTestRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	renderer, err := views.New()
	require.NoError(t, err)
	return renderer
}
