package autoservice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/avtoservice/admin-console/internal/domain/entities"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// TokenSource provides the current session bearer token. An empty
// token means the call is made without credentials.
type TokenSource interface {
	Token() string
}

// Client is the typed wrapper over the auto-service REST API. One
// domain operation maps to one HTTP request; each call resolves or
// fails exactly once, with no retries inside the client.
type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Register(ctx context.Context, username, password string) error
	ListClients(ctx context.Context) ([]entities.Client, error)
	CreateClient(ctx context.Context, req CreateClientRequest) (*entities.Client, error)
	ListCars(ctx context.Context) ([]entities.Car, error)
	CreateCar(ctx context.Context, req CreateCarRequest) (*entities.Car, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	CreateService(ctx context.Context, req CreateServiceRequest) (*entities.Service, error)
	ListAppointments(ctx context.Context) ([]entities.Appointment, error)
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*entities.Appointment, error)
	ListEmployees(ctx context.Context) ([]entities.Employee, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*entities.Employee, error)
	ListParts(ctx context.Context) ([]entities.Part, error)
	CreatePart(ctx context.Context, req CreatePartRequest) (*entities.Part, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*entities.Category, error)
	ListReviews(ctx context.Context) ([]entities.Review, error)
	CreateReview(ctx context.Context, req CreateReviewRequest) (*entities.Review, error)
}

// HTTPClient implements Client over net/http. Cancellation is driven
// by the caller's context; the client sets no timeout of its own.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a new auto-service API client
func NewClient(baseURL string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
	}
}

// Ping issues a bare request against the base URL. Any HTTP response,
// including an error status, proves the API is reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}

// doJSON issues a JSON request and decodes the response into out.
// Transport failures and non-2xx statuses both collapse into a single
// external error carrying only failMsg; the status code and response
// body are deliberately not surfaced to callers.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out interface{}, failMsg string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError(failMsg, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.NewInternalError(failMsg, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.do(req, out, failMsg)
}

// doForm issues a form-urlencoded POST; only the login endpoint uses it.
func (c *HTTPClient) doForm(ctx context.Context, path string, form url.Values, out interface{}, failMsg string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return apperrors.NewInternalError(failMsg, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.authorize(req)

	return c.do(req, out, failMsg)
}

func (c *HTTPClient) do(req *http.Request, out interface{}, failMsg string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewExternalError(failMsg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return apperrors.NewExternalError(failMsg, nil)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewExternalError(failMsg, err)
	}
	return nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
