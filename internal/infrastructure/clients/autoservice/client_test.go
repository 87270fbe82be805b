package autoservice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestLogin_SendsFormEncodedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "admin", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "abc",
			"token_type":   "bearer",
			"username":     "admin",
			"user_id":      1,
		})
	}))
	defer server.Close()

	client := autoservice.NewClient(server.URL, staticToken(""))
	resp, err := client.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	assert.Equal(t, "abc", resp.AccessToken)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, int64(1), resp.UserID)
}

func TestLogin_RejectionYieldsStaticMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"bad credentials"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := autoservice.NewClient(server.URL, staticToken(""))
	_, err := client.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, "failed to sign in", apperrors.UserMessage(err))
}

func TestListClients_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":1,"first_name":"Ivan","last_name":"Petrov"}]`))
	}))
	defer server.Close()

	client := autoservice.NewClient(server.URL, staticToken("abc"))
	clients, err := client.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ivan", clients[0].FirstName)
}

func TestListClients_NoSessionSendsNoCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := autoservice.NewClient(server.URL, staticToken(""))
	_, err := client.ListClients(context.Background())
	require.NoError(t, err)
}

func TestListClients_ServerFaultYieldsStaticMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := autoservice.NewClient(server.URL, staticToken("abc"))
	_, err := client.ListClients(context.Background())
	require.Error(t, err)

	// Status code and body stay hidden; only the static message surfaces.
	assert.Equal(t, "failed to load clients", apperrors.UserMessage(err))
	assert.False(t, apperrors.IsValidation(err))
}

func TestCreateClient_ReturnsDecodedRepresentation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ivan", body["first_name"])
		assert.Equal(t, "Petrov", body["last_name"])

		w.Write([]byte(`{"id":5,"first_name":"Ivan","last_name":"Petrov"}`))
	}))
	defer server.Close()

	client := autoservice.NewClient(server.URL, staticToken("abc"))
	created, err := client.CreateClient(context.Background(), autoservice.CreateClientRequest{
		FirstName: "Ivan",
		LastName:  "Petrov",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestCreateCar_AppliesDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "active", body["status"])
		assert.Equal(t, float64(0), body["mileage"])

		w.Write([]byte(`{"id":3,"client_id":1,"make":"Lada","model":"Vesta","status":"active"}`))
	}))
	defer server.Close()

	client := autoservice.NewClient(server.URL, staticToken("abc"))
	car, err := client.CreateCar(context.Background(), autoservice.CreateCarRequest{
		ClientID: 1,
		Make:     "Lada",
		Model:    "Vesta",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), car.ID)
}

func TestCreateAppointment_DefaultsStatusToScheduled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "scheduled", body["status"])

		w.Write([]byte(`{"id":7,"client_id":1,"car_id":2,"service_id":3,"appointment_date":"2026-09-01T10:00:00","status":"scheduled"}`))
	}))
	defer server.Close()

	client := autoservice.NewClient(server.URL, staticToken("abc"))
	appt, err := client.CreateAppointment(context.Background(), autoservice.CreateAppointmentRequest{
		ClientID:        1,
		CarID:           2,
		ServiceID:       3,
		AppointmentDate: "2026-09-01T10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), appt.ID)
}

func TestRegister_DuplicateUsernameYieldsStaticMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"user exists"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := autoservice.NewClient(server.URL, staticToken(""))
	err := client.Register(context.Background(), "admin", "secret")
	require.Error(t, err)
	assert.Equal(t, "registration failed", apperrors.UserMessage(err))
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
		wantMsg   string
	}{
		{
			name:      "appointment without car",
			err:       autoservice.CreateAppointmentRequest{ServiceID: 1, AppointmentDate: "2026-09-01T10:00"}.Validate(),
			wantField: "car_id",
			wantMsg:   "select a car",
		},
		{
			name:      "appointment without service",
			err:       autoservice.CreateAppointmentRequest{CarID: 1, AppointmentDate: "2026-09-01T10:00"}.Validate(),
			wantField: "service_id",
			wantMsg:   "select a service",
		},
		{
			name:      "client without first name",
			err:       autoservice.CreateClientRequest{LastName: "Petrov"}.Validate(),
			wantField: "first_name",
			wantMsg:   "first name is required",
		},
		{
			name:      "part without sku",
			err:       autoservice.CreatePartRequest{Name: "filter", CarID: 1}.Validate(),
			wantField: "sku",
			wantMsg:   "sku is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, apperrors.IsValidation(tt.err))

			var appErr *apperrors.AppError
			require.ErrorAs(t, tt.err, &appErr)
			assert.Equal(t, tt.wantField, appErr.Field)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}
