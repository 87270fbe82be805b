package handlers

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/domain/entities"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/observability"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// AuthHandler serves the sign-in and registration pages and manages
// the operator session.
type AuthHandler struct {
	api   autoservice.Client
	store *session.Store
	views *views.Renderer
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(api autoservice.Client, store *session.Store, renderer *views.Renderer) *AuthHandler {
	return &AuthHandler{
		api:   api,
		store: store,
		views: renderer,
	}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if h.store.Current().Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderLogin(w, "", "")
}

// Login handles POST /login. The token grant replaces any previous
// session; a rejected sign-in shows a static message and keeps the
// entered username.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := formString(r, "username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderLogin(w, username, "username and password are required")
		return
	}

	resp, err := h.api.Login(r.Context(), username, password)
	if err != nil {
		h.renderLogin(w, username, apperrors.UserMessage(err))
		return
	}

	user := entities.User{Username: resp.Username, UserID: resp.UserID}
	if err := h.store.Login(r.Context(), user, resp.AccessToken); err != nil {
		// session lives in memory; a persistence failure only costs restore
		observability.GetLogger().Warn().Err(err).Msg("Failed to persist session")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, "", "")
}

// Register handles POST /register. A new account does not sign the
// operator in; they land back on the login page.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := formString(r, "username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderRegister(w, username, "username and password are required")
		return
	}

	if err := h.api.Register(r.Context(), username, password); err != nil {
		h.renderRegister(w, username, apperrors.UserMessage(err))
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Logout(r.Context()); err != nil {
		observability.GetLogger().Warn().Err(err).Msg("Failed to clear persisted session")
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, username, errMsg string) {
	h.views.Render(w, "login", views.LoginData{
		Page:     views.Page{Title: "Sign in", Error: errMsg},
		Username: username,
	})
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, username, errMsg string) {
	h.views.Render(w, "register", views.RegisterData{
		Page:     views.Page{Title: "Register", Error: errMsg},
		Username: username,
	})
}
