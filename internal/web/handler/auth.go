package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/mockify/internal/services/nav"
	"github.com/mcoot/mockify/internal/web/middleware"
)

// DemoUsername is the account the demo login button signs in as
const DemoUsername = "demo"

// AuthHandler handles the fake login actions
type AuthHandler struct {
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(logger *slog.Logger) *AuthHandler {
	return &AuthHandler{logger: logger}
}

// Login handles the login form. Any username is accepted and the password is ignored.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, nav.IndexPage, http.StatusSeeOther)
		return
	}

	h.login(w, r, strings.TrimSpace(r.FormValue("username")), r.FormValue("password"))
}

// Demo logs in as the demo user
func (h *AuthHandler) Demo(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, DemoUsername, "")
}

// Logout removes the session marker and returns to the index page
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	app := middleware.GetApp(r.Context())
	if err := app.Auth.Logout(r.Context()); err != nil {
		h.logger.Error("logout failed", "error", err)
		middleware.SetFlash(w, middleware.FlashError, "Logout failed")
		http.Redirect(w, r, nav.IndexPage, http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, middleware.FlashInfo, "You have been logged out")
	http.Redirect(w, r, nav.IndexPage, http.StatusSeeOther)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, username, password string) {
	app := middleware.GetApp(r.Context())
	if _, err := app.Auth.Login(r.Context(), username, password); err != nil {
		h.logger.Error("login failed", "error", err)
		middleware.SetFlash(w, middleware.FlashError, "Login failed")
		http.Redirect(w, r, nav.IndexPage, http.StatusSeeOther)
		return
	}

	user, err := app.Auth.CurrentUser(r.Context())
	if err == nil && user != nil {
		username = user.Username
	}
	middleware.SetFlash(w, middleware.FlashSuccess, "Welcome, "+username+"!")
	http.Redirect(w, r, nav.InterviewPage, http.StatusSeeOther)
}
