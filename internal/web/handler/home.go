package handler

import (
	"net/http"

	"github.com/mcoot/mockify/internal/services/nav"
	"github.com/mcoot/mockify/internal/web/middleware"
	"github.com/mcoot/mockify/internal/web/templates/layout"
	"github.com/mcoot/mockify/internal/web/templates/pages"
)

// HomeHandler handles the landing page
type HomeHandler struct {
	appName string
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(appName string) *HomeHandler {
	return &HomeHandler{appName: appName}
}

// Home renders the landing page. ?login=1 opens the login modal.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.IndexData{
		PageData: pageData(r, h.appName, "Home", nav.IndexPage),
	}
	if r.URL.Query().Get("login") != "" && !middleware.IsLoggedIn(r.Context()) {
		data.Modal = nav.OpenModal()
	}

	render(w, r, pages.Index(data))
}

// pageData fills the shared layout fields from the request context
func pageData(r *http.Request, appName, title, path string) layout.PageData {
	ctx := r.Context()
	return layout.PageData{
		Title:       title,
		AppName:     appName,
		CurrentPath: path,
		Navbar:      nav.NavbarFor(middleware.IsLoggedIn(ctx)),
		Modal:       nav.CloseModal(),
		User:        middleware.GetUser(ctx),
		Flash:       middleware.GetFlash(ctx),
	}
}
