package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mockify/internal/client"
	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/services/nav"
	"github.com/mcoot/mockify/internal/storage"
	"github.com/mcoot/mockify/internal/web/handler"
	"github.com/mcoot/mockify/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger *slog.Logger
	// Storage holds every browser's client storage namespace
	Storage storage.Storage
	Clock   clock.Clock
	// Client is what the pages use to reach the backend API
	Client        config.Client
	ClientOptions []client.Option
	StaticDir     string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	identityMiddleware := middleware.ClientIdentity()
	sessionMiddleware := middleware.Session(cfg.Client, cfg.Storage, cfg.Clock, cfg.Logger, cfg.ClientOptions...)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.Client.AppName)
	authHandler := handler.NewAuthHandler(cfg.Logger)
	interviewHandler := handler.NewInterviewHandler(cfg.Client.AppName)
	dashboardHandler := handler.NewDashboardHandler(cfg.Client.AppName, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	pages := r.NewRoute().Subrouter()
	pages.Use(identityMiddleware)
	pages.Use(flashMiddleware)
	pages.Use(sessionMiddleware)

	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc(nav.IndexPage, homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc(nav.InterviewPage, interviewHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/interview/ai", interviewHandler.AskAI).Methods(http.MethodPost)
	pages.HandleFunc(nav.DashboardPage, dashboardHandler.View).Methods(http.MethodGet)

	pages.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	pages.HandleFunc("/auth/demo", authHandler.Demo).Methods(http.MethodPost)
	pages.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	return r
}
