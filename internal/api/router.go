package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mockify/internal/api/apierr"
	"github.com/mcoot/mockify/internal/api/handler"
	"github.com/mcoot/mockify/internal/api/middleware"
	"github.com/mcoot/mockify/internal/api/response"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	Interviewer handler.Interviewer
	Analyzer    handler.Analyzer
	Resumes     handler.ResumeAnalyzer
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	interviewHandler := handler.NewInterviewHandler(cfg.Interviewer, cfg.Analyzer)
	aiHandler := handler.NewAIHandler(cfg.Interviewer)
	resumeHandler := handler.NewResumeHandler(cfg.Resumes)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/stats", interviewHandler.Stats).Methods(http.MethodGet)

	// Interview routes; /interview/start and /start-interview are older client paths
	api.HandleFunc("/interview/ask", interviewHandler.Ask).Methods(http.MethodPost)
	api.HandleFunc("/interview/start", interviewHandler.Ask).Methods(http.MethodPost)
	api.HandleFunc("/start-interview", interviewHandler.Ask).Methods(http.MethodPost)
	api.HandleFunc("/interview/analyze", interviewHandler.Analyze).Methods(http.MethodPost)

	// AI router targets
	api.HandleFunc("/ai/local", aiHandler.Local).Methods(http.MethodPost)
	api.HandleFunc("/ai/cloud", aiHandler.Cloud).Methods(http.MethodPost)

	// Resume screening
	api.HandleFunc("/resume/analyze", resumeHandler.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/resume/analyze_batch", resumeHandler.Rank).Methods(http.MethodPost)
	api.HandleFunc("/resume/history", resumeHandler.History).Methods(http.MethodGet)
	api.HandleFunc("/resume/clear_history", resumeHandler.ClearHistory).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	// CORS wraps the router so preflight requests reach it before method matching
	return middleware.CORS(r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
