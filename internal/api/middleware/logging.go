package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mockify/internal/middleware"
)

// Logging logs API requests, tagged so they can be told apart from page traffic
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "api")))
}

// CORS allows any origin, method and header. Browsers served from another origin
// (a static frontend on a different port, say) can call the API directly.
func CORS(next http.Handler) http.Handler {
	return middleware.CORS(next)
}
