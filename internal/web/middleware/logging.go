package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mockify/internal/middleware"
)

// Logging logs page requests, tagged so they can be told apart from API traffic
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "web")))
}
