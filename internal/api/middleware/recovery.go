package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mockify/internal/api/apierr"
	"github.com/mcoot/mockify/internal/middleware"
)

// Recovery turns a panic in an API handler into an INTERNAL_ERROR JSON body
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("surface", "api")), func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
