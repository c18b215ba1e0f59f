package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler writes the response for a recovered panic
type PanicHandler func(w http.ResponseWriter, r *http.Request, recovered any)

// Recovery creates panic recovery middleware; onPanic writes the error response
func Recovery(logger *slog.Logger, onPanic PanicHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				// ErrAbortHandler is how a handler drops a connection on purpose
				if e, ok := recovered.(error); ok && errors.Is(e, http.ErrAbortHandler) {
					panic(recovered)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.String("panic", fmt.Sprint(recovered)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				onPanic(w, r, recovered)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// DefaultPanicHandler returns a plain 500
func DefaultPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
