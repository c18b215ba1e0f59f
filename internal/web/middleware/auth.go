package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mcoot/mockify/internal/client"
	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/factory"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/storage"
)

type contextKey string

const (
	clientIDContextKey contextKey = "clientID"
	appContextKey      contextKey = "clientApp"
	userContextKey     contextKey = "user"
	loggedInContextKey contextKey = "loggedIn"
)

// ClientCookieName holds the browser's client storage namespace
const ClientCookieName = "mockify_client"

// GetClientID retrieves the client storage namespace from the request context
func GetClientID(ctx context.Context) model.ClientID {
	id, _ := ctx.Value(clientIDContextKey).(model.ClientID)
	return id
}

// GetApp retrieves the per-client components from the request context
// Returns nil outside the Session middleware
func GetApp(ctx context.Context) *factory.ClientApp {
	app, _ := ctx.Value(appContextKey).(*factory.ClientApp)
	return app
}

// GetUser retrieves the logged in user from the request context
// Returns nil if nobody is logged in
func GetUser(ctx context.Context) *model.Session {
	user, _ := ctx.Value(userContextKey).(*model.Session)
	return user
}

// IsLoggedIn reports whether the request's client storage holds a session marker
func IsLoggedIn(ctx context.Context) bool {
	loggedIn, _ := ctx.Value(loggedInContextKey).(bool)
	return loggedIn
}

// ClientIdentity assigns every browser a client storage namespace, kept in a cookie
func ClientIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id model.ClientID
			if cookie, err := r.Cookie(ClientCookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = model.ClientID(parsed.String())
				}
			}
			if id == "" {
				id = model.ClientID(uuid.NewString())
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookieName,
					Value:    string(id),
					Path:     "/",
					MaxAge:   86400 * 365,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), clientIDContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Session builds the client-side components for the request's namespace and
// loads the login state. Requires ClientIdentity to be applied first.
func Session(cfg config.Client, store storage.Storage, clk clock.Clock, logger *slog.Logger, opts ...client.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			app := factory.NewClientApp(cfg, store, GetClientID(ctx), clk, logger, opts...)

			loggedIn, err := app.Auth.IsLoggedIn(ctx)
			if err != nil {
				logger.Error("failed to read login state", "error", err)
			}

			var user *model.Session
			if loggedIn {
				user, err = app.Auth.CurrentUser(ctx)
				if err != nil {
					// a garbled marker still counts as logged in
					logger.Warn("unreadable session marker", "error", err)
					user = nil
				}
			}

			ctx = context.WithValue(ctx, appContextKey, app)
			ctx = context.WithValue(ctx, loggedInContextKey, loggedIn)
			ctx = context.WithValue(ctx, userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
