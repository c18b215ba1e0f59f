package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/mockify/internal/web/templates/layout"
)

const (
	flashCookieName = "mockify_flash"
	flashContextKey = contextKey("flash")
)

// Flash message types, used as CSS class suffixes
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// GetFlash retrieves the flash message from the request context
// Returns nil if no flash message is set
func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash sets a flash message to be displayed on the next request
func SetFlash(w http.ResponseWriter, flashType, message string) {
	value := url.QueryEscape(flashType + ":" + message)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60, // 1 minute expiry
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears flash messages.
// A message survives exactly one page load.
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *layout.FlashMessage

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				// Parse flash message
				flash = parseFlash(cookie.Value)

				// Clear the cookie
				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseFlash(value string) *layout.FlashMessage {
	if decoded, err := url.QueryUnescape(value); err == nil {
		value = decoded
	}
	flashType, message, ok := strings.Cut(value, ":")
	if !ok {
		return &layout.FlashMessage{Type: FlashInfo, Message: value}
	}
	return &layout.FlashMessage{Type: flashType, Message: message}
}
