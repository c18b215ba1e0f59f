package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// corsPolicy lets any origin call the API with credentials. The origin is echoed
// back rather than answered with "*", which browsers refuse alongside credentials.
var corsPolicy = cors.New(cors.Options{
	AllowOriginFunc:  func(string) bool { return true },
	AllowCredentials: true,
	AllowedMethods: []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodHead,
	},
	AllowedHeaders:       []string{"*"},
	MaxAge:               600,
	OptionsSuccessStatus: http.StatusNoContent,
})

// CORS answers preflight requests and marks responses as shareable with the calling origin
func CORS(next http.Handler) http.Handler {
	return corsPolicy.Handler(next)
}
