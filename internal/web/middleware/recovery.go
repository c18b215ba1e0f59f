package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mockify/internal/middleware"
	"github.com/mcoot/mockify/internal/services/nav"
)

// Recovery turns a panic in a page handler into an HTML error page
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("surface", "web")), pagePanicHandler)
}

const errorPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Something went wrong</title></head>
<body>
<h1>Something went wrong</h1>
<p>The page failed to load. Your login is unaffected.</p>
<p><a href="` + nav.IndexPage + `">Back to the start page</a></p>
</body>
</html>`

func pagePanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(errorPage))
}
