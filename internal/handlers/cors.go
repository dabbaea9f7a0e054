package handlers

import (
	"net/http"
	"strings"
)

// CORS opens the API to the embedding storefront page. The widget is served
// from the shop's own domain, so the default origin is the wildcard.
func (h *Handlers) CORS(next http.Handler) http.Handler {
	origin := strings.TrimSpace(h.config.AllowedOrigin)
	if origin == "" {
		origin = "*"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := w.Header()
		headers.Set("Access-Control-Allow-Origin", origin)
		headers.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		headers.Set("Access-Control-Allow-Headers", "Content-Type")
		headers.Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
