package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts GET /favicon.svg. Query parameters theme, accent
// and dark override the given defaults; invalid values fall back to them.
func RegisterRoutes(r chi.Router, theme Theme, accent Accent) {
	r.Get("/favicon.svg", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		t := theme
		if v := q.Get("theme"); v != "" {
			if parsed, ok := ParseTheme(v); ok {
				t = parsed
			}
		}
		a := accent
		if v := q.Get("accent"); v != "" {
			if parsed, ok := ParseAccent(v); ok {
				a = parsed
			}
		}
		dark := q.Get("dark") != "0"

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write([]byte(Favicon(t, a, dark)))
	})
}
