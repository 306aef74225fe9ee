package share

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/prompter/internal/sanitize"
	"github.com/ziadkadry99/prompter/internal/script"
)

type uploadRequest struct {
	Content string `json:"content"`
}

type uploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// RegisterRoutes mounts the upload and fetch routes. baseURL prefixes the
// share links returned from uploads.
func RegisterRoutes(r chi.Router, store *Store, baseURL string) {
	baseURL = strings.TrimRight(baseURL, "/")

	upload := handleUpload(store, baseURL)
	r.Post("/upload", upload)
	r.Post("/api/scripts", upload)
	r.Get("/api/scripts/{id}/slides", handleSlides(store))
	r.Get("/script/{id}", handleRaw(store))
	r.Get("/s/{id}", handlePage(store))
}

func handleUpload(store *Store, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req uploadRequest
		body := http.MaxBytesReader(w, r.Body, MaxBodyBytes(store.MaxChars()))
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sc, err := store.Save(r.Context(), req.Content)
		if errors.Is(err, ErrEmptyScript) || errors.Is(err, ErrScriptTooLarge) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			slog.Error("saving shared script", "error", err)
			writeError(w, http.StatusInternalServerError, "could not save script")
			return
		}

		slog.Info("script shared", "id", sc.ID, "chars", len(sc.Content))
		writeJSON(w, http.StatusOK, uploadResponse{ID: sc.ID, URL: baseURL + "/s/" + sc.ID})
	}
}

func handleRaw(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := lookup(w, r, store)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(sc.Content))
	}
}

func handleSlides(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := lookup(w, r, store)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, sanitize.Script(script.Parse(sc.Content)))
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Prompter</title>
<link rel="icon" href="/favicon.svg">
</head>
<body data-script-id="{{.}}">
<noscript>Open <a href="/script/{{.}}">the script text</a>.</noscript>
</body>
</html>
`))

func handlePage(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := lookup(w, r, store)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		pageTemplate.Execute(w, sc.ID)
	}
}

func lookup(w http.ResponseWriter, r *http.Request, store *Store) (*SharedScript, bool) {
	id := chi.URLParam(r, "id")
	if !ValidID(id) {
		writeError(w, http.StatusNotFound, ErrNotFound.Error())
		return nil, false
	}
	sc, err := store.Load(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err != nil {
		slog.Error("loading shared script", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load script")
		return nil, false
	}
	return sc, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
