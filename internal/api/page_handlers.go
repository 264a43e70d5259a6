package api

import (
	"broadwaylounge/internal/service"
	"log/slog"
	"net/http"
	"strings"
)

// PageHandler serves the fixed set of template-rendered pages. One
// handler backs every page route; the route table decides what reaches it.
type PageHandler struct {
	Renderer *service.Renderer
}

func NewPageHandler(renderer *service.Renderer) *PageHandler {
	return &PageHandler{Renderer: renderer}
}

// ServePage renders the template derived from the request path. A route
// on the allow-list whose template file is missing is a deployment fault
// and comes back as a 500.
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	name := templateName(r.URL.Path)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.Render(w, name, nil); err != nil {
		slog.Error("page render failed", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// templateName maps a request path to its page template: slashes trimmed,
// the bare root falling back to index.
func templateName(path string) string {
	name := strings.Trim(path, "/")
	if name == "" {
		return "index"
	}
	return name
}

// Health is the liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
