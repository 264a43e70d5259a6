package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// PageRoutes is the allow-list of paths served from page templates.
var PageRoutes = []string{
	"/",
	"/reservations",
	"/about",
	"/bar",
	"/contact",
	"/gallery",
	"/philex-index",
}

// NewRouter registers every route and wraps the router in the response
// middleware chain. The header middlewares sit outside recovery and
// compression so that 404s, panics-turned-500s and static files all carry
// the same headers.
func NewRouter(pages *PageHandler, forms *FormHandler, staticDir string) http.Handler {
	r := mux.NewRouter()

	// Page endpoints
	for _, route := range PageRoutes {
		r.HandleFunc(route, pages.ServePage).Methods("GET")
	}
	r.HandleFunc("/healthz", Health).Methods("GET")

	// Form endpoints
	r.HandleFunc("/contact-us", forms.SubmitContact).Methods("POST")
	r.HandleFunc("/reserve-table", forms.SubmitReservation).Methods("POST")

	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	var h http.Handler = r
	h = handlers.CompressHandler(h)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	h = FontContentType(h)
	h = SecureHeaders(h)
	return h
}
