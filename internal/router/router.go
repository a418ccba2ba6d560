package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/middleware/metrics"
	"github.com/diskusi-dev/diskusi/internal/setup"
)

// New creates and configures a new mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(metrics.Middleware)

	// Wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	needAuth := middleware.NeedAuth(deps.Jwt)

	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.HandleFunc("/readyz", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/threads", needAuth(h.CreateThread)).Methods("POST")
	// Thread detail is readable without signing in
	r.HandleFunc("/threads/{threadId}", h.GetThread).Methods("GET")

	r.HandleFunc("/threads/{threadId}/comments", needAuth(h.CreateComment)).Methods("POST")
	r.HandleFunc("/threads/{threadId}/comments/{commentId}", needAuth(h.DeleteComment)).Methods("DELETE")

	r.HandleFunc("/threads/{threadId}/comments/{commentId}/replies", needAuth(h.CreateReply)).Methods("POST")
	r.HandleFunc("/threads/{threadId}/comments/{commentId}/replies/{replyId}", needAuth(h.DeleteReply)).Methods("DELETE")

	return r
}
