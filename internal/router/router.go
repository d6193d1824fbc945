package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/talkboard-dev/talkboard/internal/middleware"
	"github.com/talkboard-dev/talkboard/internal/middleware/metrics"
	"github.com/talkboard-dev/talkboard/internal/setup"
)

// New creates and configures a new mux router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := mux.NewRouter()

	r.Use(mw.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(handlers.CompressHandler)

	h := deps.Handler
	needAuth := mw.NeedAuth(deps.Auth)

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	// Wildcard OPTIONS handler so preflight requests never 404
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.HandleFunc("/readyz", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Auth routes dispatch on the action query parameter; anything else
	// under /v1/auth is an unknown action.
	auth := v1.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("", h.Register).Methods("POST").Queries("action", "register")
	auth.HandleFunc("", h.Login).Methods("POST").Queries("action", "login")
	auth.PathPrefix("").HandlerFunc(h.NotFound)

	// Flat anonymous board
	board := v1.PathPrefix("/board").Subrouter()
	board.HandleFunc("", h.ListBoardMessages).Methods("GET")
	board.HandleFunc("", h.CreateBoardMessage).Methods("POST")
	board.PathPrefix("").HandlerFunc(h.MethodNotAllowed)

	// Topics and their threads; writes require a resolved identity
	topics := v1.PathPrefix("/topics").Subrouter()
	topics.HandleFunc("", h.ListTopics).Methods("GET")
	topics.HandleFunc("", needAuth(h.CreateTopic)).Methods("POST")
	topics.HandleFunc("/messages", h.ListTopicMessages).Methods("GET")
	topics.HandleFunc("/messages", needAuth(h.CreateTopicMessage)).Methods("POST")
	topics.PathPrefix("").HandlerFunc(h.NotFound)

	// Browser clients talk to the API directly, so CORS wraps everything
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", mw.TokenHeader}),
		handlers.MaxAge(86400),
	)(r)
}
