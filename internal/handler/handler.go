package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/talkboard-dev/talkboard/internal/service"
	"github.com/talkboard-dev/talkboard/shared/config"
	"github.com/talkboard-dev/talkboard/shared/logger"
	"github.com/talkboard-dev/talkboard/shared/utils"
)

// Pinger reports store reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	board  service.BoardService
	topic  service.TopicService
	health Pinger
	cfg    *config.Config
}

func New(auth service.AuthService, board service.BoardService, topic service.TopicService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{auth, board, topic, health, cfg}
}

// NotFound is the fallback for unmatched routes and unknown auth actions.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteErrorMessage(w, "Not found", http.StatusNotFound)
}

// MethodNotAllowed is the fallback for known paths hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteErrorMessage(w, "Method not allowed", http.StatusMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
