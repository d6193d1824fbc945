package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/talkboard-dev/talkboard/shared/logger"
	"github.com/talkboard-dev/talkboard/shared/utils"
)

const readyTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// Ready reports whether the database answers within readyTimeout.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Error("readiness probe failed", "error", err)
		utils.WriteErrorMessage(w, "Storage unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
