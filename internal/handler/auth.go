package handler

import (
	"net/http"

	"github.com/talkboard-dev/talkboard/shared/api"
	"github.com/talkboard-dev/talkboard/shared/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.auth.Register(body.Username, body.Email, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.AuthResponse{User: api.UserFromDomain(user), Token: token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.auth.Login(body.Email, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.AuthResponse{User: api.UserFromDomain(user), Token: token})
}
