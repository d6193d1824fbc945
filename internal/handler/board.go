package handler

import (
	"net/http"

	"github.com/talkboard-dev/talkboard/shared/api"
	"github.com/talkboard-dev/talkboard/shared/utils"
)

// ListBoardMessages returns one page of the flat anonymous board, newest
// first. Optional query params: limit, cursor.
func (h *Handler) ListBoardMessages(w http.ResponseWriter, r *http.Request) {
	limit, cursor, err := parsePageParams(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	messages, next, err := h.board.Messages(cursor, limit)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	response := api.BoardMessageListResponse{Messages: make([]api.BoardMessage, 0, len(messages))}
	for _, msg := range messages {
		response.Messages = append(response.Messages, api.BoardMessageFromDomain(msg))
	}
	if next != nil {
		response.NextCursor = api.EncodeCursor(*next)
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) CreateBoardMessage(w http.ResponseWriter, r *http.Request) {
	var body api.CreateMessageRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	msg, err := h.board.Create(body.Content)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.BoardMessageResponse{Message: api.BoardMessageFromDomain(msg)})
}
