package handler

import (
	"net/http"

	mw "github.com/talkboard-dev/talkboard/internal/middleware"
	"github.com/talkboard-dev/talkboard/shared/api"
	"github.com/talkboard-dev/talkboard/shared/utils"
)

// ListTopics returns topics ordered by last activity, most recent first.
// Optional query params: page, limit.
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		if page, err = utils.ParseIntParam(pageStr, "page"); err != nil {
			utils.WriteError(w, err)
			return
		}
	}

	var limit int
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		if limit, err = utils.ParseIntParam(limitStr, "limit"); err != nil {
			utils.WriteError(w, err)
			return
		}
	}

	topics, err := h.topic.List(page, limit)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	response := api.TopicListResponse{Topics: make([]api.Topic, 0, len(topics))}
	for _, topic := range topics {
		response.Topics = append(response.Topics, api.TopicFromDomain(topic))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateTopicRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	topic, err := h.topic.Create(user, body.Title)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreatedTopicResponse{
		Topic: api.CreatedTopic{Id: topic.Id, Title: topic.Title, CreatedAt: topic.CreatedAt},
	})
}

// ListTopicMessages returns one ascending page of a topic's thread.
// Requires the topic_id query parameter; optional: limit, cursor.
func (h *Handler) ListTopicMessages(w http.ResponseWriter, r *http.Request) {
	topicIdStr := r.URL.Query().Get("topic_id")
	if topicIdStr == "" {
		utils.WriteErrorMessage(w, "topic_id is required", http.StatusBadRequest)
		return
	}
	topicId, err := utils.ParseIntParam(topicIdStr, "topic_id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	limit, cursor, err := parsePageParams(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	messages, next, err := h.topic.Messages(int64(topicId), cursor, limit)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	response := api.TopicMessageListResponse{Messages: make([]api.TopicMessage, 0, len(messages))}
	for _, msg := range messages {
		response.Messages = append(response.Messages, api.TopicMessageFromDomain(msg))
	}
	if next != nil {
		response.NextCursor = api.EncodeCursor(*next)
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) CreateTopicMessage(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateTopicMessageRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	msg, err := h.topic.CreateMessage(user, body.TopicId, body.Content)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.TopicMessageResponse{
		Message: api.BoardMessage{Id: msg.Id, Content: msg.Content, CreatedAt: msg.CreatedAt},
	})
}
