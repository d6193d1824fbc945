package api

import (
	"time"

	"github.com/talkboard-dev/talkboard/shared/domain"
)

// Request DTOs

type CreateTopicRequest struct {
	Title string `json:"title" validate:"required"`
}

type CreateTopicMessageRequest struct {
	Content string `json:"content" validate:"required"`
	TopicId int64  `json:"topic_id" validate:"required"`
}

// Response DTOs

type TopicAuthor struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
}

type Topic struct {
	Id           int64       `json:"id"`
	Title        string      `json:"title"`
	CreatedAt    time.Time   `json:"created_at"`
	User         TopicAuthor `json:"user"`
	MessageCount int64       `json:"message_count"`
	LastActivity time.Time   `json:"last_activity"`
}

type TopicListResponse struct {
	Topics []Topic `json:"topics"`
}

// CreatedTopic deliberately omits the derived fields: a fresh topic has no
// messages and its last activity equals created_at.
type CreatedTopic struct {
	Id        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatedTopicResponse struct {
	Topic CreatedTopic `json:"topic"`
}

// TopicMessage carries its author, or null for anonymous posts.
type TopicMessage struct {
	Id        int64        `json:"id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	User      *TopicAuthor `json:"user"`
}

type TopicMessageResponse struct {
	Message BoardMessage `json:"message"`
}

type TopicMessageListResponse struct {
	Messages   []TopicMessage `json:"messages"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

func TopicFromDomain(t domain.Topic) Topic {
	return Topic{
		Id:        t.Id,
		Title:     t.Title,
		CreatedAt: t.CreatedAt,
		User: TopicAuthor{
			Id:       t.User.Id,
			Username: t.User.Username,
		},
		MessageCount: t.MessageCount,
		LastActivity: t.LastActivity,
	}
}

func TopicMessageFromDomain(m domain.Message) TopicMessage {
	msg := TopicMessage{Id: m.Id, Content: m.Content, CreatedAt: m.CreatedAt}
	if m.Author != nil {
		msg.User = &TopicAuthor{Id: m.Author.Id, Username: m.Author.Username}
	}
	return msg
}
