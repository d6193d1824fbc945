package api

import (
	"time"

	"github.com/talkboard-dev/talkboard/shared/domain"
)

// Request DTOs

type CreateMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

// BoardMessage is a flat-board entry; board messages are always anonymous.
type BoardMessage struct {
	Id        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type BoardMessageResponse struct {
	Message BoardMessage `json:"message"`
}

type BoardMessageListResponse struct {
	Messages   []BoardMessage `json:"messages"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

func BoardMessageFromDomain(m domain.Message) BoardMessage {
	return BoardMessage{Id: m.Id, Content: m.Content, CreatedAt: m.CreatedAt}
}
