package domain

import "time"

type MessageId = int64

// Message is a single post. TopicId is nil for the flat anonymous board,
// Author is nil for anonymous posts.
type Message struct {
	Id        MessageId
	Content   string
	CreatedAt time.Time
	Author    *Author
	TopicId   *TopicId
}

// Cursor is a keyset pagination position over (created_at, id).
type Cursor struct {
	CreatedAt time.Time `json:"created_at"`
	Id        int64     `json:"id"`
}
