package domain

import "time"

type TopicId = int64

// Topic is a named thread. MessageCount and LastActivity are derived:
// LastActivity falls back to the topic's own CreatedAt when it has no messages.
type Topic struct {
	Id           TopicId
	Title        string
	CreatedAt    time.Time
	User         Author
	MessageCount int64
	LastActivity time.Time
}
