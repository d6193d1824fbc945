package service

import (
	"net/http"
	"strings"

	"github.com/talkboard-dev/talkboard/internal/utils"
	"github.com/talkboard-dev/talkboard/shared/config"
	"github.com/talkboard-dev/talkboard/shared/domain"
	"github.com/talkboard-dev/talkboard/shared/errors"
)

type TopicService interface {
	List(page, limit int) ([]domain.Topic, error)
	Create(author *domain.User, title string) (domain.Topic, error)
	Messages(topicId domain.TopicId, after *domain.Cursor, limit int) ([]domain.Message, *domain.Cursor, error)
	CreateMessage(author *domain.User, topicId domain.TopicId, content string) (domain.Message, error)
}

type TopicStorage interface {
	Topics(limit, offset int) ([]domain.Topic, error)
	CreateTopic(title string, userId domain.UserId) (domain.Topic, error)
	TopicMessages(topicId domain.TopicId, after *domain.Cursor, limit int) ([]domain.Message, error)
	CreateTopicMessage(content string, userId domain.UserId, topicId domain.TopicId) (domain.Message, error)
}

type TitleValidator interface {
	Title(title string) error
}

type Topic struct {
	storage          TopicStorage
	titleValidator   TitleValidator
	contentValidator MessageValidator
	cfg              *config.Public
}

func NewTopic(storage TopicStorage, titleValidator TitleValidator, contentValidator MessageValidator, cfg *config.Public) *Topic {
	return &Topic{storage, titleValidator, contentValidator, cfg}
}

var errUnauthorized = &errors.ErrorWithStatusCode{
	Message:    "Unauthorized",
	StatusCode: http.StatusUnauthorized,
}

// List returns one page of topics ordered by last activity.
func (t *Topic) List(page, limit int) ([]domain.Topic, error) {
	limit = clampLimit(limit, t.cfg)
	if page < 1 {
		page = 1
	}
	return t.storage.Topics(limit, (page-1)*limit)
}

// Create inserts a topic owned by author.
func (t *Topic) Create(author *domain.User, title string) (domain.Topic, error) {
	if author == nil {
		return domain.Topic{}, errUnauthorized
	}

	title = strings.TrimSpace(utils.SanitizeText(title))
	if title == "" {
		return domain.Topic{}, &errors.ErrorWithStatusCode{
			Message:    "Title is required",
			StatusCode: http.StatusBadRequest,
		}
	}
	if err := t.titleValidator.Title(title); err != nil {
		return domain.Topic{}, err
	}

	topic, err := t.storage.CreateTopic(title, author.Id)
	if err != nil {
		return domain.Topic{}, err
	}
	topic.User = author.Author()
	return topic, nil
}

// Messages returns one ascending page of a topic's thread plus the cursor
// for the next page.
func (t *Topic) Messages(topicId domain.TopicId, after *domain.Cursor, limit int) ([]domain.Message, *domain.Cursor, error) {
	limit = clampLimit(limit, t.cfg)

	messages, err := t.storage.TopicMessages(topicId, after, limit)
	if err != nil {
		return nil, nil, err
	}

	var next *domain.Cursor
	if len(messages) == limit {
		last := messages[len(messages)-1]
		next = &domain.Cursor{CreatedAt: last.CreatedAt, Id: last.Id}
	}
	return messages, next, nil
}

// CreateMessage inserts a message owned by author into topicId.
func (t *Topic) CreateMessage(author *domain.User, topicId domain.TopicId, content string) (domain.Message, error) {
	if author == nil {
		return domain.Message{}, errUnauthorized
	}

	content = strings.TrimSpace(utils.SanitizeText(content))
	if content == "" || topicId == 0 {
		return domain.Message{}, &errors.ErrorWithStatusCode{
			Message:    "Content and topic_id are required",
			StatusCode: http.StatusBadRequest,
		}
	}
	if err := t.contentValidator.Content(content); err != nil {
		return domain.Message{}, err
	}

	msg, err := t.storage.CreateTopicMessage(content, author.Id, topicId)
	if err != nil {
		return domain.Message{}, err
	}
	msg.Author = &domain.Author{Id: author.Id, Username: author.Username}
	return msg, nil
}
