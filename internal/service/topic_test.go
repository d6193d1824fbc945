package service

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkboard-dev/talkboard/internal/utils"
	"github.com/talkboard-dev/talkboard/shared/domain"
	internal_errors "github.com/talkboard-dev/talkboard/shared/errors"
)

type MockTopicStorage struct {
	TopicsFunc             func(limit, offset int) ([]domain.Topic, error)
	CreateTopicFunc        func(title string, userId domain.UserId) (domain.Topic, error)
	TopicMessagesFunc      func(topicId domain.TopicId, after *domain.Cursor, limit int) ([]domain.Message, error)
	CreateTopicMessageFunc func(content string, userId domain.UserId, topicId domain.TopicId) (domain.Message, error)
}

func (m *MockTopicStorage) Topics(limit, offset int) ([]domain.Topic, error) {
	if m.TopicsFunc != nil {
		return m.TopicsFunc(limit, offset)
	}
	return nil, nil
}

func (m *MockTopicStorage) CreateTopic(title string, userId domain.UserId) (domain.Topic, error) {
	if m.CreateTopicFunc != nil {
		return m.CreateTopicFunc(title, userId)
	}
	return domain.Topic{Id: 1, Title: title}, nil
}

func (m *MockTopicStorage) TopicMessages(topicId domain.TopicId, after *domain.Cursor, limit int) ([]domain.Message, error) {
	if m.TopicMessagesFunc != nil {
		return m.TopicMessagesFunc(topicId, after, limit)
	}
	return nil, nil
}

func (m *MockTopicStorage) CreateTopicMessage(content string, userId domain.UserId, topicId domain.TopicId) (domain.Message, error) {
	if m.CreateTopicMessageFunc != nil {
		return m.CreateTopicMessageFunc(content, userId, topicId)
	}
	return domain.Message{Id: 1, Content: content}, nil
}

func newTestTopic(storage *MockTopicStorage) *Topic {
	return NewTopic(storage, &utils.TopicTitleValidator{}, &utils.MessageValidator{}, testConfig())
}

func TestTopicList(t *testing.T) {
	t.Run("page translates to offset", func(t *testing.T) {
		var gotLimit, gotOffset int
		topic := newTestTopic(&MockTopicStorage{
			TopicsFunc: func(limit, offset int) ([]domain.Topic, error) {
				gotLimit, gotOffset = limit, offset
				return nil, nil
			},
		})

		_, err := topic.List(3, 20)
		require.NoError(t, err)
		assert.Equal(t, 20, gotLimit)
		assert.Equal(t, 40, gotOffset)
	})

	t.Run("page below one becomes first page", func(t *testing.T) {
		var gotOffset int
		topic := newTestTopic(&MockTopicStorage{
			TopicsFunc: func(limit, offset int) ([]domain.Topic, error) {
				gotOffset = offset
				return nil, nil
			},
		})

		_, err := topic.List(0, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, gotOffset)
	})
}

func TestTopicCreate(t *testing.T) {
	author := &domain.User{Id: 1, Username: "alice"}

	t.Run("success attaches the author", func(t *testing.T) {
		topic := newTestTopic(&MockTopicStorage{
			CreateTopicFunc: func(title string, userId domain.UserId) (domain.Topic, error) {
				assert.Equal(t, int64(1), userId)
				return domain.Topic{Id: 5, Title: title, CreatedAt: time.Now().UTC()}, nil
			},
		})

		created, err := topic.Create(author, "general")
		require.NoError(t, err)
		assert.Equal(t, "general", created.Title)
		assert.Equal(t, "alice", created.User.Username)
	})

	t.Run("nil author rejected", func(t *testing.T) {
		topic := newTestTopic(&MockTopicStorage{})

		_, err := topic.Create(nil, "general")
		assert.Equal(t, http.StatusUnauthorized, statusCode(t, err))
	})

	t.Run("empty title rejected", func(t *testing.T) {
		topic := newTestTopic(&MockTopicStorage{})

		_, err := topic.Create(author, "   ")
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})

	t.Run("overlong title rejected", func(t *testing.T) {
		topic := newTestTopic(&MockTopicStorage{})

		_, err := topic.Create(author, strings.Repeat("x", 201))
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})
}

func TestTopicMessages(t *testing.T) {
	t.Run("full page yields next cursor", func(t *testing.T) {
		topic := newTestTopic(&MockTopicStorage{
			TopicMessagesFunc: func(topicId domain.TopicId, after *domain.Cursor, limit int) ([]domain.Message, error) {
				return makeMessages(limit), nil
			},
		})

		messages, next, err := topic.Messages(3, nil, 5)
		require.NoError(t, err)
		require.Len(t, messages, 5)
		require.NotNil(t, next)
		assert.Equal(t, messages[4].Id, next.Id)
	})

	t.Run("unknown topic passes through", func(t *testing.T) {
		topic := newTestTopic(&MockTopicStorage{
			TopicMessagesFunc: func(topicId domain.TopicId, after *domain.Cursor, limit int) ([]domain.Message, error) {
				return nil, &internal_errors.ErrorWithStatusCode{
					Message:    "Topic not found",
					StatusCode: http.StatusNotFound,
				}
			},
		})

		_, _, err := topic.Messages(99, nil, 5)
		assert.Equal(t, http.StatusNotFound, statusCode(t, err))
	})
}

func TestTopicCreateMessage(t *testing.T) {
	author := &domain.User{Id: 2, Username: "bob"}

	t.Run("success attaches the author", func(t *testing.T) {
		topic := newTestTopic(&MockTopicStorage{
			CreateTopicMessageFunc: func(content string, userId domain.UserId, topicId domain.TopicId) (domain.Message, error) {
				assert.Equal(t, int64(2), userId)
				assert.Equal(t, int64(3), topicId)
				return domain.Message{Id: 11, Content: content}, nil
			},
		})

		msg, err := topic.CreateMessage(author, 3, "hello")
		require.NoError(t, err)
		require.NotNil(t, msg.Author)
		assert.Equal(t, "bob", msg.Author.Username)
	})

	t.Run("nil author rejected", func(t *testing.T) {
		topic := newTestTopic(&MockTopicStorage{})

		_, err := topic.CreateMessage(nil, 3, "hello")
		assert.Equal(t, http.StatusUnauthorized, statusCode(t, err))
	})

	t.Run("missing content or topic rejected", func(t *testing.T) {
		topic := newTestTopic(&MockTopicStorage{})

		_, err := topic.CreateMessage(author, 3, "  ")
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))

		_, err = topic.CreateMessage(author, 0, "hello")
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})
}
