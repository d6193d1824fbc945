package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkboard-dev/talkboard/internal/utils"
	"github.com/talkboard-dev/talkboard/shared/domain"
)

type MockBoardStorage struct {
	BoardMessagesFunc      func(before *domain.Cursor, limit int) ([]domain.Message, error)
	CreateBoardMessageFunc func(content string) (domain.Message, error)
}

func (m *MockBoardStorage) BoardMessages(before *domain.Cursor, limit int) ([]domain.Message, error) {
	if m.BoardMessagesFunc != nil {
		return m.BoardMessagesFunc(before, limit)
	}
	return nil, nil
}

func (m *MockBoardStorage) CreateBoardMessage(content string) (domain.Message, error) {
	if m.CreateBoardMessageFunc != nil {
		return m.CreateBoardMessageFunc(content)
	}
	return domain.Message{Id: 1, Content: content}, nil
}

func newTestBoard(storage *MockBoardStorage) *Board {
	return NewBoard(storage, &utils.MessageValidator{}, testConfig())
}

func makeMessages(n int) []domain.Message {
	base := time.Now().UTC()
	msgs := make([]domain.Message, 0, n)
	for i := 0; i < n; i++ {
		msgs = append(msgs, domain.Message{
			Id:        int64(n - i),
			Content:   "msg",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return msgs
}

func TestBoardMessages(t *testing.T) {
	t.Run("default limit applied", func(t *testing.T) {
		var gotLimit int
		board := newTestBoard(&MockBoardStorage{
			BoardMessagesFunc: func(before *domain.Cursor, limit int) ([]domain.Message, error) {
				gotLimit = limit
				return nil, nil
			},
		})

		_, _, err := board.Messages(nil, 0)
		require.NoError(t, err)
		assert.Equal(t, 50, gotLimit)
	})

	t.Run("limit capped at maximum", func(t *testing.T) {
		var gotLimit int
		board := newTestBoard(&MockBoardStorage{
			BoardMessagesFunc: func(before *domain.Cursor, limit int) ([]domain.Message, error) {
				gotLimit = limit
				return nil, nil
			},
		})

		_, _, err := board.Messages(nil, 5000)
		require.NoError(t, err)
		assert.Equal(t, 100, gotLimit)
	})

	t.Run("full page yields next cursor", func(t *testing.T) {
		board := newTestBoard(&MockBoardStorage{
			BoardMessagesFunc: func(before *domain.Cursor, limit int) ([]domain.Message, error) {
				return makeMessages(limit), nil
			},
		})

		messages, next, err := board.Messages(nil, 10)
		require.NoError(t, err)
		require.Len(t, messages, 10)
		require.NotNil(t, next)
		last := messages[len(messages)-1]
		assert.Equal(t, last.Id, next.Id)
		assert.Equal(t, last.CreatedAt, next.CreatedAt)
	})

	t.Run("short page is the last page", func(t *testing.T) {
		board := newTestBoard(&MockBoardStorage{
			BoardMessagesFunc: func(before *domain.Cursor, limit int) ([]domain.Message, error) {
				return makeMessages(3), nil
			},
		})

		messages, next, err := board.Messages(nil, 10)
		require.NoError(t, err)
		assert.Len(t, messages, 3)
		assert.Nil(t, next)
	})
}

func TestBoardCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		board := newTestBoard(&MockBoardStorage{})

		msg, err := board.Create("hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", msg.Content)
	})

	t.Run("content is trimmed and sanitized", func(t *testing.T) {
		var gotContent string
		board := newTestBoard(&MockBoardStorage{
			CreateBoardMessageFunc: func(content string) (domain.Message, error) {
				gotContent = content
				return domain.Message{Id: 1, Content: content}, nil
			},
		})

		_, err := board.Create("  <script>alert(1)</script>hello  ")
		require.NoError(t, err)
		assert.Equal(t, "hello", gotContent)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		board := newTestBoard(&MockBoardStorage{})

		_, err := board.Create("   ")
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})

	t.Run("markup-only content rejected", func(t *testing.T) {
		board := newTestBoard(&MockBoardStorage{})

		_, err := board.Create("<b></b>")
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})
}
