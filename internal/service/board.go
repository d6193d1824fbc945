package service

import (
	"net/http"
	"strings"

	"github.com/talkboard-dev/talkboard/internal/utils"
	"github.com/talkboard-dev/talkboard/shared/config"
	"github.com/talkboard-dev/talkboard/shared/domain"
	"github.com/talkboard-dev/talkboard/shared/errors"
)

type BoardService interface {
	Messages(before *domain.Cursor, limit int) ([]domain.Message, *domain.Cursor, error)
	Create(content string) (domain.Message, error)
}

type BoardStorage interface {
	BoardMessages(before *domain.Cursor, limit int) ([]domain.Message, error)
	CreateBoardMessage(content string) (domain.Message, error)
}

type MessageValidator interface {
	Content(content string) error
}

type Board struct {
	storage   BoardStorage
	validator MessageValidator
	cfg       *config.Public
}

func NewBoard(storage BoardStorage, validator MessageValidator, cfg *config.Public) *Board {
	return &Board{storage, validator, cfg}
}

// Messages returns one page of the flat board, newest first, plus the cursor
// for the next page (nil when the listing is exhausted).
func (b *Board) Messages(before *domain.Cursor, limit int) ([]domain.Message, *domain.Cursor, error) {
	limit = clampLimit(limit, b.cfg)

	messages, err := b.storage.BoardMessages(before, limit)
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

// Create stores an anonymous message on the flat board.
func (b *Board) Create(content string) (domain.Message, error) {
	content = strings.TrimSpace(utils.SanitizeText(content))
	if content == "" {
		return domain.Message{}, &errors.ErrorWithStatusCode{
			Message:    "Content is required",
			StatusCode: http.StatusBadRequest,
		}
	}
	if err := b.validator.Content(content); err != nil {
		return domain.Message{}, err
	}
	return b.storage.CreateBoardMessage(content)
}

func clampLimit(limit int, cfg *config.Public) int {
	if limit <= 0 {
		return cfg.DefaultPageSize
	}
	if limit > cfg.MaxPageSize {
		return cfg.MaxPageSize
	}
	return limit
}
