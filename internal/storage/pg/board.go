package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/talkboard-dev/talkboard/shared/domain"
)

// CreateBoardMessage inserts an anonymous message on the flat board
// (no user, no topic) and returns the stored row.
func (s *Storage) CreateBoardMessage(content string) (domain.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var msg domain.Message
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		msg, err = s.createBoardMessage(tx, content)
		return err
	})
	return msg, err
}

// BoardMessages lists flat-board messages newest first. A non-nil before
// cursor continues a previous page; limit is enforced by the caller.
func (s *Storage) BoardMessages(before *domain.Cursor, limit int) ([]domain.Message, error) {
	return s.boardMessages(s.db, before, limit)
}

func (s *Storage) createBoardMessage(q Querier, content string) (domain.Message, error) {
	msg := domain.Message{Content: content}
	err := q.QueryRow(
		"INSERT INTO messages(content) VALUES($1) RETURNING id, created_at",
		content,
	).Scan(&msg.Id, &msg.CreatedAt)
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to insert board message: %w", err)
	}
	return msg, nil
}

func (s *Storage) boardMessages(q Querier, before *domain.Cursor, limit int) ([]domain.Message, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if before != nil {
		rows, err = q.Query(`
            SELECT id, content, created_at
            FROM messages
            WHERE topic_id IS NULL AND (created_at, id) < ($1, $2)
            ORDER BY created_at DESC, id DESC
            LIMIT $3`,
			before.CreatedAt, before.Id, limit,
		)
	} else {
		rows, err = q.Query(`
            SELECT id, content, created_at
            FROM messages
            WHERE topic_id IS NULL
            ORDER BY created_at DESC, id DESC
            LIMIT $1`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query board messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.Id, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return messages, nil
}
