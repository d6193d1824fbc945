package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/talkboard-dev/talkboard/shared/domain"
)

// CreateTopic inserts a topic owned by userId and returns the stored row.
func (s *Storage) CreateTopic(title string, userId domain.UserId) (domain.Topic, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var topic domain.Topic
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		topic, err = s.createTopic(tx, title, userId)
		return err
	})
	return topic, err
}

// Topics lists topics with their creator and aggregate activity, most
// recently active first. Topics that never had a message sort after those
// with activity and report their own created_at as last_activity.
func (s *Storage) Topics(limit, offset int) ([]domain.Topic, error) {
	return s.topics(s.db, limit, offset)
}

// TopicMessages lists a topic's messages oldest first, optionally resuming
// after a keyset cursor.
func (s *Storage) TopicMessages(topicId domain.TopicId, after *domain.Cursor, limit int) ([]domain.Message, error) {
	return s.topicMessages(s.db, topicId, after, limit)
}

// CreateTopicMessage inserts a message owned by userId into topicId.
// A foreign key miss on the topic maps to a 404.
func (s *Storage) CreateTopicMessage(content string, userId domain.UserId, topicId domain.TopicId) (domain.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var msg domain.Message
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		msg, err = s.createTopicMessage(tx, content, userId, topicId)
		return err
	})
	return msg, err
}

func (s *Storage) createTopic(q Querier, title string, userId domain.UserId) (domain.Topic, error) {
	topic := domain.Topic{Title: title, User: domain.Author{Id: userId}}
	err := q.QueryRow(
		"INSERT INTO topics(title, user_id) VALUES($1, $2) RETURNING id, created_at",
		title, userId,
	).Scan(&topic.Id, &topic.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Topic{}, notFound("User not found")
		}
		return domain.Topic{}, fmt.Errorf("failed to insert topic: %w", err)
	}
	topic.LastActivity = topic.CreatedAt
	return topic, nil
}

func (s *Storage) topics(q Querier, limit, offset int) ([]domain.Topic, error) {
	rows, err := q.Query(`
        SELECT
            t.id, t.title, t.created_at,
            u.id, u.username,
            COUNT(m.id),
            COALESCE(MAX(m.created_at), t.created_at)
        FROM topics t
        JOIN users u ON t.user_id = u.id
        LEFT JOIN messages m ON m.topic_id = t.id
        GROUP BY t.id, t.title, t.created_at, u.id, u.username
        ORDER BY MAX(m.created_at) DESC NULLS LAST, t.created_at DESC
        LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(
			&t.Id, &t.Title, &t.CreatedAt,
			&t.User.Id, &t.User.Username,
			&t.MessageCount, &t.LastActivity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return topics, nil
}

func (s *Storage) topicMessages(q Querier, topicId domain.TopicId, after *domain.Cursor, limit int) ([]domain.Message, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if after != nil {
		rows, err = q.Query(`
            SELECT m.id, m.content, m.created_at, u.id, u.username
            FROM messages m
            LEFT JOIN users u ON m.user_id = u.id
            WHERE m.topic_id = $1 AND (m.created_at, m.id) > ($2, $3)
            ORDER BY m.created_at ASC, m.id ASC
            LIMIT $4`,
			topicId, after.CreatedAt, after.Id, limit,
		)
	} else {
		rows, err = q.Query(`
            SELECT m.id, m.content, m.created_at, u.id, u.username
            FROM messages m
            LEFT JOIN users u ON m.user_id = u.id
            WHERE m.topic_id = $1
            ORDER BY m.created_at ASC, m.id ASC
            LIMIT $2`,
			topicId, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query topic messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var (
			msg      domain.Message
			userId   sql.NullInt64
			username sql.NullString
		)
		if err := rows.Scan(&msg.Id, &msg.Content, &msg.CreatedAt, &userId, &username); err != nil {
			return nil, fmt.Errorf("failed to scan topic message: %w", err)
		}
		if userId.Valid {
			msg.Author = &domain.Author{Id: userId.Int64, Username: username.String}
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return messages, nil
}

func (s *Storage) createTopicMessage(q Querier, content string, userId domain.UserId, topicId domain.TopicId) (domain.Message, error) {
	msg := domain.Message{Content: content, TopicId: &topicId, Author: &domain.Author{Id: userId}}
	err := q.QueryRow(
		"INSERT INTO messages(content, user_id, topic_id) VALUES($1, $2, $3) RETURNING id, created_at",
		content, userId, topicId,
	).Scan(&msg.Id, &msg.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Message{}, notFound("Topic not found")
		}
		return domain.Message{}, fmt.Errorf("failed to insert topic message: %w", err)
	}
	return msg, nil
}
