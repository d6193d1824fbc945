package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/talkboard-dev/talkboard/shared/domain"
	internal_errors "github.com/talkboard-dev/talkboard/shared/errors"
)

// SaveUser inserts a new user and returns it with id and created_at filled
// in. A unique violation on username or email maps to a 409 so the caller
// never needs a racy existence pre-check.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var saved domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveUser(tx, user)
		return err
	})
	return saved, err
}

// UserByEmail fetches a user, including the password hash, for login checks.
func (s *Storage) UserByEmail(email string) (domain.User, error) {
	return s.userByEmail(s.db, email)
}

func (s *Storage) saveUser(q Querier, user domain.User) (domain.User, error) {
	saved := user
	err := q.QueryRow(
		"INSERT INTO users(username, email, password_hash) VALUES($1, $2, $3) RETURNING id, created_at",
		user.Username, user.Email, user.PassHash,
	).Scan(&saved.Id, &saved.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Username or email already exists",
				StatusCode: http.StatusConflict,
			}
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return saved, nil
}

func (s *Storage) userByEmail(q Querier, email string) (domain.User, error) {
	var user domain.User
	err := q.QueryRow(
		"SELECT id, username, email, password_hash, created_at FROM users WHERE email = $1",
		email,
	).Scan(&user.Id, &user.Username, &user.Email, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, notFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
