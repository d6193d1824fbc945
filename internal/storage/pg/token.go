package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/talkboard-dev/talkboard/shared/domain"
)

// SaveToken persists an issued token so later requests can be resolved back
// to the user it belongs to.
func (s *Storage) SaveToken(token domain.Token) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveToken(tx, token)
	})
}

// UserByToken resolves a bearer token to its user. Unknown and expired
// tokens both come back as not found; the caller treats that as no identity.
func (s *Storage) UserByToken(token string) (domain.User, error) {
	return s.userByToken(s.db, token)
}

// DeleteExpiredTokens removes tokens past their expiry and reports how many
// rows went away.
func (s *Storage) DeleteExpiredTokens() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var deleted int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		deleted, err = s.deleteExpiredTokens(tx)
		return err
	})
	return deleted, err
}

func (s *Storage) saveToken(q Querier, token domain.Token) error {
	var expires interface{}
	if !token.ExpiresAt.IsZero() {
		expires = token.ExpiresAt
	}
	_, err := q.Exec(
		"INSERT INTO tokens(token, user_id, issued_at, expires_at) VALUES($1, $2, $3, $4)",
		token.Value, token.UserId, token.IssuedAt, expires,
	)
	if err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

func (s *Storage) userByToken(q Querier, token string) (domain.User, error) {
	var user domain.User
	err := q.QueryRow(`
        SELECT u.id, u.username, u.email, u.created_at
        FROM tokens t
        JOIN users u ON u.id = t.user_id
        WHERE t.token = $1 AND (t.expires_at IS NULL OR t.expires_at > now())`,
		token,
	).Scan(&user.Id, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, notFound("Token not found")
		}
		return domain.User{}, fmt.Errorf("failed to resolve token: %w", err)
	}
	return user, nil
}

func (s *Storage) deleteExpiredTokens(q Querier) (int64, error) {
	result, err := q.Exec("DELETE FROM tokens WHERE expires_at IS NOT NULL AND expires_at <= now()")
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows for token cleanup: %w", err)
	}
	return deleted, nil
}
