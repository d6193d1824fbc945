package domain

import "time"

// Token is an opaque capability mapping its value to one user.
// A zero ExpiresAt means the token never expires.
type Token struct {
	Value     string
	UserId    UserId
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (t Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && t.ExpiresAt.Before(now)
}
