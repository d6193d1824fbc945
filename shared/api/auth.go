package api

import (
	"time"

	"github.com/talkboard-dev/talkboard/shared/domain"
)

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type User struct {
	Id        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned from both register and login: the user plus a
// freshly minted bearer token for X-Auth-Token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

func UserFromDomain(u domain.User) User {
	return User{Id: u.Id, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}
