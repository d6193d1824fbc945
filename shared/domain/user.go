package domain

import "time"

type UserId = int64

type User struct {
	Id        UserId    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	PassHash  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Author is the public subset of a user attached to topics and messages.
type Author struct {
	Id       UserId `json:"id"`
	Username string `json:"username"`
}

func (u User) Author() Author {
	return Author{Id: u.Id, Username: u.Username}
}
