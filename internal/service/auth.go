package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/talkboard-dev/talkboard/shared/config"
	"github.com/talkboard-dev/talkboard/shared/domain"
	"github.com/talkboard-dev/talkboard/shared/errors"
	"github.com/talkboard-dev/talkboard/shared/logger"
	"github.com/talkboard-dev/talkboard/shared/utils"
)

type AuthService interface {
	Register(username, email, password string) (domain.User, string, error)
	Login(email, password string) (domain.User, string, error)
	Resolve(token string) (*domain.User, error)
	PurgeExpiredTokens() (int64, error)
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserByEmail(email string) (domain.User, error)
	SaveToken(token domain.Token) error
	UserByToken(token string) (domain.User, error)
	DeleteExpiredTokens() (int64, error)
}

type Auth struct {
	storage AuthStorage
	cfg     *config.Public
}

func NewAuth(storage AuthStorage, cfg *config.Public) *Auth {
	return &Auth{storage: storage, cfg: cfg}
}

// Register creates a user and mints its first token. Uniqueness of username
// and email is enforced by the store's constraints; a duplicate surfaces as
// the storage layer's 409, never via a pre-check.
func (a *Auth) Register(username, email, password string) (domain.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if username == "" || email == "" || password == "" {
		return domain.User{}, "", &errors.ErrorWithStatusCode{
			Message:    "All fields are required",
			StatusCode: http.StatusBadRequest,
		}
	}

	passHash, err := utils.HashPassword(password, a.hashParams())
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, "", err
	}

	user, err := a.storage.SaveUser(domain.User{Username: username, Email: email, PassHash: passHash})
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := a.issueToken(user.Id)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Login checks the credentials and mints a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (a *Auth) Login(email, password string) (domain.User, string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return domain.User{}, "", &errors.ErrorWithStatusCode{
			Message:    "Email and password are required",
			StatusCode: http.StatusBadRequest,
		}
	}

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		// to not leak existing users
		if e, ok := err.(*errors.ErrorWithStatusCode); ok && e.StatusCode == http.StatusNotFound {
			return domain.User{}, "", &errors.ErrorWithStatusCode{
				Message:    "Invalid credentials",
				StatusCode: http.StatusUnauthorized,
			}
		}
		return domain.User{}, "", err
	}

	if err := utils.ComparePassword(password, user.PassHash); err != nil {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return domain.User{}, "", &errors.ErrorWithStatusCode{
			Message:    "Invalid credentials",
			StatusCode: http.StatusUnauthorized,
		}
	}

	token, err := a.issueToken(user.Id)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Resolve maps a bearer token back to its user. Absent, unknown and expired
// tokens all resolve to no identity (nil user, nil error); the transport
// layer decides whether that is a 401.
func (a *Auth) Resolve(token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	user, err := a.storage.UserByToken(token)
	if err != nil {
		if e, ok := err.(*errors.ErrorWithStatusCode); ok && e.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// PurgeExpiredTokens removes expired token rows; called by the background GC.
func (a *Auth) PurgeExpiredTokens() (int64, error) {
	return a.storage.DeleteExpiredTokens()
}

func (a *Auth) issueToken(userId domain.UserId) (string, error) {
	value, err := utils.GenerateToken()
	if err != nil {
		logger.Log.Error("failed to generate token", "error", err)
		return "", err
	}

	now := time.Now().UTC()
	token := domain.Token{
		Value:     value,
		UserId:    userId,
		IssuedAt:  now,
		ExpiresAt: now.Add(a.cfg.TokenTTL),
	}
	if err := a.storage.SaveToken(token); err != nil {
		return "", err
	}
	return value, nil
}

func (a *Auth) hashParams() utils.Argon2Params {
	params := utils.DefaultArgon2Params()
	if a.cfg.Argon2.MemoryKiB > 0 {
		params.MemoryKiB = a.cfg.Argon2.MemoryKiB
	}
	if a.cfg.Argon2.Time > 0 {
		params.Time = a.cfg.Argon2.Time
	}
	if a.cfg.Argon2.Parallelism > 0 {
		params.Parallelism = a.cfg.Argon2.Parallelism
	}
	return params
}
