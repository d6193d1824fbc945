package setup

import (
	"context"

	"github.com/talkboard-dev/talkboard/internal/handler"
	"github.com/talkboard-dev/talkboard/internal/service"
	"github.com/talkboard-dev/talkboard/internal/storage/pg"
	"github.com/talkboard-dev/talkboard/internal/utils"
	"github.com/talkboard-dev/talkboard/shared/config"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Auth    *service.Auth
	TokenGC *service.TokenGC
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	auth := service.NewAuth(storage, &cfg.Public)
	board := service.NewBoard(storage, &utils.MessageValidator{}, &cfg.Public)
	topic := service.NewTopic(storage, &utils.TopicTitleValidator{}, &utils.MessageValidator{}, &cfg.Public)

	h := handler.New(auth, board, topic, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Auth:    auth,
		TokenGC: service.NewTokenGC(auth),
		Config:  cfg,
	}, nil
}
