package setup

import (
	"context"

	"github.com/diskusi-dev/diskusi/internal/config"
	"github.com/diskusi-dev/diskusi/internal/handler"
	internal_jwt "github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/service"
	"github.com/diskusi-dev/diskusi/internal/storage/pg"
)

// Dependencies holds everything the router and main need.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     internal_jwt.Service
}

// SetupDependencies is the composition root: explicit constructor wiring,
// no service lookup by name.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := pg.ApplyMigrations(context.Background(), storage.DB()); err != nil {
		return nil, err
	}

	jwtService := internal_jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	thread := service.NewThread(storage, storage, storage)
	comment := service.NewComment(storage, storage)
	reply := service.NewReply(storage, storage, storage)

	h := handler.New(thread, comment, reply, storage)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Jwt:     jwtService,
	}, nil
}
