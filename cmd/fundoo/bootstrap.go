package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Rajshri-Priya/fundoo-notes/internal/cache"
	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/handler"
	"github.com/Rajshri-Priya/fundoo-notes/internal/handler/http"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/server"
	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// process carries what every command needs once its configuration is loaded.
type process struct {
	role   config.Role
	cfg    *config.StructuredConfig
	build  models.AppBuildInfo
	logger *logger.Logger
}

func newProcess(role config.Role) (*process, error) {
	cfg, err := config.GetStructuredConfig(role, flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.New(string(role), logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", build.BuildVersion()).
		Str("date", build.BuildDate()).
		Str("commit", build.BuildCommit()).
		Msg("starting")

	return &process{role: role, cfg: cfg, build: build, logger: log}, nil
}

func (p *process) openDB(ctx context.Context) (*store.DB, error) {
	db, err := store.NewConnect(ctx, p.cfg.Storage.DB, p.logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if autoMigrate {
		if err = db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
	}

	return db, nil
}

func (p *process) openRedis(ctx context.Context) (*redis.Client, error) {
	rdb, err := cache.NewRedisClient(ctx, p.cfg.Storage.Redis, p.logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	return rdb, nil
}

// serve builds the router of the process role and blocks until ctx is done.
func (p *process) serve(ctx context.Context, services *service.Services, authenticator http.Authenticator) error {
	handlers, err := handler.NewHandlers(p.role, services, authenticator, p.cfg.Server, p.logger)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers.Router, p.cfg.Server, p.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}
