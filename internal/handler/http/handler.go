package http

import (
	"context"
	"time"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// Authenticator resolves a bearer token into the profile of its owner.
// The users process authenticates locally through [service.UserService];
// the notes and labels processes ask the users service over HTTP.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.UserProfile, error)
}

type Handler struct {
	services      *service.Services
	authenticator Authenticator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, authenticator Authenticator, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		authenticator:  authenticator,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
