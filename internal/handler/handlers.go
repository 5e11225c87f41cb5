package handler

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/handler/http"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
)

// Handlers holds the transport handler of one process together with the
// router built for its role.
type Handlers struct {
	HTTP   *http.Handler
	Router *chi.Mux
}

func NewHandlers(role config.Role, services *service.Services, authenticator http.Authenticator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("role", string(role)).Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if authenticator == nil {
		return nil, errNoAuthenticator
	}

	h := http.NewHandler(services, authenticator, cfg, logger)
	handlers := &Handlers{HTTP: h}

	switch role {
	case config.RoleUsers:
		handlers.Router = h.UsersRoutes()
	case config.RoleNotes:
		handlers.Router = h.NotesRoutes()
	case config.RoleLabels:
		handlers.Router = h.LabelsRoutes()
	default:
		return nil, fmt.Errorf("%w: %q", errRoleWithoutRoutes, role)
	}

	return handlers, nil
}
