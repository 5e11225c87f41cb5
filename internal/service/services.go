package service

import (
	"github.com/Rajshri-Priya/fundoo-notes/internal/adapter"
	"github.com/Rajshri-Priya/fundoo-notes/internal/cache"
	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/mailer"
	"github.com/Rajshri-Priya/fundoo-notes/internal/reminder"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
	"github.com/Rajshri-Priya/fundoo-notes/internal/validators"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// Services groups the services of one process. Fields a process does not
// serve stay nil.
type Services struct {
	AppInfo AppInfoService

	Users UserService

	Notes         NoteService
	Collaborators CollaboratorService
	NoteLabels    NoteLabelService

	Labels LabelService
}

// NotesDependencies are the collaborators of the notes service besides its
// database.
type NotesDependencies struct {
	Cache     cache.NoteCache
	Scheduler reminder.Scheduler
	Identity  adapter.IdentityResolver
	Labels    adapter.LabelLookup
}

func NewUsersServices(storages *store.Storages, m mailer.Mailer, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(string(config.RoleUsers), cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfo: appInfo,
		Users:   NewUserService(storages.Users, m, validators.NewStructValidator(), cfg.App, logger),
	}, nil
}

func NewNotesServices(storages *store.Storages, deps NotesDependencies, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(string(config.RoleNotes), cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewStructValidator()
	return &Services{
		AppInfo:       appInfo,
		Notes:         NewNoteService(storages.Notes, deps.Cache, deps.Scheduler, deps.Identity, validator, logger),
		Collaborators: NewCollaboratorService(storages.Notes, deps.Identity, validator, logger),
		NoteLabels:    NewNoteLabelService(storages.Notes, deps.Labels, validator, logger),
	}, nil
}

func NewLabelsServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(string(config.RoleLabels), cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfo: appInfo,
		Labels:  NewLabelService(storages.Labels, validators.NewStructValidator(), logger),
	}, nil
}
