package service

import (
	"context"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// NoteService manages notes on behalf of an authenticated caller. Every
// method that targets a single note resolves the caller's access first:
// a missing note is [ErrNoteNotFound], an existing note the caller cannot
// see is [ErrNoAccess].
type NoteService interface {
	CreateNote(ctx context.Context, userID int64, in models.NoteInput) (models.Note, error)
	// ListNotes returns the caller's own notes in the given state; an empty
	// state means every state.
	ListNotes(ctx context.Context, userID int64, state models.NoteState) ([]models.Note, error)
	ListSharedNotes(ctx context.Context, userID int64) ([]models.SharedNote, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error

	ToggleArchive(ctx context.Context, userID, noteID int64) (models.Note, error)
	ToggleTrash(ctx context.Context, userID, noteID int64) (models.Note, error)
}

// CollaboratorService manages the grants of a note. Only the owner may use it.
type CollaboratorService interface {
	AddCollaborators(ctx context.Context, userID, noteID int64, req models.AddCollaboratorsRequest) ([]models.Collaborator, error)
	RemoveCollaborators(ctx context.Context, userID, noteID int64, req models.RemoveCollaboratorsRequest) error
	ListCollaborators(ctx context.Context, userID, noteID int64) ([]models.CollaboratorView, error)
}

// NoteLabelService manages the labels attached to a note.
type NoteLabelService interface {
	AttachLabels(ctx context.Context, userID, noteID int64, req models.NoteLabelsRequest) ([]int64, error)
	DetachLabels(ctx context.Context, userID, noteID int64, req models.NoteLabelsRequest) ([]int64, error)
	ListLabels(ctx context.Context, userID, noteID int64) ([]int64, error)
}

// UserService handles accounts and tokens of the users service.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error)
	Verify(ctx context.Context, token string) error
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	// Authenticate parses a token issued by Login and returns its owner.
	Authenticate(ctx context.Context, token string) (models.UserProfile, error)
	ParseToken(ctx context.Context, token string) (models.Token, error)
	GetProfile(ctx context.Context, userID int64) (models.UserProfile, error)
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
	DeleteAccount(ctx context.Context, creds models.Credentials) error
}

// LabelService manages the labels of the labels service.
type LabelService interface {
	CreateLabel(ctx context.Context, userID int64, in models.LabelInput) (models.Label, error)
	ListLabels(ctx context.Context, userID int64) ([]models.Label, error)
	UpdateLabel(ctx context.Context, userID, labelID int64, update models.LabelUpdate) (models.Label, error)
	DeleteLabel(ctx context.Context, userID, labelID int64) error
	// LookupLabels returns the labels of any owner among ids.
	LookupLabels(ctx context.Context, ids []int64) ([]models.Label, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
