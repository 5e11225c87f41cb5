package store

import (
	"context"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts of the users service.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	MarkVerified(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
}

// NoteRepository persists note records.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, noteID int64) (models.Note, error)
	// LockNote reads the note and, on PostgreSQL, holds a row lock on it
	// until the surrounding transaction ends.
	LockNote(ctx context.Context, noteID int64) (models.Note, error)
	ListNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error)
	ListSharedNotes(ctx context.Context, userID int64) ([]models.SharedNote, error)
	UpdateNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, noteID int64) error
}

// CollaboratorRepository persists collaborator grants.
type CollaboratorRepository interface {
	GetCollaborator(ctx context.Context, noteID, userID int64) (models.Collaborator, error)
	ListCollaborators(ctx context.Context, noteID int64) ([]models.Collaborator, error)
	FindCollaborators(ctx context.Context, noteID int64, userIDs []int64) ([]models.Collaborator, error)
	AddCollaborators(ctx context.Context, grants []models.Collaborator) error
	RemoveCollaborators(ctx context.Context, noteID int64, userIDs []int64) (int64, error)
	DeleteNoteCollaborators(ctx context.Context, noteID int64) error
}

// NoteLabelRepository persists note-label links.
type NoteLabelRepository interface {
	ListNoteLabels(ctx context.Context, noteID int64) ([]int64, error)
	AttachLabels(ctx context.Context, noteID int64, labelIDs []int64) error
	DetachLabels(ctx context.Context, noteID int64, labelIDs []int64) (int64, error)
	DeleteNoteLabels(ctx context.Context, noteID int64) error
}

// NoteRepositories groups the repositories of the notes service bound to
// one connection or transaction.
type NoteRepositories struct {
	Notes         NoteRepository
	Collaborators CollaboratorRepository
	NoteLabels    NoteLabelRepository
}

// NoteStorage hands out note repositories either for autocommit reads or
// bound to a single serializable transaction.
type NoteStorage interface {
	// Read returns repositories working outside any transaction.
	Read() NoteRepositories
	// InTx runs fn with repositories bound to one transaction that commits
	// only when fn returns nil.
	InTx(ctx context.Context, fn func(ctx context.Context, repos NoteRepositories) error) error
}

// LabelRepository persists labels of the labels service. Mutations are
// scoped by owner: a label of another user is reported as not found.
type LabelRepository interface {
	CreateLabel(ctx context.Context, label models.Label) (models.Label, error)
	GetLabel(ctx context.Context, ownerID, labelID int64) (models.Label, error)
	ListLabelsByOwner(ctx context.Context, ownerID int64) ([]models.Label, error)
	FindLabelsByIDs(ctx context.Context, labelIDs []int64) ([]models.Label, error)
	UpdateLabel(ctx context.Context, label models.Label) error
	DeleteLabel(ctx context.Context, ownerID, labelID int64) error
}
