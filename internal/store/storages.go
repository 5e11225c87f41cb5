package store

import (
	"context"
	"database/sql"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
)

// Storages aggregates every repository of the fundoo database. Each process
// uses only the part it owns.
type Storages struct {
	Users  UserRepository
	Notes  NoteStorage
	Labels LabelRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	log.Debug().Msg("creating storages")
	return &Storages{
		Users:  NewUserRepository(db, log),
		Notes:  NewNoteStorage(db),
		Labels: NewLabelRepository(db, log),
	}
}

type noteStorage struct {
	db *DB
}

// NewNoteStorage constructs the [NoteStorage] of the notes service.
func NewNoteStorage(db *DB) NoteStorage {
	return &noteStorage{db: db}
}

func (s *noteStorage) Read() NoteRepositories {
	return s.repositories(s.db.DB)
}

func (s *noteStorage) InTx(ctx context.Context, fn func(ctx context.Context, repos NoteRepositories) error) error {
	return s.db.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.repositories(tx))
	})
}

func (s *noteStorage) repositories(q querier) NoteRepositories {
	return NoteRepositories{
		Notes:         &noteRepository{q: q, dialect: s.db.dialect},
		Collaborators: &collaboratorRepository{q: q, dialect: s.db.dialect},
		NoteLabels:    &noteLabelRepository{q: q, dialect: s.db.dialect},
	}
}
