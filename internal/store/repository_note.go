// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// noteRepository implements [NoteRepository] over a connection or a
// transaction, depending on what q is bound to.
type noteRepository struct {
	q       querier
	dialect Dialect
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, extra ...any) (models.Note, error) {
	var (
		note     models.Note
		state    string
		reminder sql.NullTime
	)

	dest := []any{
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&note.Description,
		&note.Color,
		&state,
		&reminder,
		&note.CreatedAt,
		&note.ModifiedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return models.Note{}, err
	}

	note.State = models.NoteState(state)
	if reminder.Valid {
		t := reminder.Time
		note.Reminder = &t
	}

	return note, nil
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.dialect, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to create query")
		return models.Note{}, err
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&note.ID); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.OwnerID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	return r.selectNote(ctx, noteID, false)
}

func (r *noteRepository) LockNote(ctx context.Context, noteID int64) (models.Note, error) {
	return r.selectNote(ctx, noteID, true)
}

func (r *noteRepository) selectNote(ctx context.Context, noteID int64, lock bool) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(r.dialect, noteID, lock)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.selectNote").Msg("failed to create query")
		return models.Note{}, err
	}

	note, err := scanNote(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.selectNote").
			Int64("note_id", noteID).
			Bool("lock", lock).
			Msg("failed to select note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (r *noteRepository) ListNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesByOwnerQuery(r.dialect, ownerID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotesByOwner").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotesByOwner").
			Int64("user_id", ownerID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListNotesByOwner").
				Int64("user_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotesByOwner").
			Int64("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) ListSharedNotes(ctx context.Context, userID int64) ([]models.SharedNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSharedNotesQuery(r.dialect, userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListSharedNotes").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListSharedNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for listing shared notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shared := make([]models.SharedNote, 0, 16)
	for rows.Next() {
		var level string
		note, scanErr := scanNote(rows, &level)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListSharedNotes").
				Int64("user_id", userID).
				Msg("failed to scan shared note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		shared = append(shared, models.SharedNote{Note: note, AccessLevel: models.AccessLevel(level)})
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListSharedNotes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return shared, nil
}

// UpdateNote overwrites every mutable column of the note.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.dialect, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to create query")
		return err
	}

	return r.execAffectingOne(ctx, "noteRepository.UpdateNote", note.ID, query, args)
}

// DeleteNote removes the note; grants and label links go with it through
// the foreign keys.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.dialect, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to create query")
		return err
	}

	return r.execAffectingOne(ctx, "noteRepository.DeleteNote", noteID, query, args)
}

func (r *noteRepository) execAffectingOne(ctx context.Context, fn string, noteID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("note_id", noteID).Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
