package store

import (
	"context"
	"fmt"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

type collaboratorRepository struct {
	q       querier
	dialect Dialect
}

func (r *collaboratorRepository) GetCollaborator(ctx context.Context, noteID, userID int64) (models.Collaborator, error) {
	grants, err := r.FindCollaborators(ctx, noteID, []int64{userID})
	if err != nil {
		return models.Collaborator{}, err
	}
	if len(grants) == 0 {
		return models.Collaborator{}, ErrCollaboratorNotFound
	}
	return grants[0], nil
}

func (r *collaboratorRepository) ListCollaborators(ctx context.Context, noteID int64) ([]models.Collaborator, error) {
	return r.selectCollaborators(ctx, noteID)
}

// FindCollaborators returns the existing grants of the note for the given
// users. An empty userIDs slice matches nothing.
func (r *collaboratorRepository) FindCollaborators(ctx context.Context, noteID int64, userIDs []int64) ([]models.Collaborator, error) {
	if len(userIDs) == 0 {
		return []models.Collaborator{}, nil
	}
	return r.selectCollaborators(ctx, noteID, userIDs...)
}

func (r *collaboratorRepository) selectCollaborators(ctx context.Context, noteID int64, userIDs ...int64) ([]models.Collaborator, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCollaboratorsQuery(r.dialect, noteID, userIDs...)
	if err != nil {
		log.Err(err).Str("func", "collaboratorRepository.selectCollaborators").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "collaboratorRepository.selectCollaborators").
			Int64("note_id", noteID).
			Msg("failed to execute query for collaborators")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grants := make([]models.Collaborator, 0, 8)
	for rows.Next() {
		var (
			grant models.Collaborator
			level string
		)
		if scanErr := rows.Scan(&grant.NoteID, &grant.UserID, &level, &grant.GrantedBy, &grant.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "collaboratorRepository.selectCollaborators").
				Int64("note_id", noteID).
				Msg("failed to scan collaborator row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		grant.AccessLevel = models.AccessLevel(level)
		grants = append(grants, grant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grants, nil
}

// AddCollaborators inserts all grants with a single statement, so either
// every grant is stored or none is.
func (r *collaboratorRepository) AddCollaborators(ctx context.Context, grants []models.Collaborator) error {
	if len(grants) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCollaboratorsQuery(r.dialect, grants)
	if err != nil {
		log.Err(err).Str("func", "collaboratorRepository.AddCollaborators").Msg("failed to create query")
		return err
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrCollaboratorExists
		}
		log.Err(err).
			Str("func", "collaboratorRepository.AddCollaborators").
			Int64("note_id", grants[0].NoteID).
			Int("grants", len(grants)).
			Msg("failed to insert collaborators")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RemoveCollaborators deletes the grants of the given users and reports how
// many rows were removed.
func (r *collaboratorRepository) RemoveCollaborators(ctx context.Context, noteID int64, userIDs []int64) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	return r.delete(ctx, "collaboratorRepository.RemoveCollaborators", noteID, userIDs)
}

func (r *collaboratorRepository) DeleteNoteCollaborators(ctx context.Context, noteID int64) error {
	_, err := r.delete(ctx, "collaboratorRepository.DeleteNoteCollaborators", noteID, nil)
	return err
}

func (r *collaboratorRepository) delete(ctx context.Context, fn string, noteID int64, userIDs []int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCollaboratorsQuery(r.dialect, noteID, userIDs)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return 0, err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("note_id", noteID).Msg("failed to delete collaborators")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return affected, nil
}
