package store

import (
	"context"
	"fmt"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
)

type noteLabelRepository struct {
	q       querier
	dialect Dialect
}

func (r *noteLabelRepository) ListNoteLabels(ctx context.Context, noteID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteLabelsQuery(r.dialect, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteLabelRepository.ListNoteLabels").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteLabelRepository.ListNoteLabels").
			Int64("note_id", noteID).
			Msg("failed to execute query for note labels")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// AttachLabels links every label to the note in one statement. A link that
// already exists fails the whole insert with [ErrLabelAlreadyAttached].
func (r *noteLabelRepository) AttachLabels(ctx context.Context, noteID int64, labelIDs []int64) error {
	if len(labelIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteLabelsQuery(r.dialect, noteID, labelIDs)
	if err != nil {
		log.Err(err).Str("func", "noteLabelRepository.AttachLabels").Msg("failed to create query")
		return err
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrLabelAlreadyAttached
		}
		log.Err(err).
			Str("func", "noteLabelRepository.AttachLabels").
			Int64("note_id", noteID).
			Msg("failed to attach labels")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *noteLabelRepository) DetachLabels(ctx context.Context, noteID int64, labelIDs []int64) (int64, error) {
	if len(labelIDs) == 0 {
		return 0, nil
	}
	return r.delete(ctx, "noteLabelRepository.DetachLabels", noteID, labelIDs)
}

func (r *noteLabelRepository) DeleteNoteLabels(ctx context.Context, noteID int64) error {
	_, err := r.delete(ctx, "noteLabelRepository.DeleteNoteLabels", noteID, nil)
	return err
}

func (r *noteLabelRepository) delete(ctx context.Context, fn string, noteID int64, labelIDs []int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteLabelsQuery(r.dialect, noteID, labelIDs)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return 0, err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("note_id", noteID).Msg("failed to delete note labels")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return affected, nil
}
