// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

type labelRepository struct {
	*DB
	logger *logger.Logger
}

// NewLabelRepository constructs the [LabelRepository] of the labels service.
func NewLabelRepository(db *DB, logger *logger.Logger) LabelRepository {
	logger.Debug().Msg("creating label repository")
	return &labelRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *labelRepository) CreateLabel(ctx context.Context, label models.Label) (models.Label, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLabelQuery(r.dialect, label)
	if err != nil {
		log.Err(err).Str("func", "labelRepository.CreateLabel").Msg("failed to create query")
		return models.Label{}, err
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&label.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Label{}, ErrLabelNameExists
		}
		log.Err(err).
			Str("func", "labelRepository.CreateLabel").
			Int64("user_id", label.OwnerID).
			Msg("failed to insert label")
		return models.Label{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return label, nil
}

// GetLabel returns the label only when it belongs to ownerID.
func (r *labelRepository) GetLabel(ctx context.Context, ownerID, labelID int64) (models.Label, error) {
	labels, err := r.selectLabels(ctx, sq.Eq{"id": labelID, "user_id": ownerID})
	if err != nil {
		return models.Label{}, err
	}
	if len(labels) == 0 {
		return models.Label{}, ErrLabelNotFound
	}
	return labels[0], nil
}

func (r *labelRepository) ListLabelsByOwner(ctx context.Context, ownerID int64) ([]models.Label, error) {
	return r.selectLabels(ctx, sq.Eq{"user_id": ownerID})
}

// FindLabelsByIDs returns the labels with the given ids regardless of owner.
// Unknown ids are simply absent from the result.
func (r *labelRepository) FindLabelsByIDs(ctx context.Context, labelIDs []int64) ([]models.Label, error) {
	if len(labelIDs) == 0 {
		return []models.Label{}, nil
	}
	return r.selectLabels(ctx, sq.Eq{"id": labelIDs})
}

func (r *labelRepository) selectLabels(ctx context.Context, where sq.Eq) ([]models.Label, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLabelsQuery(r.dialect, where)
	if err != nil {
		log.Err(err).Str("func", "labelRepository.selectLabels").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "labelRepository.selectLabels").Msg("failed to execute query for labels")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	labels := make([]models.Label, 0, 16)
	for rows.Next() {
		var label models.Label
		scanErr := rows.Scan(
			&label.ID,
			&label.OwnerID,
			&label.Name,
			&label.Color,
			&label.CreatedAt,
			&label.ModifiedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "labelRepository.selectLabels").Msg("failed to scan label row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		labels = append(labels, label)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return labels, nil
}

func (r *labelRepository) UpdateLabel(ctx context.Context, label models.Label) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLabelQuery(r.dialect, label)
	if err != nil {
		log.Err(err).Str("func", "labelRepository.UpdateLabel").Msg("failed to create query")
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrLabelNameExists
		}
		log.Err(err).
			Str("func", "labelRepository.UpdateLabel").
			Int64("label_id", label.ID).
			Msg("failed to update label")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return labelAffected(res.RowsAffected())
}

func (r *labelRepository) DeleteLabel(ctx context.Context, ownerID, labelID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteLabelQuery(r.dialect, ownerID, labelID)
	if err != nil {
		log.Err(err).Str("func", "labelRepository.DeleteLabel").Msg("failed to create query")
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "labelRepository.DeleteLabel").
			Int64("label_id", labelID).
			Msg("failed to delete label")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return labelAffected(res.RowsAffected())
}

func labelAffected(affected int64, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrLabelNotFound
	}
	return nil
}
