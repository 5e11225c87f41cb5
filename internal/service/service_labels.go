// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
	"github.com/Rajshri-Priya/fundoo-notes/internal/validators"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

type labelService struct {
	labelRepository store.LabelRepository
	validator       validators.Validator
	now             func() time.Time

	logger *logger.Logger
}

func NewLabelService(labelRepository store.LabelRepository, validator validators.Validator, logger *logger.Logger) LabelService {
	return &labelService{
		labelRepository: labelRepository,
		validator:       validator,
		now:             func() time.Time { return time.Now().UTC() },
		logger:          logger,
	}
}

func (l *labelService) CreateLabel(ctx context.Context, userID int64, in models.LabelInput) (models.Label, error) {
	if err := l.validator.Validate(ctx, in); err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	label, err := l.labelRepository.CreateLabel(ctx, in.NewLabel(userID, l.now()))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "labelService.CreateLabel").Int64("user_id", userID).Msg("label creation failed")
		return models.Label{}, mapStoreError(err)
	}
	return label, nil
}

func (l *labelService) ListLabels(ctx context.Context, userID int64) ([]models.Label, error) {
	labels, err := l.labelRepository.ListLabelsByOwner(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return labels, nil
}

// UpdateLabel edits a label of userID. Labels of other users are reported
// as not found.
func (l *labelService) UpdateLabel(ctx context.Context, userID, labelID int64, update models.LabelUpdate) (models.Label, error) {
	if err := l.validator.Validate(ctx, update); err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	label, err := l.labelRepository.GetLabel(ctx, userID, labelID)
	if err != nil {
		return models.Label{}, mapStoreError(err)
	}

	update.Apply(&label)
	label.ModifiedAt = l.now()
	if err = l.labelRepository.UpdateLabel(ctx, label); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "labelService.UpdateLabel").Int64("label_id", labelID).Msg("label update failed")
		return models.Label{}, mapStoreError(err)
	}
	return label, nil
}

func (l *labelService) DeleteLabel(ctx context.Context, userID, labelID int64) error {
	return mapStoreError(l.labelRepository.DeleteLabel(ctx, userID, labelID))
}

func (l *labelService) LookupLabels(ctx context.Context, ids []int64) ([]models.Label, error) {
	labels, err := l.labelRepository.FindLabelsByIDs(ctx, ids)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return labels, nil
}
