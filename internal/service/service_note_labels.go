package service

import (
	"context"
	"fmt"

	"github.com/Rajshri-Priya/fundoo-notes/internal/adapter"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
	"github.com/Rajshri-Priya/fundoo-notes/internal/validators"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

type noteLabelService struct {
	storage   store.NoteStorage
	labels    adapter.LabelLookup
	validator validators.Validator

	logger *logger.Logger
}

// NewNoteLabelService constructs a NoteLabelService that checks label
// existence through the labels service.
func NewNoteLabelService(storage store.NoteStorage, labels adapter.LabelLookup, validator validators.Validator, logger *logger.Logger) NoteLabelService {
	return &noteLabelService{
		storage:   storage,
		labels:    labels,
		validator: validator,
		logger:    logger,
	}
}

// AttachLabels links labels to a note and returns the ids attached
// afterwards. An unknown or already attached label rejects the request.
func (n *noteLabelService) AttachLabels(ctx context.Context, userID, noteID int64, req models.NoteLabelsRequest) ([]int64, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "noteLabelService.AttachLabels").
		Int64("note_id", noteID).
		Int64("user_id", userID).
		Logger()

	if err := n.checkRequest(ctx, req); err != nil {
		return nil, err
	}

	_, access, err := ResolveAccess(ctx, n.storage.Read(), noteID, userID)
	if err != nil {
		return nil, err
	}
	if err = requireWrite(access); err != nil {
		return nil, err
	}

	found, err := n.labels.LookupLabels(ctx, req.LabelIDs)
	if err != nil {
		log.Err(err).Msg("label lookup failed")
		return nil, mapAdapterError(err, ErrLabelNotFound)
	}
	if missing := missingIDs(req.LabelIDs, labelIDs(found)); len(missing) > 0 {
		return nil, fmt.Errorf("%w: label %d", ErrLabelNotFound, missing[0])
	}

	var attached []int64
	err = n.storage.InTx(ctx, func(ctx context.Context, repos store.NoteRepositories) error {
		_, access, err := lockAccess(ctx, repos, noteID, userID)
		if err != nil {
			return err
		}
		if err = requireWrite(access); err != nil {
			return err
		}

		current, err := repos.NoteLabels.ListNoteLabels(ctx, noteID)
		if err != nil {
			return mapStoreError(err)
		}
		if dup := commonIDs(req.LabelIDs, current); len(dup) > 0 {
			return fmt.Errorf("%w: label %d", ErrLabelAlreadyAttached, dup[0])
		}

		if err = repos.NoteLabels.AttachLabels(ctx, noteID, req.LabelIDs); err != nil {
			return mapStoreError(err)
		}
		attached = append(current, req.LabelIDs...)
		return nil
	})
	if err != nil {
		log.Err(err).Msg("labels were not attached")
		return nil, err
	}

	log.Info().Ints64("labels", req.LabelIDs).Msg("labels attached")
	return attached, nil
}

// DetachLabels unlinks labels from a note and returns the ids still
// attached. A label that is not attached rejects the request.
func (n *noteLabelService) DetachLabels(ctx context.Context, userID, noteID int64, req models.NoteLabelsRequest) ([]int64, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "noteLabelService.DetachLabels").
		Int64("note_id", noteID).
		Int64("user_id", userID).
		Logger()

	if err := n.checkRequest(ctx, req); err != nil {
		return nil, err
	}

	var remaining []int64
	err := n.storage.InTx(ctx, func(ctx context.Context, repos store.NoteRepositories) error {
		_, access, err := lockAccess(ctx, repos, noteID, userID)
		if err != nil {
			return err
		}
		if err = requireWrite(access); err != nil {
			return err
		}

		current, err := repos.NoteLabels.ListNoteLabels(ctx, noteID)
		if err != nil {
			return mapStoreError(err)
		}
		if missing := missingIDs(req.LabelIDs, current); len(missing) > 0 {
			return fmt.Errorf("%w: label %d", ErrLabelNotAttached, missing[0])
		}

		if _, err = repos.NoteLabels.DetachLabels(ctx, noteID, req.LabelIDs); err != nil {
			return mapStoreError(err)
		}
		remaining = missingIDs(current, req.LabelIDs)
		return nil
	})
	if err != nil {
		log.Err(err).Msg("labels were not detached")
		return nil, err
	}

	log.Info().Ints64("labels", req.LabelIDs).Msg("labels detached")
	if remaining == nil {
		remaining = []int64{}
	}
	return remaining, nil
}

// ListLabels returns the ids of the labels attached to a note.
func (n *noteLabelService) ListLabels(ctx context.Context, userID, noteID int64) ([]int64, error) {
	repos := n.storage.Read()
	_, access, err := ResolveAccess(ctx, repos, noteID, userID)
	if err != nil {
		return nil, err
	}
	if err = requireRead(access); err != nil {
		return nil, err
	}

	ids, err := repos.NoteLabels.ListNoteLabels(ctx, noteID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteLabelService.ListLabels").Int64("note_id", noteID).Msg("listing note labels failed")
		return nil, mapStoreError(err)
	}
	return ids, nil
}

func (n *noteLabelService) checkRequest(ctx context.Context, req models.NoteLabelsRequest) error {
	if err := n.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if hasDuplicates(req.LabelIDs) {
		return ErrDuplicateIDs
	}
	return nil
}

func labelIDs(labels []models.Label) []int64 {
	ids := make([]int64, 0, len(labels))
	for _, l := range labels {
		ids = append(ids, l.ID)
	}
	return ids
}
