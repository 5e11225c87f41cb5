// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rajshri-Priya/fundoo-notes/internal/adapter"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
	"github.com/Rajshri-Priya/fundoo-notes/internal/validators"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

type collaboratorService struct {
	storage   store.NoteStorage
	identity  adapter.IdentityResolver
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewCollaboratorService constructs a CollaboratorService.
func NewCollaboratorService(storage store.NoteStorage, identity adapter.IdentityResolver, validator validators.Validator, logger *logger.Logger) CollaboratorService {
	return &collaboratorService{
		storage:   storage,
		identity:  identity,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// AddCollaborators grants every user in req the same access level.
//
// The batch is all or nothing: the owner among the targets, an unknown user
// or an existing grant rejects the whole request and nothing is written.
// Users are resolved before the transaction starts so no upstream call is
// made while rows are locked.
func (c *collaboratorService) AddCollaborators(ctx context.Context, userID, noteID int64, req models.AddCollaboratorsRequest) ([]models.Collaborator, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "collaboratorService.AddCollaborators").
		Int64("note_id", noteID).
		Int64("user_id", userID).
		Logger()

	if err := c.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if hasDuplicates(req.UserIDs) {
		return nil, ErrDuplicateIDs
	}

	note, access, err := ResolveAccess(ctx, c.storage.Read(), noteID, userID)
	if err != nil {
		return nil, err
	}
	if err = requireOwner(access); err != nil {
		return nil, err
	}
	if err = rejectSelf(note.OwnerID, req.UserIDs); err != nil {
		return nil, err
	}

	for _, id := range req.UserIDs {
		if _, err = c.identity.GetUser(ctx, id); err != nil {
			log.Err(err).Int64("collaborator_id", id).Msg("collaborator lookup failed")
			return nil, fmt.Errorf("%w: user %d", mapAdapterError(err, ErrUserNotFound), id)
		}
	}

	now := c.now()
	grants := make([]models.Collaborator, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		grants = append(grants, models.Collaborator{
			NoteID:      noteID,
			UserID:      id,
			AccessLevel: req.AccessLevel,
			GrantedBy:   userID,
			CreatedAt:   now,
		})
	}

	err = c.storage.InTx(ctx, func(ctx context.Context, repos store.NoteRepositories) error {
		note, access, err := lockAccess(ctx, repos, noteID, userID)
		if err != nil {
			return err
		}
		if err = requireOwner(access); err != nil {
			return err
		}
		if err = rejectSelf(note.OwnerID, req.UserIDs); err != nil {
			return err
		}

		existing, err := repos.Collaborators.FindCollaborators(ctx, noteID, req.UserIDs)
		if err != nil {
			return mapStoreError(err)
		}
		if len(existing) > 0 {
			return fmt.Errorf("%w: user %d", ErrCollaboratorExists, existing[0].UserID)
		}

		return mapStoreError(repos.Collaborators.AddCollaborators(ctx, grants))
	})
	if err != nil {
		log.Err(err).Msg("collaborators were not added")
		return nil, err
	}

	log.Info().Ints64("collaborators", req.UserIDs).Str("access_level", string(req.AccessLevel)).Msg("collaborators added")
	return grants, nil
}

// RemoveCollaborators revokes the grants of every user in req. A user
// without a grant rejects the whole request.
func (c *collaboratorService) RemoveCollaborators(ctx context.Context, userID, noteID int64, req models.RemoveCollaboratorsRequest) error {
	log := logger.FromContext(ctx).With().
		Str("func", "collaboratorService.RemoveCollaborators").
		Int64("note_id", noteID).
		Int64("user_id", userID).
		Logger()

	if err := c.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if hasDuplicates(req.UserIDs) {
		return ErrDuplicateIDs
	}

	err := c.storage.InTx(ctx, func(ctx context.Context, repos store.NoteRepositories) error {
		_, access, err := lockAccess(ctx, repos, noteID, userID)
		if err != nil {
			return err
		}
		if err = requireOwner(access); err != nil {
			return err
		}

		existing, err := repos.Collaborators.FindCollaborators(ctx, noteID, req.UserIDs)
		if err != nil {
			return mapStoreError(err)
		}
		if missing := missingIDs(req.UserIDs, collaboratorIDs(existing)); len(missing) > 0 {
			return fmt.Errorf("%w: user %d", ErrCollaboratorNotFound, missing[0])
		}

		removed, err := repos.Collaborators.RemoveCollaborators(ctx, noteID, req.UserIDs)
		if err != nil {
			return mapStoreError(err)
		}
		if removed != int64(len(req.UserIDs)) {
			return ErrCollaboratorNotFound
		}
		return nil
	})
	if err != nil {
		log.Err(err).Msg("collaborators were not removed")
		return err
	}

	log.Info().Ints64("collaborators", req.UserIDs).Msg("collaborators removed")
	return nil
}

// ListCollaborators returns the grants of a note with each collaborator's
// profile. A failed profile lookup degrades only its own entry.
func (c *collaboratorService) ListCollaborators(ctx context.Context, userID, noteID int64) ([]models.CollaboratorView, error) {
	log := logger.FromContext(ctx)

	repos := c.storage.Read()
	_, access, err := ResolveAccess(ctx, repos, noteID, userID)
	if err != nil {
		return nil, err
	}
	if err = requireOwner(access); err != nil {
		return nil, err
	}

	grants, err := repos.Collaborators.ListCollaborators(ctx, noteID)
	if err != nil {
		log.Err(err).Str("func", "collaboratorService.ListCollaborators").Int64("note_id", noteID).Msg("listing collaborators failed")
		return nil, mapStoreError(err)
	}

	views := make([]models.CollaboratorView, 0, len(grants))
	for _, grant := range grants {
		view := models.CollaboratorView{Collaborator: grant}
		profile, err := c.identity.GetUser(ctx, grant.UserID)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "collaboratorService.ListCollaborators").
				Int64("collaborator_id", grant.UserID).
				Msg("collaborator profile lookup failed")
			view.Error = mapAdapterError(err, ErrUserNotFound).Error()
		} else {
			view.User = &profile
		}
		views = append(views, view)
	}

	return views, nil
}

func rejectSelf(ownerID int64, userIDs []int64) error {
	for _, id := range userIDs {
		if id == ownerID {
			return ErrSelfCollaboration
		}
	}
	return nil
}

func collaboratorIDs(grants []models.Collaborator) []int64 {
	ids := make([]int64, 0, len(grants))
	for _, g := range grants {
		ids = append(ids, g.UserID)
	}
	return ids
}

func hasDuplicates(ids []int64) bool {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

// missingIDs returns the ids of want that are not in have, in order.
func missingIDs(want, have []int64) []int64 {
	present := make(map[int64]struct{}, len(have))
	for _, id := range have {
		present[id] = struct{}{}
	}
	var missing []int64
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// commonIDs returns the ids of want that are also in have, in order.
func commonIDs(want, have []int64) []int64 {
	present := make(map[int64]struct{}, len(have))
	for _, id := range have {
		present[id] = struct{}{}
	}
	var common []int64
	for _, id := range want {
		if _, ok := present[id]; ok {
			common = append(common, id)
		}
	}
	return common
}
