// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// ResolveAccess loads a note and determines what userID may do with it.
//
// The owner check comes first, then the collaborator grant. A missing note
// is [ErrNoteNotFound]; a user without a grant gets [models.RoleNone] and no
// error, so callers decide between read and write rules themselves.
func ResolveAccess(ctx context.Context, repos store.NoteRepositories, noteID, userID int64) (models.Note, models.Access, error) {
	note, err := repos.Notes.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, models.Access{}, mapStoreError(err)
	}
	return resolveGrant(ctx, repos, note, userID)
}

// lockAccess is ResolveAccess for transactions that go on to write the
// note: the note row stays locked until the transaction ends.
func lockAccess(ctx context.Context, repos store.NoteRepositories, noteID, userID int64) (models.Note, models.Access, error) {
	note, err := repos.Notes.LockNote(ctx, noteID)
	if err != nil {
		return models.Note{}, models.Access{}, mapStoreError(err)
	}
	return resolveGrant(ctx, repos, note, userID)
}

func resolveGrant(ctx context.Context, repos store.NoteRepositories, note models.Note, userID int64) (models.Note, models.Access, error) {
	if note.OwnerID == userID {
		return note, models.Access{Role: models.RoleOwner}, nil
	}

	grant, err := repos.Collaborators.GetCollaborator(ctx, note.ID, userID)
	switch {
	case err == nil:
		return note, models.Access{Role: models.RoleCollaborator, Level: grant.AccessLevel}, nil
	case errors.Is(err, store.ErrCollaboratorNotFound):
		return note, models.Access{Role: models.RoleNone}, nil
	default:
		return models.Note{}, models.Access{}, err
	}
}

func requireRead(access models.Access) error {
	if !access.CanRead() {
		return ErrNoAccess
	}
	return nil
}

func requireWrite(access models.Access) error {
	if err := requireRead(access); err != nil {
		return err
	}
	if !access.CanWrite() {
		return ErrNoWriteAccess
	}
	return nil
}

// requireOwner reports a collaborator as not the owner and anyone else as
// having no access at all.
func requireOwner(access models.Access) error {
	if err := requireRead(access); err != nil {
		return err
	}
	if !access.IsOwner() {
		return ErrNotNoteOwner
	}
	return nil
}
