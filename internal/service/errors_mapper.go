// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/Rajshri-Priya/fundoo-notes/internal/adapter"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
)

// mapStoreError translates a repository error into a service business error.
// A transaction that kept conflicting is reported as unavailable so the
// client may retry. Unknown errors are returned unchanged and end up as
// internal errors.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoteNotFound):
		return ErrNoteNotFound
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrLabelNotFound):
		return ErrLabelNotFound
	case errors.Is(err, store.ErrCollaboratorNotFound):
		return ErrCollaboratorNotFound
	case errors.Is(err, store.ErrCollaboratorExists):
		return ErrCollaboratorExists
	case errors.Is(err, store.ErrLabelAlreadyAttached):
		return ErrLabelAlreadyAttached
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameTaken
	case errors.Is(err, store.ErrLabelNameExists):
		return ErrLabelNameTaken
	case errors.Is(err, store.ErrTxRetriesExhausted):
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return err
}

// mapAdapterError translates a sibling service error. notFound is the
// business error reported when the upstream answers 404.
func mapAdapterError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrNotFound):
		return notFound
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}
