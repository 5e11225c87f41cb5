package service

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by a service wraps exactly one of
// them, and the transport layer maps the class to a status code.
var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation error")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrUnauthorized        = errors.New("unauthorized")
)

var (
	ErrNoteNotFound         = fmt.Errorf("note %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrLabelNotFound        = fmt.Errorf("label %w", ErrNotFound)
	ErrCollaboratorNotFound = fmt.Errorf("collaborator %w", ErrNotFound)
	ErrLabelNotAttached     = fmt.Errorf("label is not attached to the note: %w", ErrNotFound)

	ErrNoAccess           = fmt.Errorf("no access to the note: %w", ErrForbidden)
	ErrNotNoteOwner       = fmt.Errorf("only the note owner may do this: %w", ErrForbidden)
	ErrNoWriteAccess      = fmt.Errorf("read-write access is required: %w", ErrForbidden)
	ErrAccountNotVerified = fmt.Errorf("account is not verified: %w", ErrForbidden)

	ErrNoteTrashed          = fmt.Errorf("note is in trash: %w", ErrConflict)
	ErrSelfCollaboration    = fmt.Errorf("owner cannot be a collaborator: %w", ErrConflict)
	ErrCollaboratorExists   = fmt.Errorf("collaborator already added: %w", ErrConflict)
	ErrLabelAlreadyAttached = fmt.Errorf("label already attached: %w", ErrConflict)
	ErrUsernameTaken        = fmt.Errorf("username is taken: %w", ErrConflict)
	ErrLabelNameTaken       = fmt.Errorf("label name is taken: %w", ErrConflict)

	ErrInvalidDataProvided = fmt.Errorf("invalid data provided: %w", ErrValidation)
	ErrDuplicateIDs        = fmt.Errorf("ids must not repeat: %w", ErrValidation)
	ErrInvalidState        = fmt.Errorf("unknown note state: %w", ErrValidation)

	ErrWrongCredentials        = fmt.Errorf("wrong username or password: %w", ErrUnauthorized)
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("token is expired or invalid: %w", ErrUnauthorized)
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
