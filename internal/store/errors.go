package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registering a username that
	// is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when no note has the requested id.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrCollaboratorNotFound is returned when a (note, user) grant does not exist.
	ErrCollaboratorNotFound = errors.New("collaborator was not found")

	// ErrCollaboratorExists is returned when inserting a grant that already exists.
	ErrCollaboratorExists = errors.New("collaborator already exists")

	// ErrLabelAlreadyAttached is returned when a label is linked to a note twice.
	ErrLabelAlreadyAttached = errors.New("label already attached to note")

	// ErrLabelNotFound is returned when no label with the id exists for the owner.
	ErrLabelNotFound = errors.New("label was not found")

	// ErrLabelNameExists is returned when the owner already has a label with that name.
	ErrLabelNameExists = errors.New("label name already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	// The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrTxRetriesExhausted wraps the last retryable failure of a
	// transaction that kept conflicting after every attempt.
	ErrTxRetriesExhausted = errors.New("transaction kept conflicting")
)
