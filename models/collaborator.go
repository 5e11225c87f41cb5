package models

import "time"

// Collaborator is a grant giving a secondary user access to a note.
type Collaborator struct {
	NoteID      int64       `json:"note_id"`
	UserID      int64       `json:"user_id"`
	AccessLevel AccessLevel `json:"access_level"`
	GrantedBy   int64       `json:"granted_by"`
	CreatedAt   time.Time   `json:"created_at"`
}

// AddCollaboratorsRequest is the body of POST /api/notes/{noteID}/collaborators.
type AddCollaboratorsRequest struct {
	UserIDs     []int64     `json:"user_ids" validate:"required,min=1,dive,gt=0"`
	AccessLevel AccessLevel `json:"access_level" validate:"required,oneof=read_only read_write"`
}

// RemoveCollaboratorsRequest is the body of DELETE /api/notes/{noteID}/collaborators.
type RemoveCollaboratorsRequest struct {
	UserIDs []int64 `json:"user_ids" validate:"required,min=1,dive,gt=0"`
}

// CollaboratorView is a grant enriched with the collaborator's profile.
// User is nil and Error is set when the profile could not be fetched.
type CollaboratorView struct {
	Collaborator
	User  *UserProfile `json:"user,omitempty"`
	Error string       `json:"error,omitempty"`
}
