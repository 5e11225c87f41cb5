package service

import "github.com/Rajshri-Priya/fundoo-notes/models"

// nextArchiveState flips a note between active and archived. A trashed note
// has to be restored first.
func nextArchiveState(state models.NoteState) (models.NoteState, error) {
	switch state {
	case models.NoteStateActive:
		return models.NoteStateArchived, nil
	case models.NoteStateArchived:
		return models.NoteStateActive, nil
	case models.NoteStateTrashed:
		return state, ErrNoteTrashed
	}
	return state, ErrInvalidState
}

// nextTrashState moves a note to the trash, or restores a trashed note to
// active. Whether it was archived before trashing is not remembered.
func nextTrashState(state models.NoteState) (models.NoteState, error) {
	switch state {
	case models.NoteStateActive, models.NoteStateArchived:
		return models.NoteStateTrashed, nil
	case models.NoteStateTrashed:
		return models.NoteStateActive, nil
	}
	return state, ErrInvalidState
}
