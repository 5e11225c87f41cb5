// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoteState is the lifecycle state of a note.
type NoteState string

const (
	NoteStateActive   NoteState = "active"
	NoteStateArchived NoteState = "archived"
	NoteStateTrashed  NoteState = "trashed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s NoteState) Valid() bool {
	switch s {
	case NoteStateActive, NoteStateArchived, NoteStateTrashed:
		return true
	}
	return false
}

// Note is a note record of the notes service.
type Note struct {
	ID          int64      `json:"id"`
	OwnerID     int64      `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Color       string     `json:"color,omitempty"`
	State       NoteState  `json:"state"`
	Reminder    *time.Time `json:"reminder,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
}

// NoteInput is the body of POST /api/notes.
type NoteInput struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"required,max=1500"`
	Color       string     `json:"color" validate:"omitempty,max=10"`
	Reminder    *time.Time `json:"reminder"`
}

// NewNote maps a creation request to an active note owned by ownerID.
func (in NoteInput) NewNote(ownerID int64, now time.Time) Note {
	return Note{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Color:       in.Color,
		State:       NoteStateActive,
		Reminder:    in.Reminder,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
}

// NoteUpdate is the body of PUT /api/notes/{noteID}.
// Nil fields are left untouched; ClearReminder removes the reminder and
// cannot be combined with a new one. Owner and lifecycle state are not
// editable here.
type NoteUpdate struct {
	Title         *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description   *string    `json:"description" validate:"omitempty,min=1,max=1500"`
	Color         *string    `json:"color" validate:"omitempty,max=10"`
	Reminder      *time.Time `json:"reminder"`
	ClearReminder bool       `json:"clear_reminder" validate:"excluded_with=Reminder"`
}

// Empty reports whether the update changes nothing.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Color == nil && u.Reminder == nil && !u.ClearReminder
}

// Apply copies the set fields of u onto note, one field at a time, and
// reports whether the reminder was changed.
func (u NoteUpdate) Apply(note *Note) (reminderChanged bool) {
	if u.Title != nil {
		note.Title = *u.Title
	}
	if u.Description != nil {
		note.Description = *u.Description
	}
	if u.Color != nil {
		note.Color = *u.Color
	}
	switch {
	case u.Reminder != nil:
		reminderChanged = note.Reminder == nil || !note.Reminder.Equal(*u.Reminder)
		reminder := *u.Reminder
		note.Reminder = &reminder
	case u.ClearReminder:
		reminderChanged = note.Reminder != nil
		note.Reminder = nil
	}
	return reminderChanged
}

// SharedNote is a note seen by one of its collaborators.
type SharedNote struct {
	Note
	AccessLevel AccessLevel `json:"access_level"`
}
