package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestNoteUpdate_Apply(t *testing.T) {
	day := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		note            Note
		update          NoteUpdate
		want            Note
		reminderChanged bool
	}{
		{
			name:   "title only",
			note:   Note{Title: "old", Description: "d", Color: "red"},
			update: NoteUpdate{Title: ptr("new")},
			want:   Note{Title: "new", Description: "d", Color: "red"},
		},
		{
			name:            "reminder set",
			note:            Note{Title: "t"},
			update:          NoteUpdate{Reminder: ptr(day)},
			want:            Note{Title: "t", Reminder: ptr(day)},
			reminderChanged: true,
		},
		{
			name:   "same reminder is not a change",
			note:   Note{Reminder: ptr(day)},
			update: NoteUpdate{Reminder: ptr(day)},
			want:   Note{Reminder: ptr(day)},
		},
		{
			name:            "clear reminder",
			note:            Note{Title: "t", Reminder: ptr(day)},
			update:          NoteUpdate{ClearReminder: true},
			want:            Note{Title: "t"},
			reminderChanged: true,
		},
		{
			name:   "clearing a missing reminder is not a change",
			note:   Note{Title: "t"},
			update: NoteUpdate{ClearReminder: true},
			want:   Note{Title: "t"},
		},
		{
			name:   "empty color clears it",
			note:   Note{Color: "blue"},
			update: NoteUpdate{Color: ptr("")},
			want:   Note{Color: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := tt.note
			changed := tt.update.Apply(&note)
			assert.Equal(t, tt.want, note)
			assert.Equal(t, tt.reminderChanged, changed)
		})
	}
}

func TestNoteUpdate_Empty(t *testing.T) {
	assert.True(t, NoteUpdate{}.Empty())
	assert.False(t, NoteUpdate{Color: ptr("")}.Empty())
	assert.False(t, NoteUpdate{ClearReminder: true}.Empty())
}

func TestAccess(t *testing.T) {
	tests := []struct {
		name                     string
		access                   Access
		owner, canRead, canWrite bool
	}{
		{name: "owner", access: Access{Role: RoleOwner}, owner: true, canRead: true, canWrite: true},
		{name: "read write", access: Access{Role: RoleCollaborator, Level: AccessReadWrite}, canRead: true, canWrite: true},
		{name: "read only", access: Access{Role: RoleCollaborator, Level: AccessReadOnly}, canRead: true},
		{name: "none", access: Access{Role: RoleNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.owner, tt.access.IsOwner())
			assert.Equal(t, tt.canRead, tt.access.CanRead())
			assert.Equal(t, tt.canWrite, tt.access.CanWrite())
		})
	}
}

func TestReminderRequest_TaskName(t *testing.T) {
	morning := ReminderRequest{NoteID: 7, FireAt: time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)}
	evening := ReminderRequest{NoteID: 7, FireAt: time.Date(2026, 10, 20, 21, 30, 0, 0, time.UTC)}

	assert.Equal(t, "note_7_2026-10-20", morning.TaskName())
	assert.Equal(t, morning.TaskName(), evening.TaskName(), "same note and day share a task name")
	assert.Equal(t, morning.TaskName(), ReminderTaskName(7, evening.FireAt.In(time.FixedZone("IST", 5*3600+1800))))
}
