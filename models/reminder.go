package models

import (
	"fmt"
	"time"
)

// ReminderRequest is what the notes service asks the scheduler to deliver.
type ReminderRequest struct {
	NoteID    int64     `json:"note_id"`
	FireAt    time.Time `json:"fire_at"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
}

// TaskName is the unique schedule name of the reminder: the note id plus
// the calendar day of the fire time, so two reminders for the same note on
// the same day share one name.
func (r ReminderRequest) TaskName() string {
	return ReminderTaskName(r.NoteID, r.FireAt)
}

// ReminderTaskName names the reminder of noteID that fires at fireAt.
func ReminderTaskName(noteID int64, fireAt time.Time) string {
	return fmt.Sprintf("note_%d_%s", noteID, fireAt.UTC().Format(time.DateOnly))
}

// ReminderTask is a named, timed unit of work stored by the scheduler.
type ReminderTask struct {
	Name    string          `json:"name"`
	FireAt  time.Time       `json:"fire_at"`
	Payload ReminderRequest `json:"payload"`
	Attempt int             `json:"attempt"`
}
