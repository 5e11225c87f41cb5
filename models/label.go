package models

import "time"

// Label is a user-owned tag served by the labels service.
type Label struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"user_id"`
	Name       string    `json:"name"`
	Color      string    `json:"color,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// LabelInput is the body of POST /api/labels.
type LabelInput struct {
	Name  string `json:"name" validate:"required,max=150"`
	Color string `json:"color" validate:"omitempty,max=150"`
}

// NewLabel maps a creation request to a label owned by ownerID.
func (in LabelInput) NewLabel(ownerID int64, now time.Time) Label {
	return Label{
		OwnerID:    ownerID,
		Name:       in.Name,
		Color:      in.Color,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// LabelUpdate is the body of PUT /api/labels/{labelID}.
type LabelUpdate struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=150"`
	Color *string `json:"color" validate:"omitempty,max=150"`
}

// Apply copies the set fields of u onto label.
func (u LabelUpdate) Apply(label *Label) {
	if u.Name != nil {
		label.Name = *u.Name
	}
	if u.Color != nil {
		label.Color = *u.Color
	}
}

// NoteLabelsRequest is the body of POST and DELETE /api/notes/{noteID}/labels.
type NoteLabelsRequest struct {
	LabelIDs []int64 `json:"label_ids" validate:"required,min=1,dive,gt=0"`
}
