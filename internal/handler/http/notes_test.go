package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

const caller int64 = 11

func noteParams(id string) map[string]string {
	return map[string]string{"noteID": id}
}

// ─────────────────────────────────────────────
// notes
// ─────────────────────────────────────────────

func TestCreateNote(t *testing.T) {
	var got models.NoteInput
	notes := &fakeNoteService{
		createFn: func(_ context.Context, userID int64, in models.NoteInput) (models.Note, error) {
			got = in
			return in.NewNote(userID, time.Now()), nil
		},
	}
	h := newTestHandler(&service.Services{Notes: notes}, nil)

	rr := callHandler(h.createNote, http.MethodPost, "/api/notes",
		`{"title":"groceries","description":"milk","reminder":"2026-10-20T09:00:00Z"}`, caller, nil)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "groceries", got.Title)
	require.NotNil(t, got.Reminder)
	assert.Equal(t, 20, got.Reminder.Day())

	body := decodeEnvelope[models.Note](t, rr)
	assert.Equal(t, caller, body.Data.OwnerID)
	assert.Equal(t, models.NoteStateActive, body.Data.State)
}

func TestCreateNote_NoCaller(t *testing.T) {
	h := newTestHandler(&service.Services{Notes: &fakeNoteService{}}, nil)

	rr := callHandler(h.createNote, http.MethodPost, "/api/notes", `{}`, 0, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListNotes_StateQuery(t *testing.T) {
	tests := []struct {
		query      string
		wantState  models.NoteState
		err        error
		wantStatus int
	}{
		{query: "", wantState: models.NoteStateActive, wantStatus: http.StatusOK},
		{query: "?state=archived", wantState: models.NoteStateArchived, wantStatus: http.StatusOK},
		{query: "?state=trashed", wantState: models.NoteStateTrashed, wantStatus: http.StatusOK},
		{query: "?state=deleted", wantState: "deleted", err: service.ErrInvalidState, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var gotState models.NoteState
			notes := &fakeNoteService{
				listFn: func(_ context.Context, userID int64, state models.NoteState) ([]models.Note, error) {
					assert.Equal(t, caller, userID)
					gotState = state
					return []models.Note{}, tt.err
				},
			}
			h := newTestHandler(&service.Services{Notes: notes}, nil)

			rr := callHandler(h.listNotes, http.MethodGet, "/api/notes"+tt.query, "", caller, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantState, gotState)
		})
	}
}

func TestListSharedNotes(t *testing.T) {
	notes := &fakeNoteService{
		listSharedFn: func(context.Context, int64) ([]models.SharedNote, error) {
			return []models.SharedNote{{Note: models.Note{ID: 3}, AccessLevel: models.AccessReadOnly}}, nil
		},
	}
	h := newTestHandler(&service.Services{Notes: notes}, nil)

	rr := callHandler(h.listSharedNotes, http.MethodGet, "/api/notes/shared", "", caller, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeEnvelope[[]models.SharedNote](t, rr)
	require.Len(t, body.Data, 1)
	assert.Equal(t, models.AccessReadOnly, body.Data[0].AccessLevel)
}

func TestGetNote_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", err: service.ErrNoteNotFound, wantStatus: http.StatusNotFound},
		{name: "no access", err: service.ErrNoAccess, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &fakeNoteService{
				getFn: func(_ context.Context, _ int64, noteID int64) (models.Note, error) {
					return models.Note{ID: noteID}, tt.err
				},
			}
			h := newTestHandler(&service.Services{Notes: notes}, nil)

			rr := callHandler(h.getNote, http.MethodGet, "/api/notes/8", "", caller, noteParams("8"))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateNote(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "success", body: `{"title":"new"}`, wantStatus: http.StatusOK},
		{name: "trashed", body: `{"title":"new"}`, err: fmt.Errorf("%w: note 8", service.ErrNoteTrashed), wantStatus: http.StatusConflict},
		{name: "read only", body: `{"color":"red"}`, err: service.ErrNoWriteAccess, wantStatus: http.StatusForbidden},
		{name: "unknown field", body: `{"owner":2}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &fakeNoteService{
				updateFn: func(_ context.Context, userID, noteID int64, update models.NoteUpdate) (models.Note, error) {
					assert.Equal(t, int64(8), noteID)
					if tt.err != nil {
						return models.Note{}, tt.err
					}
					return models.Note{ID: noteID, OwnerID: userID, Title: *update.Title}, nil
				},
			}
			h := newTestHandler(&service.Services{Notes: notes}, nil)

			rr := callHandler(h.updateNote, http.MethodPut, "/api/notes/8", tt.body, caller, noteParams("8"))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "new", decodeEnvelope[models.Note](t, rr).Data.Title)
			}
		})
	}
}

func TestDeleteNote(t *testing.T) {
	notes := &fakeNoteService{
		deleteFn: func(_ context.Context, userID, _ int64) error {
			if userID != caller {
				return service.ErrNotNoteOwner
			}
			return nil
		},
	}
	h := newTestHandler(&service.Services{Notes: notes}, nil)

	assert.Equal(t, http.StatusOK, callHandler(h.deleteNote, http.MethodDelete, "/api/notes/8", "", caller, noteParams("8")).Code)
	assert.Equal(t, http.StatusForbidden, callHandler(h.deleteNote, http.MethodDelete, "/api/notes/8", "", 99, noteParams("8")).Code)
}

func TestToggleTrash(t *testing.T) {
	notes := &fakeNoteService{
		toggleTrash: func(_ context.Context, _, noteID int64) (models.Note, error) {
			return models.Note{ID: noteID, State: models.NoteStateTrashed}, nil
		},
		toggleArchive: func(context.Context, int64, int64) (models.Note, error) {
			return models.Note{}, service.ErrNoteTrashed
		},
	}
	h := newTestHandler(&service.Services{Notes: notes}, nil)

	rr := callHandler(h.toggleTrash, http.MethodPatch, "/api/notes/8/trash", "", caller, noteParams("8"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "note trashed", decodeEnvelope[models.Note](t, rr).Message)

	rr = callHandler(h.toggleArchive, http.MethodPatch, "/api/notes/8/archive", "", caller, noteParams("8"))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

// ─────────────────────────────────────────────
// collaborators
// ─────────────────────────────────────────────

func TestAddCollaborators(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusCreated},
		{name: "self share", err: service.ErrSelfCollaboration, wantStatus: http.StatusConflict},
		{name: "unknown user", err: fmt.Errorf("%w: user 6", service.ErrUserNotFound), wantStatus: http.StatusNotFound},
		{name: "users service down", err: fmt.Errorf("%w: timeout", service.ErrUpstreamUnavailable), wantStatus: http.StatusServiceUnavailable},
		{name: "not owner", err: service.ErrNotNoteOwner, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collaborators := &fakeCollaboratorService{
				addFn: func(_ context.Context, userID, noteID int64, req models.AddCollaboratorsRequest) ([]models.Collaborator, error) {
					assert.Equal(t, []int64{5, 6}, req.UserIDs)
					assert.Equal(t, models.AccessReadWrite, req.AccessLevel)
					if tt.err != nil {
						return nil, tt.err
					}
					return []models.Collaborator{{NoteID: noteID, UserID: 5, GrantedBy: userID}, {NoteID: noteID, UserID: 6, GrantedBy: userID}}, nil
				},
			}
			h := newTestHandler(&service.Services{Collaborators: collaborators}, nil)

			rr := callHandler(h.addCollaborators, http.MethodPost, "/api/notes/8/collaborators",
				`{"user_ids":[5,6],"access_level":"read_write"}`, caller, noteParams("8"))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.err != nil {
				assert.Contains(t, decodeEnvelope[any](t, rr).Message, tt.err.Error())
			}
		})
	}
}

func TestRemoveAndListCollaborators(t *testing.T) {
	collaborators := &fakeCollaboratorService{
		removeFn: func(_ context.Context, _, _ int64, req models.RemoveCollaboratorsRequest) error {
			if len(req.UserIDs) > 1 {
				return service.ErrCollaboratorNotFound
			}
			return nil
		},
		listFn: func(context.Context, int64, int64) ([]models.CollaboratorView, error) {
			return []models.CollaboratorView{
				{Collaborator: models.Collaborator{UserID: 5}, User: &models.UserProfile{ID: 5}},
				{Collaborator: models.Collaborator{UserID: 6}, Error: "users service unavailable"},
			}, nil
		},
	}
	h := newTestHandler(&service.Services{Collaborators: collaborators}, nil)

	rr := callHandler(h.removeCollaborators, http.MethodDelete, "/api/notes/8/collaborators", `{"user_ids":[5]}`, caller, noteParams("8"))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = callHandler(h.removeCollaborators, http.MethodDelete, "/api/notes/8/collaborators", `{"user_ids":[5,7]}`, caller, noteParams("8"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = callHandler(h.listCollaborators, http.MethodGet, "/api/notes/8/collaborators", "", caller, noteParams("8"))
	assert.Equal(t, http.StatusOK, rr.Code)
	views := decodeEnvelope[[]models.CollaboratorView](t, rr).Data
	require.Len(t, views, 2)
	assert.NotNil(t, views[0].User)
	assert.Equal(t, "users service unavailable", views[1].Error)
}

// ─────────────────────────────────────────────
// note labels
// ─────────────────────────────────────────────

func TestNoteLabels(t *testing.T) {
	noteLabels := &fakeNoteLabelService{
		attachFn: func(_ context.Context, _, _ int64, req models.NoteLabelsRequest) ([]int64, error) {
			if req.LabelIDs[0] == 99 {
				return nil, fmt.Errorf("%w: label 99", service.ErrLabelNotFound)
			}
			return append([]int64{1}, req.LabelIDs...), nil
		},
		detachFn: func(context.Context, int64, int64, models.NoteLabelsRequest) ([]int64, error) {
			return []int64{}, nil
		},
		listFn: func(context.Context, int64, int64) ([]int64, error) {
			return nil, service.ErrNoAccess
		},
	}
	h := newTestHandler(&service.Services{NoteLabels: noteLabels}, nil)

	rr := callHandler(h.attachLabels, http.MethodPost, "/api/notes/8/labels", `{"label_ids":[2,3]}`, caller, noteParams("8"))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, []int64{1, 2, 3}, decodeEnvelope[[]int64](t, rr).Data)

	rr = callHandler(h.attachLabels, http.MethodPost, "/api/notes/8/labels", `{"label_ids":[99]}`, caller, noteParams("8"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = callHandler(h.detachLabels, http.MethodDelete, "/api/notes/8/labels", `{"label_ids":[1]}`, caller, noteParams("8"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"labels detached","status":200,"data":[]}`, rr.Body.String())

	rr = callHandler(h.listNoteLabels, http.MethodGet, "/api/notes/8/labels", "", caller, noteParams("8"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
