// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var in models.NoteInput
	if err = decodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	note, err := h.services.Notes.CreateNote(r.Context(), userID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusCreated, "note created", note)
}

// listNotes answers GET /api/notes?state=. An absent state means active.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	state := models.NoteState(r.URL.Query().Get("state"))
	if state == "" {
		state = models.NoteStateActive
	}

	notes, err := h.services.Notes.ListNotes(r.Context(), userID, state)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "notes found", notes)
}

func (h *Handler) listSharedNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	notes, err := h.services.Notes.ListSharedNotes(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "shared notes found", notes)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	note, err := h.services.Notes.GetNote(r.Context(), userID, noteID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "note found", note)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var update models.NoteUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.fail(w, r, err)
		return
	}

	note, err := h.services.Notes.UpdateNote(r.Context(), userID, noteID, update)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "note updated", note)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err = h.services.Notes.DeleteNote(r.Context(), userID, noteID); err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "note deleted", nil)
}

func (h *Handler) toggleArchive(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	note, err := h.services.Notes.ToggleArchive(r.Context(), userID, noteID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "note "+string(note.State), note)
}

func (h *Handler) toggleTrash(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	note, err := h.services.Notes.ToggleTrash(r.Context(), userID, noteID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "note "+string(note.State), note)
}
