package http

import (
	"net/http"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

func (h *Handler) attachLabels(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req models.NoteLabelsRequest
	if err = decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	ids, err := h.services.NoteLabels.AttachLabels(r.Context(), userID, noteID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusCreated, "labels attached", ids)
}

func (h *Handler) detachLabels(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req models.NoteLabelsRequest
	if err = decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	ids, err := h.services.NoteLabels.DetachLabels(r.Context(), userID, noteID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "labels detached", ids)
}

func (h *Handler) listNoteLabels(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	ids, err := h.services.NoteLabels.ListLabels(r.Context(), userID, noteID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "labels found", ids)
}
