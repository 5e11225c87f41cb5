package http

import (
	"net/http"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

func (h *Handler) addCollaborators(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req models.AddCollaboratorsRequest
	if err = decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	grants, err := h.services.Collaborators.AddCollaborators(r.Context(), userID, noteID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusCreated, "collaborators added", grants)
}

func (h *Handler) removeCollaborators(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req models.RemoveCollaboratorsRequest
	if err = decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	if err = h.services.Collaborators.RemoveCollaborators(r.Context(), userID, noteID, req); err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "collaborators removed", nil)
}

func (h *Handler) listCollaborators(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	views, err := h.services.Collaborators.ListCollaborators(r.Context(), userID, noteID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "collaborators found", views)
}
