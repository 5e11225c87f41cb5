// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

func (h *Handler) createLabel(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var in models.LabelInput
	if err = decodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	label, err := h.services.Labels.CreateLabel(r.Context(), userID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusCreated, "label created", label)
}

func (h *Handler) listLabels(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	labels, err := h.services.Labels.ListLabels(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "labels found", labels)
}

func (h *Handler) updateLabel(w http.ResponseWriter, r *http.Request) {
	userID, labelID, err := labelRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var update models.LabelUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.fail(w, r, err)
		return
	}

	label, err := h.services.Labels.UpdateLabel(r.Context(), userID, labelID, update)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "label updated", label)
}

func (h *Handler) deleteLabel(w http.ResponseWriter, r *http.Request) {
	userID, labelID, err := labelRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err = h.services.Labels.DeleteLabel(r.Context(), userID, labelID); err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "label deleted", nil)
}

// lookupLabels answers GET /api/labels/lookup?ids=1,2,3 with the labels that
// exist among ids, regardless of their owner. Unknown ids are left out.
func (h *Handler) lookupLabels(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDList(r.URL.Query().Get("ids"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	labels, err := h.services.Labels.LookupLabels(r.Context(), ids)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "labels found", labels)
}

func labelRequest(r *http.Request) (userID, labelID int64, err error) {
	if userID, err = callerID(r); err != nil {
		return 0, 0, err
	}
	if labelID, err = idParam(r, "labelID"); err != nil {
		return 0, 0, err
	}
	return userID, labelID, nil
}
