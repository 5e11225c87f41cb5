package http

import (
	"net/http"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	profile, err := h.services.Users.Register(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", profile.ID).Msg("user registered")
	h.respond(w, r, http.StatusCreated, "user registered, check your email to verify the account", profile)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Users.Verify(r.Context(), r.URL.Query().Get("token")); err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "account verified", nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		h.fail(w, r, err)
		return
	}

	token, err := h.services.Users.Login(r.Context(), creds)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	h.respond(w, r, http.StatusOK, "logged in", models.LoginResponse{Token: token.String()})
}

// authenticate echoes the profile resolved by the auth middleware. Sibling
// services call it to resolve their callers.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	profile, err := h.services.Users.GetProfile(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "authenticated", profile)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	profile, err := h.services.Users.GetProfile(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "user found", profile)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.Users.ListProfiles(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "users found", profiles)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.services.Users.DeleteAccount(r.Context(), creds); err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "user deleted", nil)
}
