package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/utils"
)

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteResponse(w, status, message, data); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// fail maps err onto an HTTP status and writes the error envelope.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	h.respond(w, r, status, messageFromError(err, status), nil)
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func idParam(r *http.Request, name string) (int64, error) {
	return parseID(chi.URLParam(r, name))
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPathParam, raw)
	}
	return id, nil
}

// parseIDList parses a comma separated list such as "1,2,3".
func parseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return []int64{}, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func callerID(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || userID <= 0 {
		return 0, ErrNoCaller
	}
	return userID, nil
}

// noteRequest extracts the caller and the {noteID} path parameter.
func noteRequest(r *http.Request) (userID, noteID int64, err error) {
	if userID, err = callerID(r); err != nil {
		return 0, 0, err
	}
	if noteID, err = idParam(r, "noteID"); err != nil {
		return 0, 0, err
	}
	return userID, noteID, nil
}
