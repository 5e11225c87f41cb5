package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfo.GetVersionInfo(r.Context())
	h.respond(w, r, http.StatusOK, info.Version, info)
}
