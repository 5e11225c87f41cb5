package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// UsersRoutes builds the router of the users process. Profile lookups stay
// public so that sibling services can resolve collaborators.
func (h *Handler) UsersRoutes() *chi.Mux {
	router := h.newRouter()

	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Get("/api/users/verify", h.verify)
		r.Post("/api/users/login", h.login)
		r.Get("/api/users", h.listUsers)
		r.Delete("/api/users", h.deleteUser)
		r.Get("/api/users/{userID}", h.getUser)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/users/authenticate", h.authenticate)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// NotesRoutes builds the router of the notes process. Every note route
// requires an authenticated caller.
func (h *Handler) NotesRoutes() *chi.Mux {
	router := h.newRouter()

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/shared", h.listSharedNotes)

		r.Get("/api/notes/{noteID}", h.getNote)
		r.Put("/api/notes/{noteID}", h.updateNote)
		r.Delete("/api/notes/{noteID}", h.deleteNote)
		r.Patch("/api/notes/{noteID}/archive", h.toggleArchive)
		r.Patch("/api/notes/{noteID}/trash", h.toggleTrash)

		r.Post("/api/notes/{noteID}/collaborators", h.addCollaborators)
		r.Delete("/api/notes/{noteID}/collaborators", h.removeCollaborators)
		r.Get("/api/notes/{noteID}/collaborators", h.listCollaborators)

		r.Post("/api/notes/{noteID}/labels", h.attachLabels)
		r.Delete("/api/notes/{noteID}/labels", h.detachLabels)
		r.Get("/api/notes/{noteID}/labels", h.listNoteLabels)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) LabelsRoutes() *chi.Mux {
	router := h.newRouter()

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/labels", h.createLabel)
		r.Get("/api/labels", h.listLabels)
		r.Get("/api/labels/lookup", h.lookupLabels)
		r.Put("/api/labels/{labelID}", h.updateLabel)
		r.Delete("/api/labels/{labelID}", h.deleteLabel)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// newRouter returns a router with the middleware stack shared by every
// process and the version endpoint.
func (h *Handler) newRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	return router
}
