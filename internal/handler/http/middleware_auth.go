package http

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/utils"
)

// legacyTokenHeader is accepted for clients that send the raw token without
// a scheme.
const legacyTokenHeader = "token"

// auth is an HTTP middleware that resolves the caller of the request.
//
// The token is read from the "Authorization: Bearer <token>" header, or from
// the legacy "token" header when the former is absent. It is resolved through
// the handler's [Authenticator]; on success the caller's id and raw token are
// stored in the request context with [utils.WithCaller] so that downstream
// handlers and outbound adapters can use them.
//
// Missing, malformed and rejected tokens are answered with 401. An
// authenticator that cannot be reached is answered with 503.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		ctx := r.Context()
		profile, err := h.authenticator.Authenticate(ctx, tokenString)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		log := logger.FromRequest(r).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", profile.ID)
		})
		ctx = log.WithContext(utils.WithCaller(ctx, profile.ID, tokenString))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return getTokenFromAuthHeader(authHeader)
	}
	if token := strings.TrimSpace(r.Header.Get(legacyTokenHeader)); token != "" {
		return token, nil
	}
	return "", ErrEmptyAuthorizationHeader
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization" value
// of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
