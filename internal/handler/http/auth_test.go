package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

func newUsersHandler(users *fakeUserService) *Handler {
	return newTestHandler(&service.Services{Users: users}, users)
}

// ─────────────────────────────────────────────
// register / verify
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "success", body: `{"username":"asha","password":"pw","first_name":"A","last_name":"R","email":"a@x.io"}`, wantStatus: http.StatusCreated},
		{name: "invalid json", body: `{"username":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"username":"asha","admin":true}`, wantStatus: http.StatusBadRequest},
		{name: "validation", body: `{"username":"asha"}`, err: service.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "username taken", body: `{"username":"asha"}`, err: service.ErrUsernameTaken, wantStatus: http.StatusConflict},
		{name: "database down", body: `{"username":"asha"}`, err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserService{
				registerFn: func(_ context.Context, req models.RegisterRequest) (models.UserProfile, error) {
					if tt.err != nil {
						return models.UserProfile{}, tt.err
					}
					return models.UserProfile{ID: 4, Username: req.Username}, nil
				},
			}

			rr := callHandler(newUsersHandler(users).register, http.MethodPost, "/api/users/register", tt.body, 0, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeEnvelope[*models.UserProfile](t, rr)
			assert.Equal(t, tt.wantStatus, body.Status)
			if tt.wantStatus == http.StatusCreated {
				require.NotNil(t, body.Data)
				assert.Equal(t, "asha", body.Data.Username)
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, assert.AnError.Error())
			}
		})
	}
}

func TestVerify(t *testing.T) {
	var gotToken string
	users := &fakeUserService{
		verifyFn: func(_ context.Context, token string) error {
			gotToken = token
			if token == "bad" {
				return service.ErrTokenIsExpiredOrInvalid
			}
			return nil
		},
	}
	h := newUsersHandler(users)

	rr := callHandler(h.verify, http.MethodGet, "/api/users/verify?token=good", "", 0, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "good", gotToken)

	rr = callHandler(h.verify, http.MethodGet, "/api/users/verify?token=bad", "", 0, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "wrong credentials", err: service.ErrWrongCredentials, wantStatus: http.StatusUnauthorized},
		{name: "not verified", err: service.ErrAccountNotVerified, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserService{
				loginFn: func(_ context.Context, creds models.Credentials) (models.Token, error) {
					assert.Equal(t, "asha", creds.Username)
					if tt.err != nil {
						return models.Token{}, tt.err
					}
					return models.Token{SignedString: "jwt-value", UserID: 4}, nil
				},
			}

			rr := callHandler(newUsersHandler(users).login, http.MethodPost, "/api/users/login", `{"username":"asha","password":"pw"}`, 0, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.err == nil {
				assert.Equal(t, "Bearer jwt-value", rr.Header().Get("Authorization"))
				assert.Equal(t, "jwt-value", decodeEnvelope[models.LoginResponse](t, rr).Data.Token)
			}
		})
	}
}

// ─────────────────────────────────────────────
// profiles / delete
// ─────────────────────────────────────────────

func TestGetUser(t *testing.T) {
	users := &fakeUserService{
		getProfileFn: func(_ context.Context, userID int64) (models.UserProfile, error) {
			if userID == 404 {
				return models.UserProfile{}, service.ErrUserNotFound
			}
			return models.UserProfile{ID: userID}, nil
		},
	}
	h := newUsersHandler(users)

	rr := callHandler(h.getUser, http.MethodGet, "/api/users/9", "", 0, map[string]string{"userID": "9"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(9), decodeEnvelope[models.UserProfile](t, rr).Data.ID)

	rr = callHandler(h.getUser, http.MethodGet, "/api/users/404", "", 0, map[string]string{"userID": "404"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = callHandler(h.getUser, http.MethodGet, "/api/users/-1", "", 0, map[string]string{"userID": "-1"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAuthenticate_RequiresCaller(t *testing.T) {
	h := newUsersHandler(&fakeUserService{})

	rr := callHandler(h.authenticate, http.MethodGet, "/api/users/authenticate", "", 0, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDeleteUser(t *testing.T) {
	users := &fakeUserService{
		deleteAccountFn: func(_ context.Context, creds models.Credentials) error {
			if creds.Password != "pw" {
				return service.ErrWrongCredentials
			}
			return nil
		},
	}
	h := newUsersHandler(users)

	rr := callHandler(h.deleteUser, http.MethodDelete, "/api/users", `{"username":"asha","password":"pw"}`, 0, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = callHandler(h.deleteUser, http.MethodDelete, "/api/users", `{"username":"asha","password":"no"}`, 0, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
