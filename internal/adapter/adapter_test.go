// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/utils"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(models.Response{Message: http.StatusText(status), Status: status, Data: data}))
}

func newTestUsersClient(t *testing.T, url string, timeout time.Duration) IdentityResolver {
	t.Helper()
	c, err := NewUsersClient(config.Adapter{UsersURL: url, RequestTimeout: timeout}, logger.Nop())
	require.NoError(t, err)
	return c
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthenticate(t *testing.T) {
	profile := models.UserProfile{ID: 4, Username: "meera", Email: "meera@example.com"}

	tests := []struct {
		name    string
		status  int
		data    any
		want    models.UserProfile
		wantErr error
	}{
		{name: "valid token", status: http.StatusOK, data: profile, want: profile},
		{name: "rejected token", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "users service failure", status: http.StatusServiceUnavailable, wantErr: ErrUnavailable},
		{name: "empty profile", status: http.StatusOK, data: map[string]any{}, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/users/authenticate", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				writeEnvelope(t, w, tt.status, tt.data)
			}))
			defer srv.Close()

			got, err := newTestUsersClient(t, srv.URL, time.Second).Authenticate(context.Background(), "tok")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetUser ──────────────────────────────────────────────────────────────────

func TestGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/4":
			writeEnvelope(t, w, http.StatusOK, models.UserProfile{ID: 4, Username: "meera"})
		case "/api/users/6":
			writeEnvelope(t, w, http.StatusOK, map[string]any{})
		case "/api/users/7":
			writeEnvelope(t, w, http.StatusOK, models.UserProfile{ID: 8, Username: "ravi"})
		default:
			writeEnvelope(t, w, http.StatusNotFound, nil)
		}
	}))
	defer srv.Close()

	c := newTestUsersClient(t, srv.URL, time.Second)

	got, err := c.GetUser(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "meera", got.Username)

	_, err = c.GetUser(context.Background(), 5)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.GetUser(context.Background(), 6)
	require.ErrorIs(t, err, ErrInvalidResponse)

	_, err = c.GetUser(context.Background(), 7)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetUser_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestUsersClient(t, srv.URL, 50*time.Millisecond).GetUser(context.Background(), 1)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestGetUser_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestUsersClient(t, url, time.Second).GetUser(context.Background(), 1)
	require.ErrorIs(t, err, ErrUnavailable)
}

// ── LookupLabels ─────────────────────────────────────────────────────────────

func TestLookupLabels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/labels/lookup", r.URL.Path)
		assert.Equal(t, "1,2,3", r.URL.Query().Get("ids"))
		assert.Equal(t, "Bearer caller-token", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, []models.Label{{ID: 1, Name: "a"}, {ID: 3, Name: "c"}})
	}))
	defer srv.Close()

	c, err := NewLabelsClient(config.Adapter{LabelsURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx := utils.WithCaller(context.Background(), 9, "caller-token")
	labels, err := c.LookupLabels(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, int64(3), labels[1].ID)

	empty, err := c.LookupLabels(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLookupLabels_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewLabelsClient(config.Adapter{LabelsURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = c.LookupLabels(context.Background(), []int64{1})
	require.ErrorIs(t, err, ErrUnavailable)
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8081", want: "http://localhost:8081"},
		{in: " https://users.internal/ ", want: "https://users.internal"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NewUsersClient(config.Adapter{}, logger.Nop())
	require.ErrorIs(t, err, ErrInvalidAddress)
}
