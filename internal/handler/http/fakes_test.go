package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
	"github.com/Rajshri-Priya/fundoo-notes/internal/utils"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeAuthenticator struct {
	authenticateFn func(ctx context.Context, token string) (models.UserProfile, error)
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, token string) (models.UserProfile, error) {
	return f.authenticateFn(ctx, token)
}

// tokenAuthenticator accepts "token-<id>" style tokens for the listed ids.
func tokenAuthenticator(ids ...int64) *fakeAuthenticator {
	known := make(map[string]int64, len(ids))
	for _, id := range ids {
		known["token-"+itoa(id)] = id
	}
	return &fakeAuthenticator{authenticateFn: func(_ context.Context, token string) (models.UserProfile, error) {
		id, ok := known[token]
		if !ok {
			return models.UserProfile{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.UserProfile{ID: id}, nil
	}}
}

type fakeAppInfoService struct {
	info models.VersionInfo
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string { return f.info.Version }

func (f *fakeAppInfoService) GetVersionInfo(_ context.Context) models.VersionInfo { return f.info }

type fakeUserService struct {
	registerFn      func(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error)
	verifyFn        func(ctx context.Context, token string) error
	loginFn         func(ctx context.Context, creds models.Credentials) (models.Token, error)
	authenticateFn  func(ctx context.Context, token string) (models.UserProfile, error)
	getProfileFn    func(ctx context.Context, userID int64) (models.UserProfile, error)
	listProfilesFn  func(ctx context.Context) ([]models.UserProfile, error)
	deleteAccountFn func(ctx context.Context, creds models.Credentials) error
}

func (f *fakeUserService) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeUserService) Verify(ctx context.Context, token string) error {
	return f.verifyFn(ctx, token)
}

func (f *fakeUserService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return f.loginFn(ctx, creds)
}

func (f *fakeUserService) Authenticate(ctx context.Context, token string) (models.UserProfile, error) {
	return f.authenticateFn(ctx, token)
}

func (f *fakeUserService) ParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (f *fakeUserService) GetProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	return f.getProfileFn(ctx, userID)
}

func (f *fakeUserService) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	return f.listProfilesFn(ctx)
}

func (f *fakeUserService) DeleteAccount(ctx context.Context, creds models.Credentials) error {
	return f.deleteAccountFn(ctx, creds)
}

type fakeNoteService struct {
	createFn      func(ctx context.Context, userID int64, in models.NoteInput) (models.Note, error)
	listFn        func(ctx context.Context, userID int64, state models.NoteState) ([]models.Note, error)
	listSharedFn  func(ctx context.Context, userID int64) ([]models.SharedNote, error)
	getFn         func(ctx context.Context, userID, noteID int64) (models.Note, error)
	updateFn      func(ctx context.Context, userID, noteID int64, update models.NoteUpdate) (models.Note, error)
	deleteFn      func(ctx context.Context, userID, noteID int64) error
	toggleArchive func(ctx context.Context, userID, noteID int64) (models.Note, error)
	toggleTrash   func(ctx context.Context, userID, noteID int64) (models.Note, error)
}

func (f *fakeNoteService) CreateNote(ctx context.Context, userID int64, in models.NoteInput) (models.Note, error) {
	return f.createFn(ctx, userID, in)
}

func (f *fakeNoteService) ListNotes(ctx context.Context, userID int64, state models.NoteState) ([]models.Note, error) {
	return f.listFn(ctx, userID, state)
}

func (f *fakeNoteService) ListSharedNotes(ctx context.Context, userID int64) ([]models.SharedNote, error) {
	return f.listSharedFn(ctx, userID)
}

func (f *fakeNoteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return f.getFn(ctx, userID, noteID)
}

func (f *fakeNoteService) UpdateNote(ctx context.Context, userID, noteID int64, update models.NoteUpdate) (models.Note, error) {
	return f.updateFn(ctx, userID, noteID, update)
}

func (f *fakeNoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	return f.deleteFn(ctx, userID, noteID)
}

func (f *fakeNoteService) ToggleArchive(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return f.toggleArchive(ctx, userID, noteID)
}

func (f *fakeNoteService) ToggleTrash(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return f.toggleTrash(ctx, userID, noteID)
}

type fakeCollaboratorService struct {
	addFn    func(ctx context.Context, userID, noteID int64, req models.AddCollaboratorsRequest) ([]models.Collaborator, error)
	removeFn func(ctx context.Context, userID, noteID int64, req models.RemoveCollaboratorsRequest) error
	listFn   func(ctx context.Context, userID, noteID int64) ([]models.CollaboratorView, error)
}

func (f *fakeCollaboratorService) AddCollaborators(ctx context.Context, userID, noteID int64, req models.AddCollaboratorsRequest) ([]models.Collaborator, error) {
	return f.addFn(ctx, userID, noteID, req)
}

func (f *fakeCollaboratorService) RemoveCollaborators(ctx context.Context, userID, noteID int64, req models.RemoveCollaboratorsRequest) error {
	return f.removeFn(ctx, userID, noteID, req)
}

func (f *fakeCollaboratorService) ListCollaborators(ctx context.Context, userID, noteID int64) ([]models.CollaboratorView, error) {
	return f.listFn(ctx, userID, noteID)
}

type fakeNoteLabelService struct {
	attachFn func(ctx context.Context, userID, noteID int64, req models.NoteLabelsRequest) ([]int64, error)
	detachFn func(ctx context.Context, userID, noteID int64, req models.NoteLabelsRequest) ([]int64, error)
	listFn   func(ctx context.Context, userID, noteID int64) ([]int64, error)
}

func (f *fakeNoteLabelService) AttachLabels(ctx context.Context, userID, noteID int64, req models.NoteLabelsRequest) ([]int64, error) {
	return f.attachFn(ctx, userID, noteID, req)
}

func (f *fakeNoteLabelService) DetachLabels(ctx context.Context, userID, noteID int64, req models.NoteLabelsRequest) ([]int64, error) {
	return f.detachFn(ctx, userID, noteID, req)
}

func (f *fakeNoteLabelService) ListLabels(ctx context.Context, userID, noteID int64) ([]int64, error) {
	return f.listFn(ctx, userID, noteID)
}

type fakeLabelService struct {
	createFn func(ctx context.Context, userID int64, in models.LabelInput) (models.Label, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Label, error)
	updateFn func(ctx context.Context, userID, labelID int64, update models.LabelUpdate) (models.Label, error)
	deleteFn func(ctx context.Context, userID, labelID int64) error
	lookupFn func(ctx context.Context, ids []int64) ([]models.Label, error)
}

func (f *fakeLabelService) CreateLabel(ctx context.Context, userID int64, in models.LabelInput) (models.Label, error) {
	return f.createFn(ctx, userID, in)
}

func (f *fakeLabelService) ListLabels(ctx context.Context, userID int64) ([]models.Label, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeLabelService) UpdateLabel(ctx context.Context, userID, labelID int64, update models.LabelUpdate) (models.Label, error) {
	return f.updateFn(ctx, userID, labelID, update)
}

func (f *fakeLabelService) DeleteLabel(ctx context.Context, userID, labelID int64) error {
	return f.deleteFn(ctx, userID, labelID)
}

func (f *fakeLabelService) LookupLabels(ctx context.Context, ids []int64) ([]models.Label, error) {
	return f.lookupFn(ctx, ids)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func newTestHandler(services *service.Services, auth Authenticator) *Handler {
	if services.AppInfo == nil {
		services.AppInfo = &fakeAppInfoService{info: models.VersionInfo{Service: "test", Version: "test-version"}}
	}
	return NewHandler(services, auth, config.Server{}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// callHandler runs fn directly with the caller and chi url params set.
func callHandler(fn http.HandlerFunc, method, target, body string, userID int64, params map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = injectNopLogger(req)

	ctx := req.Context()
	if userID > 0 {
		ctx = utils.WithCaller(ctx, userID, "token-"+itoa(userID))
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	rr := httptest.NewRecorder()
	fn(rr, req.WithContext(ctx))
	return rr
}

// serve sends a request through router with a bearer token when token != "".
func serve(router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

type envelope[T any] struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    T      `json:"data"`
}

func decodeEnvelope[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var body envelope[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}
