package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/yritu05/Scholar-Connect/internal/api/middleware"
	"github.com/yritu05/Scholar-Connect/internal/api/view"
	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

// testApp routes requests through the same middleware the server uses, so
// session cookies and flashes behave as they do in production.
type testApp struct {
	e        *echo.Echo
	sessions *middleware.Sessions
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer
	e.Validator = NewValidator()

	s := middleware.NewSessions("test-secret", time.Hour, false)
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.Use(s.Identify())

	e.GET("/__flashes", func(c echo.Context) error {
		return c.JSON(http.StatusOK, popFlashes(c))
	})
	return &testApp{e: e, sessions: s}
}

// serve runs req, authenticated as userID when it is positive.
func (a *testApp) serve(t *testing.T, req *http.Request, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	if userID > 0 {
		req.AddCookie(a.sessionCookie(t, userID))
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) sessionCookie(t *testing.T, userID int64) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	c := a.e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := a.sessions.Login(c, userID); err != nil {
		t.Fatalf("login: %v", err)
	}
	return rec.Result().Cookies()[0]
}

// flashes replays the cookies set by rec and returns the queued flashes.
func (a *testApp) flashes(t *testing.T, rec *httptest.ResponseRecorder) []view.Flash {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/__flashes", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	out := httptest.NewRecorder()
	a.e.ServeHTTP(out, req)

	var fl []view.Flash
	if err := json.Unmarshal(out.Body.Bytes(), &fl); err != nil {
		t.Fatalf("decode flashes: %v (%s)", err, out.Body.String())
	}
	return fl
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, to string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d (%s)", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != to {
		t.Fatalf("expected redirect to %q, got %q", to, loc)
	}
}

func assertFlash(t *testing.T, got []view.Flash, kind, message string) {
	t.Helper()
	for _, f := range got {
		if f.Kind == kind && f.Message == message {
			return
		}
	}
	t.Fatalf("expected %s flash %q, got %+v", kind, message, got)
}

func formRequest(method, target string, vals url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(vals.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// multipartRequest builds an upload; an empty filename omits the file part.
func multipartRequest(t *testing.T, target string, fields map[string]string, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

// ── Service stubs ─────────────────────────────────────────────────────────────

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

type stubProfileService struct {
	getFn    func(ctx context.Context, userID int64) (*domain.User, error)
	updateFn func(ctx context.Context, userID int64, in ports.UpdateProfileInput) (*domain.User, error)
}

func (s *stubProfileService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	return s.getFn(ctx, userID)
}

func (s *stubProfileService) Update(ctx context.Context, userID int64, in ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, userID, in)
}

type stubPaperService struct {
	uploadFn      func(ctx context.Context, ownerID int64, in ports.UploadPaperInput) (*domain.Paper, error)
	dashboardFn   func(ctx context.Context, ownerID int64) ([]*domain.Paper, error)
	exploreFn     func(ctx context.Context, in ports.ExploreInput) ([]*domain.Paper, error)
	getOwnedFn    func(ctx context.Context, actorID, paperID int64) (*domain.Paper, error)
	modifyFn      func(ctx context.Context, actorID, paperID int64, in ports.ModifyPaperInput) (*domain.Paper, error)
	deleteFn      func(ctx context.Context, actorID, paperID int64) (*domain.Paper, error)
	collaborateFn func(ctx context.Context, actorID, paperID int64) (*ports.Collaboration, error)
}

func (s *stubPaperService) Upload(ctx context.Context, ownerID int64, in ports.UploadPaperInput) (*domain.Paper, error) {
	return s.uploadFn(ctx, ownerID, in)
}

func (s *stubPaperService) Dashboard(ctx context.Context, ownerID int64) ([]*domain.Paper, error) {
	return s.dashboardFn(ctx, ownerID)
}

func (s *stubPaperService) Explore(ctx context.Context, in ports.ExploreInput) ([]*domain.Paper, error) {
	return s.exploreFn(ctx, in)
}

func (s *stubPaperService) GetOwned(ctx context.Context, actorID, paperID int64) (*domain.Paper, error) {
	return s.getOwnedFn(ctx, actorID, paperID)
}

func (s *stubPaperService) Modify(ctx context.Context, actorID, paperID int64, in ports.ModifyPaperInput) (*domain.Paper, error) {
	return s.modifyFn(ctx, actorID, paperID, in)
}

func (s *stubPaperService) Delete(ctx context.Context, actorID, paperID int64) (*domain.Paper, error) {
	return s.deleteFn(ctx, actorID, paperID)
}

func (s *stubPaperService) Collaborate(ctx context.Context, actorID, paperID int64) (*ports.Collaboration, error) {
	return s.collaborateFn(ctx, actorID, paperID)
}

type stubChatService struct {
	partnersFn func(ctx context.Context, userID int64) ([]*domain.User, error)
	threadFn   func(ctx context.Context, userID, recipientID int64) (*ports.Thread, error)
	sendFn     func(ctx context.Context, senderID, recipientID int64, message string) (*domain.ChatMessage, error)
}

func (s *stubChatService) Partners(ctx context.Context, userID int64) ([]*domain.User, error) {
	return s.partnersFn(ctx, userID)
}

func (s *stubChatService) Thread(ctx context.Context, userID, recipientID int64) (*ports.Thread, error) {
	return s.threadFn(ctx, userID, recipientID)
}

func (s *stubChatService) Send(ctx context.Context, senderID, recipientID int64, message string) (*domain.ChatMessage, error) {
	return s.sendFn(ctx, senderID, recipientID, message)
}

type stubNotificationService struct {
	listFn func(ctx context.Context) ([]domain.Notification, error)
}

func (s *stubNotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.listFn(ctx)
}
