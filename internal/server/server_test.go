package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/store"
)

type fakeSender struct {
	readyErr error
	sendErr  error
	sent     []contact.Message
}

func (f *fakeSender) Ready() error { return f.readyErr }

func (f *fakeSender) Send(_ context.Context, msg contact.Message) error {
	f.sent = append(f.sent, msg)
	return f.sendErr
}

type harness struct {
	srv    *Server
	router *gin.Engine
	db     *store.DB
}

func testConfig() config.Config {
	return config.Config{
		Variant:              "brutalist",
		ContactRatePerMinute: 60,
		ContactBurst:         5,
		VisitorRetention:     365 * 24 * time.Hour,
	}
}

func newHarness(t *testing.T, sender contact.Sender, cfg config.Config) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "site.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	catalog, err := projects.LoadDefault()
	require.NoError(t, err)

	srv, err := New(Deps{
		Config:  cfg,
		Store:   db,
		Catalog: catalog,
		Contact: contact.NewService(sender, "owner@example.com", contact.WithRecorder(db)),
		Logger:  zerolog.Nop(),
		Now:     func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	srv.track = func(ip, userAgent, path string) {
		srv.recordVisit(srv.hashIP(ip), userAgent, path)
	}
	return &harness{srv: srv, router: srv.Router(), db: db}
}

func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func postForm(path string, vals url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func filledForm() url.Values {
	return url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello there"}}
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(Deps{})
	assert.Error(t, err)
}

func TestIndexUsesThemeCookie(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	w := h.do(req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="dark"`)
	assert.Contains(t, w.Body.String(), `data-variant="brutalist"`)
	assert.Contains(t, w.Body.String(), "© 2026")
}

func TestThemeToggleHTMX(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
	req.Header.Set("HX-Request", "true")
	w := h.do(req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"theme": "dark", "class": "dark"}, body)
	assert.Contains(t, w.Header().Get("HX-Trigger"), `"themeChanged"`)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "theme=dark")

	req = httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
	req.Header.Set("HX-Request", "true")
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	w = h.do(req)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"theme": "light", "class": ""}, body)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "theme=light")
}

func TestThemeToggleRedirectsWithoutHTMX(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	w := h.do(httptest.NewRequest(http.MethodPost, "/theme/toggle", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestContactSuccess(t *testing.T) {
	sender := &fakeSender{}
	h := newHarness(t, sender, testConfig())

	w := h.do(postForm("/contact", filledForm(), true))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, "Thank you for your message!"))
	assert.NotContains(t, body, "Hello there", "form is cleared")
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ada@example.com", sender.sent[0].ReplyTo)

	stats, err := h.db.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalMessages)
}

func TestContactNotConfiguredNeverSends(t *testing.T) {
	sender := contact.NewAPISender(contact.APIConfig{})
	h := newHarness(t, sender, testConfig())

	w := h.do(postForm("/contact", filledForm(), false))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
	assert.Contains(t, w.Body.String(), "Hello there", "values are kept")

	stats, err := h.db.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalMessages)
}

func TestContactProviderErrorKeepsValues(t *testing.T) {
	sender := &fakeSender{sendErr: &contact.ProviderError{Status: 400, Text: "bad template"}}
	h := newHarness(t, sender, testConfig())

	w := h.do(postForm("/contact", filledForm(), true))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Error: bad template")
	assert.Contains(t, w.Body.String(), "Hello there")
}

func TestContactInvalidFormSkipsSender(t *testing.T) {
	sender := &fakeSender{}
	h := newHarness(t, sender, testConfig())

	vals := filledForm()
	vals.Set("email", "not-an-address")
	w := h.do(postForm("/contact", vals, false))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), InvalidFormMessage)
	assert.Empty(t, sender.sent)
}

func TestContactRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.ContactRatePerMinute = 1
	cfg.ContactBurst = 1
	sender := &fakeSender{}
	h := newHarness(t, sender, cfg)

	require.Equal(t, http.StatusOK, h.do(postForm("/contact", filledForm(), false)).Code)
	w := h.do(postForm("/contact", filledForm(), false))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), RateLimitMessage)
	assert.Len(t, sender.sent, 1)
}

func navRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/nav/state", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeNav(t *testing.T, w *httptest.ResponseRecorder) navStateResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp navStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestNavStateSamplesLayout(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	w := h.do(navRequest(t, map[string]any{
		"scrollY":        900,
		"viewportWidth":  1280,
		"viewportHeight": 800,
		"documentHeight": 5000,
		"active":         "hero",
		"nav":            map[string]float64{"x": 400, "y": 700, "width": 480, "height": 60},
		"sections": []map[string]any{
			{"id": "hero", "top": 0, "height": 800},
			{"id": "about", "top": 800, "height": 800},
		},
		"boxes": []map[string]any{
			{"rect": map[string]float64{"width": 1280, "height": 800}, "background": "rgb(17, 24, 39)", "parent": -1},
		},
		"targets": []map[string]any{
			{"id": "img-gateway", "rect": map[string]float64{"y": 300, "width": 400, "height": 300}},
			{"id": "img-brzrk", "rect": map[string]float64{"y": 3000, "width": 400, "height": 300}},
		},
	}))

	resp := decodeNav(t, w)
	assert.Equal(t, "about", resp.Active)
	assert.EqualValues(t, "dark", resp.Tone)
	assert.True(t, resp.Visible)
	assert.Equal(t, []string{"img-gateway"}, resp.Reveal)
}

func TestNavStateFallsBackToFooter(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	w := h.do(navRequest(t, map[string]any{
		"scrollY":        4000,
		"viewportWidth":  1280,
		"viewportHeight": 800,
		"documentHeight": 4850,
		"active":         "contact",
		"nav":            map[string]float64{"x": 400, "y": 700, "width": 480, "height": 60},
		"landmarks": []map[string]any{
			{"id": "footer", "rect": map[string]float64{"y": 600, "width": 1280, "height": 300}},
		},
	}))

	resp := decodeNav(t, w)
	assert.Equal(t, "contact", resp.Active, "outside every section the current entry is kept")
	assert.EqualValues(t, "dark", resp.Tone)
	assert.False(t, resp.Visible, "hidden near the bottom of the page")
	assert.Equal(t, []string{}, resp.Reveal)
}

func TestNavStateUnknownActiveIsReset(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	w := h.do(navRequest(t, map[string]any{
		"viewportWidth":  1280,
		"viewportHeight": 800,
		"documentHeight": 5000,
		"active":         "nowhere",
		"nav":            map[string]float64{"x": 400, "y": 700, "width": 480, "height": 60},
	}))

	resp := decodeNav(t, w)
	assert.Equal(t, "hero", resp.Active)
	assert.EqualValues(t, "light", resp.Tone)
}

func TestNavStateRejectsBadInput(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	w := h.do(navRequest(t, map[string]any{
		"viewportWidth":  1280,
		"viewportHeight": 800,
		"documentHeight": 5000,
		"boxes": []map[string]any{
			{"rect": map[string]float64{"width": 10, "height": 10}, "background": "#000", "parent": 3},
		},
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(navRequest(t, map[string]any{"viewportWidth": 1280, "documentHeight": 5000}))
	assert.Equal(t, http.StatusBadRequest, w.Code, "viewport height is required")

	w = h.do(navRequest(t, map[string]any{"viewportWidth": 1280, "viewportHeight": 800}))
	assert.Equal(t, http.StatusBadRequest, w.Code, "document height is required")
}

func TestNavStateTranslatesSectionsIntoViewport(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	// Near the bottom of the page, but the bar is over the light contact
	// section once its document offset is shifted by the scroll position.
	w := h.do(navRequest(t, map[string]any{
		"scrollY":        1000,
		"viewportWidth":  1280,
		"viewportHeight": 800,
		"documentHeight": 1850,
		"active":         "contact",
		"nav":            map[string]float64{"x": 400, "y": 700, "width": 480, "height": 60},
		"sections": []map[string]any{
			{"id": "contact", "top": 1500, "height": 350},
		},
	}))

	resp := decodeNav(t, w)
	assert.EqualValues(t, "light", resp.Tone)
	assert.Equal(t, "contact", resp.Active)
}

func TestTypewriterFrames(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	w := h.do(httptest.NewRequest(http.MethodGet, "/api/typewriter", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Frames []frameJSON `json:"frames"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Frames)
	assert.Equal(t, frameJSON{Text: "U", DelayMs: 100}, body.Frames[0])
	assert.Equal(t, "", body.Frames[len(body.Frames)-1].Text)
}

func TestProjectFragments(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	w := h.do(httptest.NewRequest(http.MethodGet, "/sections/projects", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hx-get="/projects/crypto-swap"`)

	w = h.do(httptest.NewRequest(http.MethodGet, "/projects/crypto-swap", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `role="dialog"`)

	w = h.do(httptest.NewRequest(http.MethodGet, "/projects/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(httptest.NewRequest(http.MethodGet, "/modal/close", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestVisitorTracking(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())
	ctx := context.Background()

	h.do(httptest.NewRequest(http.MethodGet, "/", nil))
	h.do(httptest.NewRequest(http.MethodGet, "/static/js/site.js", nil))
	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	h.do(dnt)

	visits, err := h.db.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "/", visits[0].Path)
	assert.Len(t, visits[0].HashedIP, 16)
	assert.NotContains(t, visits[0].HashedIP, "192.0.2.1")
}

func TestHashIPIsStableAndSalted(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())
	other := newHarness(t, &fakeSender{}, testConfig())

	assert.Equal(t, h.srv.hashIP("192.0.2.1"), h.srv.hashIP("192.0.2.1"))
	assert.NotEqual(t, h.srv.hashIP("192.0.2.1"), other.srv.hashIP("192.0.2.1"))
}

func TestHealthz(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())

	w := h.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHarness(t, &fakeSender{}, testConfig())
	h.do(httptest.NewRequest(http.MethodGet, "/", nil))

	w := h.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "portfolio_page_renders_total")
}
