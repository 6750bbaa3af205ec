package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitclub-admin/internal/core/auth"
	"fitclub-admin/internal/core/session"
	"fitclub-admin/internal/domain"
	"fitclub-admin/internal/feature/seed"
	"fitclub-admin/internal/repo"
	"fitclub-admin/internal/repo/repotest"
	"fitclub-admin/internal/service"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type testApp struct {
	t     *testing.T
	r     *gin.Engine
	store *repo.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := repotest.NewStore(t)
	_, err := seed.Run(context.Background(), store, time.UTC)
	require.NoError(t, err)

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "fitclub-test"}
	deps := Deps{
		Auth:          service.NewAuthService(store, session.NewMemoryStore(), jwter, time.Hour),
		Sections:      service.NewSectionService(store),
		Trainers:      service.NewTrainerService(store),
		Schedule:      service.NewScheduleService(store, time.UTC),
		Registrations: service.NewRegistrationService(store),
		Payments:      service.NewPaymentService(store),
		Analytics:     service.NewAnalyticsService(store),
	}
	r := NewAPIEngine(zap.NewNop(), deps, Options{EnforceRoles: true, SessionTTL: time.Hour})
	return &testApp{t: t, r: r, store: store}
}

func (a *testApp) do(method, path string, form url.Values, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	require.Equal(a.t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func (a *testApp) login(username, password string) *http.Cookie {
	a.t.Helper()
	w, env := a.do(http.MethodPost, "/login", url.Values{"username": {username}, "password": {password}}, nil)
	require.Equal(a.t, 0, env.Code, env.Msg)
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	a.t.Fatalf("no session cookie for %s", username)
	return nil
}

func (a *testApp) actorID(username string) uint {
	a.t.Helper()
	u, err := a.store.Actors().FindByUsername(context.Background(), username)
	require.NoError(a.t, err)
	require.NotNil(a.t, u)
	return u.ID
}

func idPath(prefix string, id uint) string {
	return prefix + "/" + strconvU(id)
}

func strconvU(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	w := httptest.NewRecorder()
	app.r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	app.r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fitclub_http_requests_total")
}

func TestLoginSetsSessionCookie(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login("admin", "admin123")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	_, env := app.do(http.MethodGet, "/", nil, cookie)
	require.Equal(t, 0, env.Code)
	var who struct {
		Actor *domain.Actor `json:"actor"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &who))
	require.NotNil(t, who.Actor)
	assert.Equal(t, "admin", who.Actor.Username)
	assert.Equal(t, domain.RoleAdmin, who.Actor.Role)
}

func TestLoginFailureDoesNotSayWhichFieldWasWrong(t *testing.T) {
	app := newTestApp(t)

	_, wrongPass := app.do(http.MethodPost, "/login", url.Values{"username": {"admin"}, "password": {"nope"}}, nil)
	_, unknown := app.do(http.MethodPost, "/login", url.Values{"username": {"ghost"}, "password": {"nope"}}, nil)
	_, empty := app.do(http.MethodPost, "/login", url.Values{}, nil)

	assert.Equal(t, 401, wrongPass.Code)
	assert.Equal(t, wrongPass, unknown)
	assert.Equal(t, wrongPass, empty)
}

func TestBearerTokenIsAccepted(t *testing.T) {
	app := newTestApp(t)
	_, env := app.do(http.MethodPost, "/login", url.Values{"username": {"manager"}, "password": {"manager123"}}, nil)
	require.Equal(t, 0, env.Code)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))

	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	w := httptest.NewRecorder()
	app.r.ServeHTTP(w, req)

	var got envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 0, got.Code)
	assert.Contains(t, string(got.Data), "section_data")
}

func TestGuardedRoutes(t *testing.T) {
	app := newTestApp(t)
	cookies := map[string]*http.Cookie{
		"admin":    app.login("admin", "admin123"),
		"manager":  app.login("manager", "manager123"),
		"trainer1": app.login("trainer1", "trainer123"),
		"client1":  app.login("client1", "client123"),
	}

	cases := []struct {
		who  string
		path string
		code int
	}{
		{"", "/staff", 401},
		{"", "/analytics", 401},
		{"admin", "/staff", 0},
		{"admin", "/analytics", 0},
		{"manager", "/staff", 403},
		{"manager", "/registration", 0},
		{"manager", "/payments", 0},
		{"trainer1", "/edit_schedule/1", 0},
		{"trainer1", "/analytics", 403},
		{"client1", "/registration", 403},
		{"client1", "/edit_schedule/1", 403},
		{"client1", "/schedule", 0},
		{"", "/prices", 0},
	}
	for _, tc := range cases {
		t.Run(tc.who+tc.path, func(t *testing.T) {
			_, env := app.do(http.MethodGet, tc.path, nil, cookies[tc.who])
			assert.Equal(t, tc.code, env.Code, env.Msg)
		})
	}
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login("admin", "admin123")

	w, env := app.do(http.MethodPost, "/logout", nil, cookie)
	require.Equal(t, 0, env.Code)
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)

	_, env = app.do(http.MethodGet, "/staff", nil, cookie)
	assert.Equal(t, 401, env.Code)
}

func TestDeleteTrainerCascades(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login("admin", "admin123")
	trainerID := app.actorID("trainer1")

	_, env := app.do(http.MethodPost, idPath("/delete_trainer", trainerID), nil, cookie)
	require.Equal(t, 0, env.Code, env.Msg)

	_, env = app.do(http.MethodGet, "/schedule", nil, nil)
	var entries []domain.Schedule
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.Len(t, entries, 10)
	for _, e := range entries {
		assert.NotEqual(t, trainerID, e.TrainerID)
	}

	_, env = app.do(http.MethodGet, idPath("/edit_trainer", trainerID), nil, cookie)
	assert.Equal(t, 404, env.Code)
}

func TestAddTrainerDuplicateIsConflict(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login("admin", "admin123")

	form := url.Values{"username": {"trainer1"}, "password": {"x"}, "phone": {"+79990000000"}}
	_, env := app.do(http.MethodPost, "/add_trainer", form, cookie)
	assert.Equal(t, 409, env.Code)

	form.Set("username", "trainer3")
	_, env = app.do(http.MethodPost, "/add_trainer", form, cookie)
	assert.Equal(t, 0, env.Code, env.Msg)
	assert.Equal(t, "Trainer added", env.Msg)
}

func TestEditScheduleRejectsBadDuration(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login("manager", "manager123")
	form := url.Values{
		"section_id": {"2"},
		"trainer_id": {strconvU(app.actorID("trainer2"))},
		"datetime":   {"2025-04-01T10:00"},
		"duration":   {"abc"},
	}

	_, env := app.do(http.MethodPost, "/edit_schedule/1", form, cookie)
	assert.Equal(t, 400, env.Code)

	e, err := app.store.Schedules().FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 60, e.Duration)
	assert.Equal(t, uint(1), e.SectionID)

	form.Set("duration", "45")
	_, env = app.do(http.MethodPost, "/edit_schedule/1", form, cookie)
	require.Equal(t, 0, env.Code, env.Msg)
	e, err = app.store.Schedules().FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 45, e.Duration)
	assert.Equal(t, uint(2), e.SectionID)
}

func TestRegistrationOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login("manager", "manager123")
	form := url.Values{
		"client_id":   {strconvU(app.actorID("client1"))},
		"schedule_id": {"1"},
	}

	_, env := app.do(http.MethodPost, "/registration", form, cookie)
	require.Equal(t, 0, env.Code, env.Msg)
	var reg domain.Registration
	require.NoError(t, json.Unmarshal(env.Data, &reg))

	_, env = app.do(http.MethodPost, "/registration", form, cookie)
	assert.Equal(t, 409, env.Code)

	_, env = app.do(http.MethodPost, idPath("/delete_registration", reg.ID), nil, cookie)
	assert.Equal(t, 0, env.Code)
	_, env = app.do(http.MethodPost, idPath("/delete_registration", reg.ID), nil, cookie)
	assert.Equal(t, 404, env.Code)
}

func TestPaymentsFeedAnalytics(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login("admin", "admin123")
	client := strconvU(app.actorID("client2"))

	for _, amount := range []string{"1500", "2500.5"} {
		_, env := app.do(http.MethodPost, "/payments",
			url.Values{"client_id": {client}, "amount": {amount}, "description": {"monthly"}}, cookie)
		require.Equal(t, 0, env.Code, env.Msg)
	}

	_, env := app.do(http.MethodGet, "/analytics", nil, cookie)
	require.Equal(t, 0, env.Code)
	var rep service.Report
	require.NoError(t, json.Unmarshal(env.Data, &rep))
	assert.InDelta(t, 4000.5, rep.TotalPayments, 1e-9)
	assert.Equal(t, int64(10), rep.TotalClients)
	assert.Len(t, rep.Sections, 12)
}
