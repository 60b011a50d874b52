package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prismatech/marketing-dashboard/internal/core/authctx"
	"github.com/prismatech/marketing-dashboard/internal/core/service"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/config"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/notify"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/queue"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/storage"
)

const cookieName = "prismatech_scope"

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := &config.Config{Env: "development"}
	cfg.Session.CookieName = cookieName
	cfg.Session.ReadyWait = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	inbox := notify.NewInbox()
	dispatcher := queue.NewDispatcher(1, zerolog.Nop(), inbox)
	dispatcher.Start(ctx)

	return NewRouter(Dependencies{
		Config: cfg,
		Logger: zerolog.Nop(),
		Contexts: authctx.NewRegistry(ctx, authctx.Options{
			Storage:  storage.NewMemory(),
			Gateway:  service.NewMockGateway(0, service.NewTokenIssuer("test")),
			Notifier: dispatcher,
			Logger:   zerolog.Nop(),
		}),
		Dashboard: service.NewDashboardService(zerolog.Nop()),
		Inbox:     inbox,
		Notifier:  dispatcher,
	})
}

type client struct {
	t      *testing.T
	e      *echo.Echo
	cookie *http.Cookie
}

func newClient(t *testing.T, e *echo.Echo) *client {
	return &client{t: t, e: e}
}

func (cl *client) do(method, target, body string) *httptest.ResponseRecorder {
	cl.t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cl.cookie != nil {
		req.AddCookie(cl.cookie)
	}
	rec := httptest.NewRecorder()
	cl.e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == cookieName {
			cl.cookie = ck
		}
	}
	return rec
}

func (cl *client) login(email string) {
	cl.t.Helper()
	rec := cl.do(http.MethodPost, "/auth/login", `{"email":"`+email+`","password":"pw"}`)
	require.Equal(cl.t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_ProtectedPageRedirectsAnonymous(t *testing.T) {
	cl := newClient(t, newTestRouter(t))

	rec := cl.do(http.MethodGet, "/campaigns?status=Active", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Fcampaigns%3Fstatus%3DActive", rec.Header().Get(echo.HeaderLocation))
	assert.NotNil(t, cl.cookie, "scope cookie should be issued")
}

func TestRouter_LoginThenBrowse(t *testing.T) {
	cl := newClient(t, newTestRouter(t))
	cl.do(http.MethodGet, "/", "")

	rec := cl.do(http.MethodPost, "/auth/login", `{"email":"bob@x.com","password":"pw","from":"/campaigns"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/campaigns", resp["redirect"])

	rec = cl.do(http.MethodGet, "/campaigns", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = cl.do(http.MethodGet, "/auth/session", "")
	assert.Contains(t, rec.Body.String(), `"is_authenticated":true`)
	assert.Contains(t, rec.Body.String(), `"role":"marketer"`)
}

func TestRouter_RoleRestrictions(t *testing.T) {
	marketer := newClient(t, newTestRouter(t))
	marketer.login("bob@x.com")
	rec := marketer.do(http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/unauthorized", rec.Header().Get(echo.HeaderLocation))

	rec = marketer.do(http.MethodGet, "/unauthorized", "")
	assert.Contains(t, rec.Body.String(), "Marketing User with marketer role")

	analyst := newClient(t, newTestRouter(t))
	analyst.login("analyst@x.com")
	rec = analyst.do(http.MethodPost, "/campaigns",
		`{"name":"X","platform":"Email","budget":1,"start_date":"2025-10-01","end_date":"2025-10-31"}`)
	assert.Equal(t, http.StatusFound, rec.Code)

	admin := newClient(t, newTestRouter(t))
	admin.login("admin@x.com")
	rec = admin.do(http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LogoutEndsSession(t *testing.T) {
	cl := newClient(t, newTestRouter(t))
	cl.login("admin@x.com")

	rec := cl.do(http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = cl.do(http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusFound, rec.Code)
}

// notices polls the inbox until at least one notice arrives.
func (cl *client) notices() []string {
	cl.t.Helper()
	var out []string
	require.Eventually(cl.t, func() bool {
		rec := cl.do(http.MethodGet, "/api/notifications", "")
		var resp struct {
			Notifications []struct {
				Title   string `json:"title"`
				Message string `json:"message"`
			} `json:"notifications"`
		}
		if json.Unmarshal(rec.Body.Bytes(), &resp) != nil {
			return false
		}
		for _, n := range resp.Notifications {
			out = append(out, n.Title+": "+n.Message)
		}
		return len(out) > 0
	}, time.Second, 10*time.Millisecond)
	return out
}

func TestRouter_NotificationsFollowAuthOperations(t *testing.T) {
	cl := newClient(t, newTestRouter(t))
	cl.login("admin@x.com")

	assert.Equal(t, []string{"Login successful: Welcome back, Admin User!"}, cl.notices())
}

func TestRouter_CreateTest(t *testing.T) {
	e := newTestRouter(t)
	body := `{"test_name":"Banner Copy","target_audience":"New visitors",` +
		`"variant_a":{"title":"A","content":"a"},"variant_b":{"title":"B","content":"b"}}`

	analyst := newClient(t, e)
	analyst.login("analyst@x.com")
	rec := analyst.do(http.MethodPost, "/ab-testing", body)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/unauthorized", rec.Header().Get(echo.HeaderLocation))

	marketer := newClient(t, e)
	marketer.login("bob@x.com")
	marketer.notices()

	rec = marketer.do(http.MethodPost, "/ab-testing", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, []string{`A/B Test Created: Your test "Banner Copy" has been set up and will start running shortly.`},
		marketer.notices())

	rec = analyst.do(http.MethodGet, "/ab-testing/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_InsightsAndReports(t *testing.T) {
	cl := newClient(t, newTestRouter(t))
	cl.login("analyst@x.com")

	rec := cl.do(http.MethodGet, "/insights?segment=Urban", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"segment":"Urban"`)

	rec = cl.do(http.MethodGet, "/reports?period=today&type=system", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestNewRouter_CanBeBuiltTwice(t *testing.T) {
	first := newTestRouter(t)
	second := newTestRouter(t)

	for _, e := range []*echo.Echo{first, second} {
		cl := newClient(t, e)
		cl.do(http.MethodGet, "/health", "")
		rec := cl.do(http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "prismatech_requests_total")
	}
}

func TestRouter_ScopesAreIndependent(t *testing.T) {
	e := newTestRouter(t)
	a := newClient(t, e)
	a.login("admin@x.com")

	b := newClient(t, e)
	rec := b.do(http.MethodGet, "/auth/session", "")
	assert.Contains(t, rec.Body.String(), `"is_authenticated":false`)
}

func TestRouter_Health(t *testing.T) {
	cl := newClient(t, newTestRouter(t))

	assert.Equal(t, http.StatusOK, cl.do(http.MethodGet, "/health", "").Code)
	rec := cl.do(http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusOK, cl.do(http.MethodGet, "/metrics", "").Code)
}
