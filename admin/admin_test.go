package admin_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QuaresmaHarygens/Talkam/admin"
	"github.com/QuaresmaHarygens/Talkam/client"
)

func newUpstream(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

func TestMiddleware_RejectsMissingToken(t *testing.T) {
	admin.SetupGoGuardian()
	handler := admin.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("protected handler must not run without a session")
	}))

	req := httptest.NewRequest("GET", "/dashboard/analytics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "unauthorized")
}

func TestMiddleware_AcceptsGrantedSession(t *testing.T) {
	admin.SetupGoGuardian()

	req := httptest.NewRequest("GET", "/dashboard/analytics", nil)
	req.Header.Set("Authorization", "Bearer session-token-1")
	admin.GrantSession("session-token-1", "+231770000000", req)

	var reached bool
	handler := admin.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuth_LoginIssuesGatewayToken(t *testing.T) {
	admin.SetupGoGuardian()
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		io.WriteString(w, `{"access_token": "upstream-tok", "roles": ["admin"]}`)
	})

	a := admin.Auth{API: api}
	req := httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"phone": "+231770000000", "password": "secret"}`))
	rr := httptest.NewRecorder()
	a.LoginHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Token string   `json:"token"`
		Roles []string `json:"roles"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	// the gateway session token is its own credential, never the upstream one
	assert.NotEqual(t, "upstream-tok", body.Token)
	assert.Equal(t, []string{"admin"}, body.Roles)

	// the issued token passes the middleware
	protected := httptest.NewRequest("GET", "/reports", nil)
	protected.Header.Set("Authorization", "Bearer "+body.Token)
	var reached bool
	handler := admin.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))
	handler.ServeHTTP(httptest.NewRecorder(), protected)
	assert.True(t, reached)
}

func TestAuth_LoginRequiresCredentials(t *testing.T) {
	admin.SetupGoGuardian()
	var upstreamCalled bool
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
	})

	a := admin.Auth{API: api}
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"phone": ""}`))
	rr := httptest.NewRecorder()
	a.LoginHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, upstreamCalled)
}

func TestDashboards_TimeSeriesGroupByValidation(t *testing.T) {
	var gotGroupBy string
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		gotGroupBy = r.URL.Query().Get("group_by")
		io.WriteString(w, `{"series": [], "group_by": "week"}`)
	})
	d := admin.Dashboards{API: api}

	// a valid bucketing is forwarded as-is
	rr := httptest.NewRecorder()
	d.TimeSeriesHandler(rr, httptest.NewRequest("GET", "/dashboard/time-series?group_by=week", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "week", gotGroupBy)

	// empty defaults to day
	rr = httptest.NewRecorder()
	d.TimeSeriesHandler(rr, httptest.NewRequest("GET", "/dashboard/time-series", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "day", gotGroupBy)

	// anything else is rejected before the upstream call
	gotGroupBy = ""
	rr = httptest.NewRecorder()
	d.TimeSeriesHandler(rr, httptest.NewRequest("GET", "/dashboard/time-series?group_by=hour", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, gotGroupBy)
}

func TestAlerts_BroadcastValidation(t *testing.T) {
	var upstreamCalled bool
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
	})
	al := admin.Alerts{API: api}

	tests := []struct {
		name string
		body string
	}{
		{"bad severity", `{"severity": "extreme", "message": "flooding", "counties": ["Bong"]}`},
		{"missing message", `{"severity": "warning", "message": "  ", "counties": ["Bong"]}`},
		{"no counties", `{"severity": "warning", "message": "flooding expected", "counties": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			al.BroadcastHandler(rr, httptest.NewRequest("POST", "/alerts/broadcast", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, upstreamCalled)
		})
	}
}

func TestAlerts_BroadcastPassesThrough(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alerts/broadcast", r.URL.Path)
		io.WriteString(w, `{"message": "alert dispatched", "result": {"recipients": 1200}}`)
	})
	al := admin.Alerts{API: api}

	body := `{"severity": "critical", "title": "Flood warning", "message": "move to higher ground", "counties": ["Bong", "Lofa"]}`
	rr := httptest.NewRecorder()
	al.BroadcastHandler(rr, httptest.NewRequest("POST", "/alerts/broadcast", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alert dispatched")
}

func TestReports_VerifyRejectNeedsComment(t *testing.T) {
	var upstreamCalled bool
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
	})
	re := admin.Reports{API: api}

	rr := httptest.NewRecorder()
	re.VerifyHandler(rr, httptest.NewRequest("POST", "/reports/r1/verify",
		strings.NewReader(`{"action": "reject"}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, upstreamCalled)
}
