package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/config"
	"frontdesk/internal/events"
	"frontdesk/internal/frontdesk"
)

type fakeFeed struct {
	events []events.Event
	err    error
	asked  int64
}

func (f *fakeFeed) Recent(_ context.Context, n int64) ([]events.Event, error) {
	f.asked = n
	if f.err != nil {
		return nil, f.err
	}
	if int64(len(f.events)) > n {
		return f.events[:n], nil
	}
	return f.events, nil
}

func newTestServer(t *testing.T, feed ActivityFeed, burst int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	store := frontdesk.NewStore(frontdesk.Snapshot{
		Plans: frontdesk.DefaultPlans(),
		Members: []frontdesk.Member{
			{ID: "m-1", Name: "Marco Reyes", ContactNumber: "09171234567", PlanID: frontdesk.PlanMonthly, Status: frontdesk.StatusActive},
		},
	}, func() time.Time { return now })

	cfg := &config.Config{
		Port:                "0",
		KioskRateLimitRPS:   1,
		KioskRateLimitBurst: burst,
	}
	srv := New(cfg, frontdesk.NewHandler(frontdesk.NewService(store, nil)), feed)
	return srv.Router()
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestServer(t, nil, 10)

	w := serve(router, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestServer(t, nil, 10)

	serve(router, http.MethodGet, "/plans")
	w := serve(router, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "frontdesk_http_requests_total"))
}

func TestRoutesWired(t *testing.T) {
	router := newTestServer(t, nil, 100)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/plans", http.StatusOK},
		{http.MethodGet, "/kiosk/members?q=marco", http.StatusOK},
		{http.MethodPost, "/kiosk/members/m-1/checkin", http.StatusOK},
		{http.MethodGet, "/kiosk/checked-in", http.StatusOK},
		{http.MethodGet, "/admin/checked-in", http.StatusOK},
		{http.MethodPost, "/admin/members/m-1/checkout", http.StatusOK},
		{http.MethodGet, "/admin/stats", http.StatusOK},
		{http.MethodGet, "/admin/members", http.StatusOK},
		{http.MethodGet, "/admin/members/expired", http.StatusOK},
		{http.MethodGet, "/admin/members/m-1", http.StatusOK},
		{http.MethodGet, "/admin/payments", http.StatusOK},
		{http.MethodGet, "/admin/reports/revenue", http.StatusOK},
		{http.MethodGet, "/admin/reports/attendance", http.StatusOK},
		{http.MethodGet, "/admin/reports/summary", http.StatusOK},
		{http.MethodGet, "/admin/members/m-404", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(router, tt.method, tt.path)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestKioskRateLimited(t *testing.T) {
	router := newTestServer(t, nil, 2)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/kiosk/checked-in").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/kiosk/checked-in").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, http.MethodGet, "/kiosk/checked-in").Code)

	// Admin routes have no limiter.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/admin/checked-in").Code)
	}
}

func TestActivity(t *testing.T) {
	feed := &fakeFeed{events: []events.Event{
		{Type: events.MemberCheckedIn, MemberID: "m-1"},
		{Type: events.PaymentRecorded, MemberID: "m-2"},
	}}
	router := newTestServer(t, feed, 10)

	w := serve(router, http.MethodGet, "/admin/activity")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(defaultActivityLimit), feed.asked)

	var got []events.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, events.MemberCheckedIn, got[0].Type)

	w = serve(router, http.MethodGet, "/admin/activity?limit=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), feed.asked)

	for _, bad := range []string{"0", "501", "ten"} {
		w = serve(router, http.MethodGet, "/admin/activity?limit="+bad)
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", bad)
	}
}

func TestActivity_Errors(t *testing.T) {
	router := newTestServer(t, nil, 10)
	assert.Equal(t, http.StatusServiceUnavailable, serve(router, http.MethodGet, "/admin/activity").Code)

	router = newTestServer(t, &fakeFeed{err: errors.New("connection refused")}, 10)
	assert.Equal(t, http.StatusInternalServerError, serve(router, http.MethodGet, "/admin/activity").Code)
}
