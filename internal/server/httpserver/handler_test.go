package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/logging"
	"github.com/dmitrijs2005/hexplay/internal/server/metrics"
	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/dmitrijs2005/hexplay/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hexplay/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeHealth struct{ err error }

func (f fakeHealth) Ping(context.Context) error { return f.err }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	manager := repomanager.NewMemoryRepositoryManager(nil)
	return NewHTTPServer("", nopLogger{}, services.NewUserService(manager), manager, time.Second)
}

func do(t *testing.T, s *HTTPServer, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeUser(t *testing.T, rec *httptest.ResponseRecorder) userResponse {
	t.Helper()
	var u userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	return u
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e.Error
}

func TestUsers_Lifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/v1/users", `{"name":"Ana","email":"Ana@Example.com","age":30}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeUser(t, rec)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.Equal(t, int64(1), created.Version)
	require.NotNil(t, created.Age)
	assert.Equal(t, 30, *created.Age)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = do(t, s, http.MethodGet, "/api/v1/users/by-token/"+created.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeUser(t, rec).ID)

	rec = do(t, s, http.MethodGet, "/api/v1/users/by-email/ANA@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, created.ID, decodeUser(t, rec).ID)

	rec = do(t, s, http.MethodPatch, "/api/v1/users/1", `{"version":1,"name":"Ana Maria","token":"ignored"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeUser(t, rec)
	assert.Equal(t, int64(2), updated.Version)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, created.Token, updated.Token)

	rec = do(t, s, http.MethodPatch, "/api/v1/users/1", `{"version":1,"name":"Stale"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "version conflict", decodeError(t, rec))

	rec = do(t, s, http.MethodGet, "/api/v1/users?start_id=0&page_size=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list listUsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Users, 1)

	rec = do(t, s, http.MethodDelete, "/api/v1/users/1?version=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ana Maria", decodeUser(t, rec).Name)

	rec = do(t, s, http.MethodGet, "/api/v1/users/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeError(t, rec))
}

func TestUsers_DuplicateEmail(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/v1/users", `{"name":"Ana","email":"ana@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/users", `{"name":"Bea","email":"ANA@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", decodeError(t, rec))
}

func TestUsers_BadRequests(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/users", `{"name":"Ana","email":"ana@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   string
	}{
		{"bad email", http.MethodPost, "/api/v1/users", `{"name":"X","email":"nope"}`, "email"},
		{"malformed json", http.MethodPost, "/api/v1/users", `{"name":`, "invalid payload"},
		{"non-numeric id", http.MethodGet, "/api/v1/users/abc", "", "id: must be an integer"},
		{"negative id", http.MethodGet, "/api/v1/users/-1", "", "id"},
		{"zero page size", http.MethodGet, "/api/v1/users?page_size=0", "", "page_size"},
		{"missing version", http.MethodPatch, "/api/v1/users/1", `{"name":"Y"}`, "version: is required"},
		{"email change", http.MethodPatch, "/api/v1/users/1", `{"version":1,"email":"b@example.com"}`, "email"},
		{"empty patch", http.MethodPatch, "/api/v1/users/1", `{"version":1}`, ""},
		{"delete without version", http.MethodDelete, "/api/v1/users/1", "", "version: is required"},
		{"bad token", http.MethodGet, "/api/v1/users/by-token/not-a-uuid", "", "token"},
		{"bad email lookup", http.MethodGet, "/api/v1/users/by-email/nope", "", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, decodeError(t, rec), tt.want)
		})
	}
}

func TestHealth(t *testing.T) {
	s := NewHTTPServer("", nopLogger{}, nil, fakeHealth{}, time.Second)
	rec := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	s = NewHTTPServer("", nopLogger{}, nil, fakeHealth{err: common.ErrConnectionFailure}, time.Second)
	rec = do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodGet, "/api/v1/users/42", "")

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hexplay_requests_total")
}

type failingUsers struct {
	services.Users
	err error
}

func (f failingUsers) Get(context.Context, int64) (*models.User, error) {
	return nil, f.err
}

func TestUnexpectedErrorIsNotLeaked(t *testing.T) {
	s := NewHTTPServer("", nopLogger{}, failingUsers{err: errors.New("pgx: connection refused to 10.0.0.3")}, nil, time.Second)

	rec := do(t, s, http.MethodGet, "/api/v1/users/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeError(t, rec))
}

func TestCanceledRequestIsClientClosed(t *testing.T) {
	s := NewHTTPServer("", nopLogger{}, failingUsers{err: context.Canceled}, nil, time.Second)
	counter := metrics.RequestsTotal.WithLabelValues("http", "GET /api/v1/users/:id", "canceled")
	before := testutil.ToFloat64(counter)

	rec := do(t, s, http.MethodGet, "/api/v1/users/1", "")
	assert.Equal(t, common.StatusClientClosedRequest, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestPanicIsObserved(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/boom", func(c echo.Context) error { panic("kaput") })
	counter := metrics.RequestsTotal.WithLabelValues("http", "GET /boom", "error")
	before := testutil.ToFloat64(counter)

	rec := do(t, s, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeError(t, rec))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
