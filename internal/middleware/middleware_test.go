package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, buf *bytes.Buffer) *server.Server {
	t.Helper()

	logger := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger: &logger,
	}
}

func newEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	mws := NewMiddlewares(s)
	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler
	e.Use(RequestID())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.RateLimit.Limit())
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	e := newEcho(testServer(t, &bytes.Buffer{}))
	var seen string
	e.GET("/ping", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_Reused(t *testing.T) {
	e := newEcho(testServer(t, &bytes.Buffer{}))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestContextEnhancer_LoggerCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(testServer(t, &buf))
	e.GET("/ping", func(c echo.Context) error {
		LoggerFromContext(c.Request().Context()).Info().Msg("inside")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), "inside")
}

func TestGlobalErrorHandler_NotFound(t *testing.T) {
	e := newEcho(testServer(t, &bytes.Buffer{}))
	e.GET("/users/:id", func(c echo.Context) error {
		return sqlerr.NotFound("users")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "User not found", body.Message)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestGlobalErrorHandler_UnknownRoute(t *testing.T) {
	e := newEcho(testServer(t, &bytes.Buffer{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestGlobalErrorHandler_InternalErrorHidden(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(testServer(t, &buf))
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("dial tcp 10.0.0.1:5432: connection refused")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestGlobalErrorHandler_HTTPErrorPassesThrough(t *testing.T) {
	e := newEcho(testServer(t, &bytes.Buffer{}))
	e.GET("/bad", func(c echo.Context) error {
		return errs.NewBadRequestError("Bad input", true, nil, []errs.FieldError{{Field: "limit", Error: "must be at least 1"}}, nil)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.True(t, body.Override)
	assert.Equal(t, []errs.FieldError{{Field: "limit", Error: "must be at least 1"}}, body.Errors)
}

func TestRateLimit(t *testing.T) {
	s := testServer(t, &bytes.Buffer{})
	s.Config.Server.RateLimit = 1

	e := newEcho(s)
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/status", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	e := newEcho(testServer(t, &bytes.Buffer{}))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for range 10 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRequestID_RejectsOversized(t *testing.T) {
	e := newEcho(testServer(t, &bytes.Buffer{}))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("a", maxRequestIDLength+1))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	got := rec.Header().Get(RequestIDHeader)
	assert.Len(t, got, 36)
}
