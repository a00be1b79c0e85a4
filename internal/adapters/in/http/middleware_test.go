package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedEcho(apiKey string) *echo.Echo {
	e := echo.New()
	e.Use(APIKeyAuth(apiKey))
	e.GET("/ping", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "pong")
	})
	return e
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	e := newProtectedEcho("secret")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(APIKeyHeader, "secret")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	e := newProtectedEcho("secret")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "API key")
}

func TestAPIKeyAuth_WrongKey(t *testing.T) {
	e := newProtectedEcho("secret")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(APIKeyHeader, "not-the-secret")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyAuth_EmptyConfiguredKeyDisablesCheck(t *testing.T) {
	e := newProtectedEcho("")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
