package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"deltasylva_site/logger/loggertest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestRequestLogger(t *testing.T) {
	log, logs := loggertest.New()

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/", entries[0].ContextMap()["uri"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.EqualValues(t, http.StatusNotFound, entries[1].ContextMap()["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}
