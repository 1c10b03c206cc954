package context

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/surfspot/all", nil), rec), rec
}

func TestAttach(t *testing.T) {
	buf := &bytes.Buffer{}
	c, rec := newContext()

	Attach(c, "req-7", slog.New(slog.NewJSONHandler(buf, nil)))

	assert.Equal(t, "req-7", RequestID(c))
	assert.Equal(t, "req-7", rec.Header().Get(HeaderXRequestID))
	assert.Equal(t, "req-7", RequestIDFrom(c.Request().Context()))

	logger := LoggerFrom(c.Request().Context(), nil)
	require.NotNil(t, logger)
	logger.Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}

func TestRequestID_ReusesResponseHeader(t *testing.T) {
	c, _ := newContext()
	c.Response().Header().Set(HeaderXRequestID, "from-header")

	assert.Equal(t, "from-header", RequestID(c))
}

func TestRequestID_MintedOnceAndAnnounced(t *testing.T) {
	c, rec := newContext()

	id := RequestID(c)

	assert.Len(t, id, 36)
	assert.Equal(t, id, rec.Header().Get(HeaderXRequestID))
	assert.Equal(t, id, RequestID(c))
}

func TestLoggerFrom_Fallback(t *testing.T) {
	fallback := slog.Default()
	c, _ := newContext()

	assert.Same(t, fallback, LoggerFrom(c.Request().Context(), fallback))
	assert.Empty(t, RequestIDFrom(c.Request().Context()))
}
