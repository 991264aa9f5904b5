package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithRequestScope(context.Background(), base, "req-42")
	ctx = WithLogAttrs(ctx, base, slog.String("user_id", "u-1"))
	GetLoggerOrDefault(ctx, nil).Info("hello")

	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Contains(t, buf.String(), "request_id=req-42")
	assert.Contains(t, buf.String(), "user_id=u-1")
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	c := e.NewContext(req, httptest.NewRecorder())
	assert.NotEmpty(t, GetRequestID(c), "minted when absent")

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))

	c.SetRequest(req.WithContext(WithRequestID(req.Context(), "from-ctx")))
	assert.Equal(t, "from-ctx", GetRequestID(c))
}
