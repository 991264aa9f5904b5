package httpclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient() *Client {
	return New(time.Second, newDiscardLogger(), WithBackoff(time.Millisecond))
}

func TestClient_RetriesOnceOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	var dest struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, newTestClient().GetJSON(context.Background(), server.URL, nil, &dest))
	assert.True(t, dest.OK)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_GivesUpAfterSecondFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient().Do(context.Background(), http.MethodGet, server.URL, nil)
	require.Error(t, err)
	assert.False(t, IsPermanent(err))
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient().Do(context.Background(), http.MethodGet, server.URL, nil)
	require.Error(t, err)
	assert.True(t, IsPermanent(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RetriesTooManyRequests(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient().Do(context.Background(), http.MethodGet, server.URL, nil)
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_GetJSONEncodesQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var dest map[string]any
	params := url.Values{"state": {"CA"}, "last": {"O'Neil"}}
	require.NoError(t, newTestClient().GetJSON(context.Background(), server.URL, params, &dest))
	assert.Equal(t, "CA", gotQuery.Get("state"))
	assert.Equal(t, "O'Neil", gotQuery.Get("last"))
}
