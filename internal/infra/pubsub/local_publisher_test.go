package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/constants"
	"foundmoney/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishSearchCompleted(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalPushPublisher(server.URL, newDiscardLogger())
	event := &service.SearchCompletedEvent{
		RequestID:      "req-1",
		UserID:         "user-1",
		TotalFound:     3,
		EstimatedValue: 412.5,
		CompletedAt:    time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishSearchCompleted(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, constants.EventTypeSearchCompleted, received.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "user-1", received.Message.Attributes[constants.AttrUserID])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.SearchCompletedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 3, decoded.TotalFound)
	assert.InDelta(t, 412.5, decoded.EstimatedValue, 0.001)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalPushPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishSearchCompleted(context.Background(), &service.SearchCompletedEvent{UserID: "u"})
	assert.Error(t, err)
}

func TestNewPublisher_Config(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "unset drops events", cfg: nil},
		{name: "empty provider drops events", cfg: &config.PubSubConfig{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topicId"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, newDiscardLogger())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NoError(t, publisher.PublishSearchCompleted(context.Background(), &service.SearchCompletedEvent{UserID: "u"}))
		})
	}
}
