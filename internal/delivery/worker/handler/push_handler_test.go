package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	mockUC "foundmoney/internal/mocks/usecase"
	"foundmoney/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(notifier usecase.NotifierUsecase) *PushHandler {
	return &PushHandler{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		notifierSvc: notifier,
		validate:    idtoken.Validate,
	}
}

func pushBody(t *testing.T, data string, attrs map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attrs
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodedEvent(t *testing.T, event *service.SearchCompletedEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body string, header map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.SearchCompletedEvent{UserID: "u-1", TotalFound: 2, EstimatedValue: 300, RequestID: "req-from-event"}

	tests := []struct {
		name       string
		notifyErr  error
		wantStatus int
	}{
		{name: "delivered", wantStatus: http.StatusOK},
		{name: "retryable failure", notifyErr: usecase.NewRetryableError(errors.New("fcm 503")), wantStatus: http.StatusInternalServerError},
		{name: "permanent failure", notifyErr: errors.New("bad user id"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mockUC.NewMockNotifierUsecase(t)
			notifier.EXPECT().NotifySearchCompleted(mock.Anything, mock.MatchedBy(func(e *service.SearchCompletedEvent) bool {
				return e.UserID == "u-1" && e.TotalFound == 2
			})).Return(tt.notifyErr)

			rec := doPush(newTestPushHandler(notifier), pushBody(t, encodedEvent(t, event), nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_UndecodableDataIsAcked(t *testing.T) {
	notifier := mockUC.NewMockNotifierUsecase(t)

	rec := doPush(newTestPushHandler(notifier), pushBody(t, "!!not-base64", nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	notifier.AssertNotCalled(t, "NotifySearchCompleted", mock.Anything, mock.Anything)
}

func TestPushHandler_VerifiesTokenWhenAudienceSet(t *testing.T) {
	event := &service.SearchCompletedEvent{UserID: "u-1", TotalFound: 1}

	tests := []struct {
		name       string
		header     map[string]string
		issuer     string
		validErr   error
		wantStatus int
	}{
		{name: "missing token", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: map[string]string{"Authorization": "Bearer x"}, validErr: errors.New("bad sig"), wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: map[string]string{"Authorization": "Bearer x"}, issuer: "evil.example", wantStatus: http.StatusUnauthorized},
		{name: "google issuer", header: map[string]string{"Authorization": "Bearer x"}, issuer: "https://accounts.google.com", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mockUC.NewMockNotifierUsecase(t)
			notifier.EXPECT().NotifySearchCompleted(mock.Anything, mock.Anything).Return(nil).Maybe()

			h := newTestPushHandler(notifier)
			h.audience = "https://worker.example/push"
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.example/push", audience)
				if tt.validErr != nil {
					return nil, tt.validErr
				}

				return &idtoken.Payload{Issuer: tt.issuer, Claims: map[string]any{"email_verified": true}}, nil
			}

			rec := doPush(h, pushBody(t, encodedEvent(t, event), nil), tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	var msg PubSubMessage
	event := &service.SearchCompletedEvent{RequestID: "from-event"}

	assert.Equal(t, "from-event", extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", extractRequestID(context.Background(), &msg, event))
}
