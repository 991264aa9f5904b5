package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"foundmoney/config"
	deliverycontext "foundmoney/internal/delivery/context"
	"foundmoney/internal/domain/constants"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	"foundmoney/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a push OIDC token against the expected audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub pushes into push notifications.
type PushHandler struct {
	audience    string
	validate    TokenValidator
	logger      *slog.Logger
	notifierSvc usecase.NotifierUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	NotifierSvc usecase.NotifierUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Tokens are verified only
// when a push audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:    audience,
		validate:    idtoken.Validate,
		logger:      params.Logger,
		notifierSvc: params.NotifierSvc,
	}
}

// HandlePush acknowledges with 200 unless the failure is retryable, in which
// case 500 makes Pub/Sub redeliver.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeSearchEvent(pushMsg.Message.Data)
	if err != nil {
		// Redelivering a malformed payload cannot succeed.
		h.logger.Error("[Worker] Dropping undecodable message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	ctx = deliverycontext.WithRequestScope(ctx, h.logger, requestID)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	reqLogger.Info("[Worker] Processing search completed event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("user_id", event.UserID),
		slog.Int("total_found", event.TotalFound),
	)

	if err := h.notifierSvc.NotifySearchCompleted(ctx, event); err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to notify",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func decodeSearchEvent(data string) (*service.SearchCompletedEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.SearchCompletedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "parse search completed event")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event payload, then
// the X-Request-Id of the push request itself.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.SearchCompletedEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}

	return deliverycontext.GetRequestIDFromContext(ctx)
}

func (h *PushHandler) verifyToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := h.validate(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
