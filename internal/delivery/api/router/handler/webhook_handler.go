package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"foundmoney/internal/delivery/api/response"
	deliverycontext "foundmoney/internal/delivery/context"
	"foundmoney/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Logger    *slog.Logger
}

// WebhookHandler receives billing provider callbacks.
type WebhookHandler struct {
	webhookUC usecase.WebhookUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: params.WebhookUC,
		logger:    params.Logger,
	}
}

// Subscription applies a subscription lifecycle event. The body is either the
// provider envelope {"event": {...}} or the bare event.
func (h *WebhookHandler) Subscription(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Could not read request body")
	}

	event, err := decodeSubscriptionEvent(body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}
	if err := c.Validate(event); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.webhookUC.HandleSubscriptionEvent(c.Request().Context(), event)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !result.Handled {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Webhook event ignored",
			slog.String("type", event.Type),
		)
	}

	return response.Success(c, http.StatusOK, result)
}

func decodeSubscriptionEvent(body []byte) (*usecase.SubscriptionEvent, error) {
	var envelope usecase.SubscriptionWebhook
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Event != nil {
		return envelope.Event, nil
	}

	var event usecase.SubscriptionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, err
	}

	return &event, nil
}
