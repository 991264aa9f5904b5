package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"strings"

	"foundmoney/config"
	"foundmoney/internal/delivery/api/response"
	deliverycontext "foundmoney/internal/delivery/context"
	domainerrors "foundmoney/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Signature headers accepted on subscription webhooks.
const (
	HeaderSignature           = "X-Signature"
	HeaderRevenueCatSignature = "X-RevenueCat-Signature"
)

// WebhookSignatureMiddleware authenticates webhook bodies with a shared secret.
type WebhookSignatureMiddleware struct {
	secret []byte
	logger *slog.Logger
}

// NewWebhookSignatureMiddleware reads the shared secret from configuration.
// Without one every webhook is rejected.
func NewWebhookSignatureMiddleware(cfg *config.Config, logger *slog.Logger) *WebhookSignatureMiddleware {
	var secret []byte
	if cfg.Webhook != nil {
		secret = []byte(cfg.Webhook.Secret)
	}

	return &WebhookSignatureMiddleware{secret: secret, logger: logger}
}

// Verify checks the hex HMAC-SHA256 of the raw body before any parsing and
// restores the body for the handler.
func (m *WebhookSignatureMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

		signature := req.Header.Get(HeaderSignature)
		if signature == "" {
			signature = req.Header.Get(HeaderRevenueCatSignature)
		}
		if signature == "" || len(m.secret) == 0 {
			logger.Warn("Webhook without signature or secret")

			return m.reject(c)
		}

		body, err := io.ReadAll(req.Body)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Could not read request body")
		}
		_ = req.Body.Close()

		if !ValidSignature(m.secret, body, signature) {
			logger.Warn("Webhook signature mismatch")

			return m.reject(c)
		}

		req.Body = io.NopCloser(bytes.NewReader(body))

		return next(c)
	}
}

func (m *WebhookSignatureMiddleware) reject(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrInvalidSignature.ErrorCode(), domainerrors.ErrInvalidSignature.Message())
}

// ValidSignature compares the hex signature with the HMAC of body in constant time.
func ValidSignature(secret, body []byte, signature string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(body)

	return hmac.Equal(got, mac.Sum(nil))
}
