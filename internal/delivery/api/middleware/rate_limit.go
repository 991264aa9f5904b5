package middleware

import (
	"log/slog"
	"math"
	"strconv"

	"foundmoney/internal/delivery/api/response"
	deliverycontext "foundmoney/internal/delivery/context"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
)

// RateLimitMiddleware spends one token per request from the caller's bucket.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates the rate limit middleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Limit must run after Authenticate on protected groups so buckets are keyed
// by user rather than by address.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		decision, err := m.limiter.Allow(ctx, callerKey(c))
		if err != nil {
			// Limiter store outages fail open.
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}

		header := c.Response().Header()
		if decision.Limit > 0 {
			header.Set(headerRateLimitLimit, strconv.Itoa(decision.Limit))
			header.Set(headerRateLimitRemaining, strconv.Itoa(decision.Remaining))
		}

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			header.Set(echo.HeaderRetryAfter, strconv.Itoa(seconds))

			return response.TooManyRequests(c, domainerrors.ErrRateLimited.ErrorCode(), domainerrors.ErrRateLimited.Message())
		}

		return next(c)
	}
}

func callerKey(c echo.Context) string {
	if userID, ok := GetUserID(c); ok {
		return "user:" + userID.String()
	}

	return "ip:" + c.RealIP()
}
