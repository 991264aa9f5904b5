package middleware

import (
	"log/slog"
	"strings"

	"foundmoney/internal/delivery/api/response"
	deliverycontext "foundmoney/internal/delivery/context"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	bearerPrefix     = "Bearer "
)

// AuthMiddleware validates bearer tokens and exposes the caller's user ID.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected bearer token", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		c.Set(contextKeyUserID, claims.UserID)

		ctx := deliverycontext.WithLogAttrs(c.Request().Context(), m.logger, slog.String("user_id", claims.UserID.String()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
