package handler

import (
	"net/http"
	"time"

	"foundmoney/config"
	"foundmoney/internal/delivery/api/middleware"
	"foundmoney/internal/delivery/api/response"
	"foundmoney/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	TokenSvc service.TokenService
	Config   *config.Config
}

// TestHandler serves development endpoints. Sign-in lives with the identity
// provider, so locally tokens are minted here.
type TestHandler struct {
	tokenSvc service.TokenService
	tokenTTL time.Duration
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	ttl := 24 * time.Hour
	if params.Config.TestRoutes != nil && params.Config.TestRoutes.TokenTTL > 0 {
		ttl = params.Config.TestRoutes.TokenTTL
	}

	return &TestHandler{tokenSvc: params.TokenSvc, tokenTTL: ttl}
}

// IssueTokenRequest names the user to mint a token for. Empty picks a random one.
type IssueTokenRequest struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
}

// IssueTokenResponse carries the bearer token.
type IssueTokenResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	AccessToken string    `json:"access_token"`
	ExpiresIn   int       `json:"expires_in"`
}

// IssueToken mints an access token for local testing.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	userID := uuid.New()
	if req.UserID != "" {
		userID = uuid.MustParse(req.UserID)
	}

	token, err := h.tokenSvc.IssueToken(userID, h.tokenTTL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, IssueTokenResponse{
		UserID:      userID,
		AccessToken: token,
		ExpiresIn:   int(h.tokenTTL.Seconds()),
	})
}

// TestAuthMiddleware echoes the authenticated caller.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"status":  "authenticated",
	})
}
