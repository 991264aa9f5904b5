package handler

import (
	"net/http"

	"foundmoney/internal/delivery/api/middleware"
	"foundmoney/internal/delivery/api/response"
	"foundmoney/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmailHandlerParams holds dependencies for EmailHandler, injected by Fx.
type EmailHandlerParams struct {
	fx.In

	EmailUC usecase.EmailUsecase
}

// EmailHandler manages the mailbox connection.
type EmailHandler struct {
	emailUC usecase.EmailUsecase
}

// NewEmailHandler is the constructor for EmailHandler
func NewEmailHandler(params EmailHandlerParams) *EmailHandler {
	return &EmailHandler{emailUC: params.EmailUC}
}

// ConnectResponse carries the consent URL the client should open.
type ConnectResponse struct {
	AuthURL string `json:"auth_url"`
	Message string `json:"message"`
}

// Connect starts the OAuth consent flow.
func (h *EmailHandler) Connect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	authURL, err := h.emailUC.Connect(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ConnectResponse{
		AuthURL: authURL,
		Message: "Redirect user to the auth URL to connect email",
	})
}

// Callback finishes the consent flow and redirects back to the app. It is
// authenticated by the state parameter, not a bearer token.
func (h *EmailHandler) Callback(c echo.Context) error {
	target := h.emailUC.Callback(c.Request().Context(), &usecase.OAuthCallback{
		Code:      c.QueryParam("code"),
		State:     c.QueryParam("state"),
		Error:     c.QueryParam("error"),
		UserAgent: c.Request().UserAgent(),
	})

	return c.Redirect(http.StatusFound, target)
}

// Scan analyzes recent messages of the connected mailbox.
func (h *EmailHandler) Scan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.emailUC.Scan(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
