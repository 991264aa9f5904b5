package handler

import (
	"net/http"
	"strings"

	"foundmoney/internal/delivery/api/middleware"
	"foundmoney/internal/delivery/api/response"
	"foundmoney/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
}

// SearchHandler exposes the discovery pipeline.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{searchUC: params.SearchUC}
}

// UnclaimedPropertyRequest optionally replaces the profile name for one search.
type UnclaimedPropertyRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
}

// SearchAll runs every source for the caller.
func (h *SearchHandler) SearchAll(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.searchUC.SearchAll(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// SearchClassActions runs the settlement catalog only.
func (h *SearchHandler) SearchClassActions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.searchUC.SearchClassActions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// SearchUnclaimedProperty runs the property registries only. An empty body
// searches with the profile name.
func (h *SearchHandler) SearchUnclaimedProperty(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UnclaimedPropertyRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
		}
		if err := c.Validate(&req); err != nil {
			return response.ValidationError(c, err)
		}
	}

	var override *usecase.NameOverride
	if strings.TrimSpace(req.FirstName) != "" || strings.TrimSpace(req.LastName) != "" {
		override = &usecase.NameOverride{
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
		}
	}

	result, err := h.searchUC.SearchUnclaimedProperty(c.Request().Context(), userID, override)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Jurisdictions lists the registries property searches can reach.
func (h *SearchHandler) Jurisdictions(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.searchUC.Jurisdictions(c.Request().Context()))
}
