package handler

import (
	"net/http"

	"foundmoney/internal/delivery/api/middleware"
	"foundmoney/internal/delivery/api/response"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FormHandlerParams holds dependencies for FormHandler, injected by Fx.
type FormHandlerParams struct {
	fx.In

	FormUC usecase.FormUsecase
}

// FormHandler fills and renders claim forms.
type FormHandler struct {
	formUC usecase.FormUsecase
}

// NewFormHandler is the constructor for FormHandler
func NewFormHandler(params FormHandlerParams) *FormHandler {
	return &FormHandler{formUC: params.FormUC}
}

// AutoFill pre-fills a claim form from the caller's profile.
func (h *FormHandler) AutoFill(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.AutoFillInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid form input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.formUC.AutoFill(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GeneratePDF renders the claim document.
func (h *FormHandler) GeneratePDF(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.GeneratePDFInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.formUC.GeneratePDF(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetForm returns a stored claim form of the caller.
func (h *FormHandler) GetForm(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	formID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid form ID")
	}

	form, err := h.formUC.GetForm(c.Request().Context(), userID, formID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, form)
}
