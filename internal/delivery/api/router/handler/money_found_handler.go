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

// MoneyFoundHandlerParams holds dependencies for MoneyFoundHandler, injected by Fx.
type MoneyFoundHandlerParams struct {
	fx.In

	MoneyFoundUC usecase.MoneyFoundUsecase
}

// MoneyFoundHandler exposes the caller's persisted opportunities.
type MoneyFoundHandler struct {
	moneyFoundUC usecase.MoneyFoundUsecase
}

// NewMoneyFoundHandler is the constructor for MoneyFoundHandler
func NewMoneyFoundHandler(params MoneyFoundHandlerParams) *MoneyFoundHandler {
	return &MoneyFoundHandler{moneyFoundUC: params.MoneyFoundUC}
}

// List returns one page of history, newest first.
func (h *MoneyFoundHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var query usecase.MoneyFoundQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	records, err := h.moneyFoundUC.List(c.Request().Context(), userID, &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// UpdateStatus moves a record forward to claimed or received.
func (h *MoneyFoundHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid record ID")
	}

	var req usecase.StatusChange
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	record, err := h.moneyFoundUC.UpdateStatus(c.Request().Context(), userID, recordID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}
