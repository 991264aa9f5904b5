package handler

import (
	"net/http"

	"foundmoney/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
}

// HealthHandler serves the liveness check.
type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{healthUC: params.HealthUC}
}

// Check returns the health report unwrapped so load balancers can read it.
func (h *HealthHandler) Check(c echo.Context) error {
	report := h.healthUC.Check(c.Request().Context())
	if !report.Healthy() {
		return c.JSON(http.StatusServiceUnavailable, report)
	}

	return c.JSON(http.StatusOK, report)
}
