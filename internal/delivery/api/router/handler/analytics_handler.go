package handler

import (
	"net/http"
	"time"

	"foundmoney/internal/delivery/api/middleware"
	"foundmoney/internal/delivery/api/response"
	"foundmoney/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
}

// AnalyticsHandler records client product events.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: params.AnalyticsUC}
}

// TrackRequest is either one event inline or a batch under "events".
type TrackRequest struct {
	Event      string                `json:"event" validate:"required_without=Events,max=100"`
	Properties map[string]any        `json:"properties,omitempty"`
	Timestamp  *time.Time            `json:"timestamp,omitempty"`
	Events     []*usecase.TrackEvent `json:"events" validate:"omitempty,dive,required"`
}

// TrackResponse reports how many events were stored.
type TrackResponse struct {
	Tracked int `json:"tracked"`
}

func (r *TrackRequest) events() []*usecase.TrackEvent {
	if len(r.Events) > 0 {
		return r.Events
	}

	return []*usecase.TrackEvent{{Name: r.Event, Properties: r.Properties, Timestamp: r.Timestamp}}
}

// Track stores one event or a batch.
func (h *AnalyticsHandler) Track(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req TrackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	count, err := h.analyticsUC.Track(c.Request().Context(), userID, req.events())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TrackResponse{Tracked: count})
}
