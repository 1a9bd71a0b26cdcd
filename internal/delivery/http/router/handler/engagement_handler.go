package handler

import (
	"log/slog"
	"net/http"

	"spotlight/internal/delivery/http/response"
	"spotlight/internal/domain/entity"
	"spotlight/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EngagementHandler absorbs fire-and-forget engagement pings.
type EngagementHandler struct {
	uc     usecase.EngagementUsecase
	logger *slog.Logger
}

// NewEngagementHandler is the constructor for EngagementHandler, injected by Fx.
func NewEngagementHandler(uc usecase.EngagementUsecase, logger *slog.Logger) *EngagementHandler {
	return &EngagementHandler{
		uc:     uc,
		logger: logger,
	}
}

// Record increments one engagement counter for the current day. The response
// is 202 regardless of whether the delta landed; clients never retry pings.
func (h *EngagementHandler) Record(c echo.Context) error {
	metric, err := entity.ParseMetric(c.Param("metric"))
	if err != nil {
		return response.BadRequest(c, "INVALID_METRIC", "Unknown engagement metric")
	}

	accepted := h.uc.IncrementMetric(c.Request().Context(), metric)

	return response.Success(c, http.StatusAccepted, map[string]bool{"accepted": accepted}, "")
}
