// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"spotlight/internal/delivery/http/response"
	"spotlight/internal/domain/entity"
	"spotlight/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileResponse is the wire shape of the daily profile.
type ProfileResponse struct {
	Day     string                  `json:"day"`
	IsSet   bool                    `json:"isSet"`
	Content entity.ProfileContent   `json:"content"`
	Totals  entity.EngagementTotals `json:"totals"`
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCurrent returns the live profile with its latest aggregated totals.
func (h *ProfileHandler) GetCurrent(c echo.Context) error {
	profile, err := h.uc.CurrentProfile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "")
}

// SetContent replaces the live profile's editable content. Only the resolved
// winner of the auction that targeted today may call it.
func (h *ProfileHandler) SetContent(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var input usecase.SetContentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.uc.SetContent(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile content updated successfully")
}

func toProfileResponse(profile *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		Day:     profile.Day.String(),
		IsSet:   profile.IsSet,
		Content: profile.Content,
		Totals:  profile.Totals,
	}
}

// getUserID reads the authenticated UID the auth middleware stored on the
// context.
func getUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get("userID").(string)

	return userID, ok && userID != ""
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
