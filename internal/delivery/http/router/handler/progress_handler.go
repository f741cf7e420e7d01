package handler

import (
	"net/http"

	"bulkup/internal/delivery/http/response"
	"bulkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProgressHandler handles daily progress report requests
type ProgressHandler struct {
	trackingUsecase usecase.TrackingUsecase
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(trackingUsecase usecase.TrackingUsecase) *ProgressHandler {
	return &ProgressHandler{
		trackingUsecase: trackingUsecase,
	}
}

// DailyProgress aggregates the day's entries against the user's targets
func (h *ProgressHandler) DailyProgress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	day, err := parseDayParam(c)
	if err != nil {
		return err
	}

	report, err := h.trackingUsecase.DailyProgress(c.Request().Context(), userID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "daily progress retrieved", report)
}
