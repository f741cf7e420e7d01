package handler

import (
	"net/http"
	"time"

	"bulkup/internal/delivery/http/response"
	"bulkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// parseDayParam reads the optional "date" query parameter (YYYY-MM-DD),
// defaulting to the current day.
func parseDayParam(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return time.Now(), nil
	}

	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	}

	return day, nil
}

// parseEntryID reads the ":id" path parameter as a UUID.
func parseEntryID(c echo.Context) (uuid.UUID, error) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid entry id")
	}

	return entryID, nil
}

// FoodHandler handles food intake tracking requests
type FoodHandler struct {
	trackingUsecase usecase.TrackingUsecase
}

// NewFoodHandler creates a new food tracking handler
func NewFoodHandler(trackingUsecase usecase.TrackingUsecase) *FoodHandler {
	return &FoodHandler{
		trackingUsecase: trackingUsecase,
	}
}

// AddFoodEntry records a food intake for the authenticated user
func (h *FoodHandler) AddFoodEntry(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.AddFoodEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, err.Error())
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	entry, err := h.trackingUsecase.AddFoodEntry(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "food entry recorded", entry)
}

// ListFoodEntries returns the food entries of a single day
func (h *FoodHandler) ListFoodEntries(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	day, err := parseDayParam(c)
	if err != nil {
		return err
	}

	entries, err := h.trackingUsecase.ListFoodEntries(c.Request().Context(), userID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "food entries retrieved", entries)
}

// DeleteFoodEntry removes a single food entry owned by the user
func (h *FoodHandler) DeleteFoodEntry(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		return err
	}

	if err := h.trackingUsecase.DeleteFoodEntry(c.Request().Context(), userID, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "food entry deleted", nil)
}
