package handler

import (
	"net/http"

	"bulkup/internal/delivery/http/response"
	"bulkup/internal/domain/nutrition"
	"bulkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExerciseHandler handles the exercise catalog and exercise tracking requests
type ExerciseHandler struct {
	trackingUsecase usecase.TrackingUsecase
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(trackingUsecase usecase.TrackingUsecase) *ExerciseHandler {
	return &ExerciseHandler{
		trackingUsecase: trackingUsecase,
	}
}

// ListExerciseTypes returns the static exercise catalog, optionally filtered
// by category
func (h *ExerciseHandler) ListExerciseTypes(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return response.Success(c, http.StatusOK, "exercise types retrieved", nutrition.ExercisesByCategory(category))
	}

	return response.Success(c, http.StatusOK, "exercise types retrieved", nutrition.Exercises())
}

// GetExerciseType returns a single catalog entry by ID
func (h *ExerciseHandler) GetExerciseType(c echo.Context) error {
	exerciseType, ok := nutrition.LookupExercise(c.Param("id"))
	if !ok {
		return response.NotFound(c, "unknown exercise type")
	}

	return response.Success(c, http.StatusOK, "exercise type retrieved", exerciseType)
}

// AddExerciseEntry records an exercise for the authenticated user
func (h *ExerciseHandler) AddExerciseEntry(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.AddExerciseEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, err.Error())
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	entry, err := h.trackingUsecase.AddExerciseEntry(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "exercise entry recorded", entry)
}

// ListExerciseEntries returns the exercise entries of a single day
func (h *ExerciseHandler) ListExerciseEntries(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	day, err := parseDayParam(c)
	if err != nil {
		return err
	}

	entries, err := h.trackingUsecase.ListExerciseEntries(c.Request().Context(), userID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "exercise entries retrieved", entries)
}

// DeleteExerciseEntry removes a single exercise entry owned by the user
func (h *ExerciseHandler) DeleteExerciseEntry(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		return err
	}

	if err := h.trackingUsecase.DeleteExerciseEntry(c.Request().Context(), userID, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "exercise entry deleted", nil)
}
