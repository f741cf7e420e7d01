package handler

import (
	"net/http"

	"bulkup/internal/delivery/http/middleware"
	"bulkup/internal/delivery/http/response"
	"bulkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	return userID, nil
}

// ProfileHandler handles physiological profile and daily target requests
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
	}
}

// GetProfile returns the stored profile together with the derived targets
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	output, err := h.profileUsecase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "profile retrieved", output)
}

// UpdateProfile creates or replaces the profile and returns fresh targets
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, err.Error())
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.profileUsecase.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "profile updated", output)
}

// GetTargets returns only the derived daily targets
func (h *ProfileHandler) GetTargets(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	targets, err := h.profileUsecase.GetTargets(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "targets retrieved", targets)
}
