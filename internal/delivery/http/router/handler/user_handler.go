// Package handler contains the HTTP request handlers.
package handler

import (
	"net/http"

	"bulkup/internal/delivery/http/response"
	"bulkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler handles account and session requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Register handles new account registration
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, err.Error())
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.userUsecase.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "registration successful", output)
}

// Login handles credential-based login
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, err.Error())
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.userUsecase.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "login successful", output)
}

// Refresh exchanges a refresh token for a new token pair
func (h *UserHandler) Refresh(c echo.Context) error {
	var input usecase.RefreshInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, err.Error())
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.userUsecase.Refresh(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "token refreshed", output)
}

// HealthCheck reports service liveness
func (h *UserHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "ok", nil)
}
