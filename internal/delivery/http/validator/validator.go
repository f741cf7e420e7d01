package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// EchoValidator adapts go-playground/validator to echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a request validator for the HTTP server
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator
func (v *EchoValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
