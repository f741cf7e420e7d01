package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response defines the standard API response format
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error detail information
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Success returns a success response
func Success(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest returns a 400 error response
func BadRequest(c echo.Context, message, details string) error {
	return Error(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

// BindingError returns a request binding error response
func BindingError(c echo.Context, details string) error {
	return Error(c, http.StatusBadRequest, "BINDING_ERROR", "invalid request format", details)
}

// Unauthorized returns a 401 error response
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message, "")
}

// Forbidden returns a 403 error response
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, "FORBIDDEN", message, "")
}

// NotFound returns a 404 error response
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, "NOT_FOUND", message, "")
}

// Conflict returns a 409 error response
func Conflict(c echo.Context, message string) error {
	return Error(c, http.StatusConflict, "CONFLICT", message, "")
}

// InternalServerError returns a 500 error response
func InternalServerError(c echo.Context, details string) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", details)
}
