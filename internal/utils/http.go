package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Code     int    `json:"code,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ActionResponse writes a simulated outcome. Simulated failures are still
// well-formed answers, so they are sent with 200 and success=false.
func ActionResponse(c echo.Context, result *models.ActionResult) error {
	return c.JSON(http.StatusOK, result)
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 and tells the client where to sign in again
func UnauthorizedResponse(c echo.Context, errorMessage, redirect string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Success:  false,
		Error:    errorMessage,
		Code:     http.StatusUnauthorized,
		Redirect: redirect,
	})
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
