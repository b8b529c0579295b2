package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/troski/troski/internal/pkg/models"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "Ticket created", map[string]interface{}{"id": "t-1"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Ticket created", response.Message)
	assert.Equal(t, map[string]interface{}{"id": "t-1"}, response.Data)
}

func TestActionResponse_FailureIsStillOK(t *testing.T) {
	c, rec := newTestContext()

	err := ActionResponse(c, models.Failed("No drivers available in your area", models.ToastError))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "error", response["toastType"])
	assert.Equal(t, "No drivers available in your area", response["message"])
}

func TestErrorResponseHandler(t *testing.T) {
	tests := []struct {
		name       string
		write      func(c echo.Context) error
		statusCode int
		message    string
	}{
		{
			name:       "bad request",
			write:      func(c echo.Context) error { return BadRequestResponse(c, "Invalid request payload") },
			statusCode: http.StatusBadRequest,
			message:    "Invalid request payload",
		},
		{
			name:       "forbidden default",
			write:      func(c echo.Context) error { return ForbiddenResponse(c, "") },
			statusCode: http.StatusForbidden,
			message:    "Forbidden",
		},
		{
			name:       "not found default",
			write:      func(c echo.Context) error { return NotFoundResponse(c, "") },
			statusCode: http.StatusNotFound,
			message:    "Resource not found",
		},
		{
			name:       "internal default",
			write:      func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			statusCode: http.StatusInternalServerError,
			message:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			assert.NoError(t, tt.write(c))
			assert.Equal(t, tt.statusCode, rec.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.message, response.Error)
			assert.Equal(t, tt.statusCode, response.Code)
		})
	}
}

func TestUnauthorizedResponse_CarriesRedirect(t *testing.T) {
	c, rec := newTestContext()

	assert.NoError(t, UnauthorizedResponse(c, "", "/signin"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Unauthorized", response.Error)
	assert.Equal(t, "/signin", response.Redirect)
}
