package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyRequestID is the echo context key holding the request id
const ContextKeyRequestID = "request_id"

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(ContextKeyRequestID, requestID)

			return next(c)
		}
	}
}
