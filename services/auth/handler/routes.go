package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/middleware"
	"github.com/troski/troski/services/auth"
	httpHandler "github.com/troski/troski/services/auth/handler/http"
)

// Handler combines all handlers for the auth service
type Handler struct {
	authHTTP *httpHandler.AuthHandler
}

// NewHandler creates a new combined handler
func NewHandler(authUC auth.AuthUC, signInPath string) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(authUC, signInPath),
	}
}

// RegisterRoutes registers the auth routes. Credential endpoints are rate limited per IP.
func (h *Handler) RegisterRoutes(e *echo.Echo, requireUser echo.MiddlewareFunc) {
	authGroup := e.Group("/auth", middleware.AuthRateLimiter())
	authGroup.POST("/login", h.authHTTP.Login)
	authGroup.POST("/signup", h.authHTTP.Signup)
	authGroup.POST("/driver/signup", h.authHTTP.DriverSignup)
	authGroup.POST("/verify", h.authHTTP.VerifyAccount)
	authGroup.POST("/resend-verification", h.authHTTP.ResendVerification)
	authGroup.POST("/logout", h.authHTTP.Logout)

	e.GET("/auth/me", h.authHTTP.Me, requireUser)
}
