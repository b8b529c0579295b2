package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apiclient "github.com/troski/troski/internal/pkg/http"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/validator"
	"github.com/troski/troski/internal/utils"
	"github.com/troski/troski/services/auth"
)

// AuthHandler handles HTTP requests for the sign in flows
type AuthHandler struct {
	authUC     auth.AuthUC
	signInPath string
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC, signInPath string) *AuthHandler {
	return &AuthHandler{
		authUC:     authUC,
		signInPath: signInPath,
	}
}

// Login handles sign in requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid login request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	resp, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		return h.failure(c, err, "Failed to sign in")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", resp)
}

// Signup handles rider registration
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid signup request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	resp, err := h.authUC.Signup(c.Request().Context(), req)
	if err != nil {
		return h.failure(c, err, "Failed to create account")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Account created. Check your email for the verification code", resp)
}

// DriverSignup handles driver registration
func (h *AuthHandler) DriverSignup(c echo.Context) error {
	var req models.DriverSignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid driver signup request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	resp, err := h.authUC.DriverSignup(c.Request().Context(), req)
	if err != nil {
		return h.failure(c, err, "Failed to create driver account")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Driver account created. Check your email for the verification code", resp)
}

// VerifyAccount handles verification code submission
func (h *AuthHandler) VerifyAccount(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid verification request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	resp, err := h.authUC.VerifyAccount(c.Request().Context(), req)
	if err != nil {
		return h.failure(c, err, "Failed to verify account")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Account verified successfully", resp)
}

// ResendVerification sends a fresh code
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req models.ResendRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid resend request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	resp, err := h.authUC.ResendVerification(c.Request().Context(), req)
	if err != nil {
		return h.failure(c, err, "Failed to resend verification code")
	}
	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// Logout clears the session
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		return h.failure(c, err, "Failed to sign out")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed out successfully", nil)
}

// Me returns the signed in user
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.authUC.Me(c.Request().Context())
	if err != nil {
		return h.failure(c, err, "Failed to load user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

func (h *AuthHandler) failure(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCode):
		return utils.BadRequestResponse(c, "Verification code must be 6 digits")
	case errors.Is(err, auth.ErrNotSignedIn):
		return utils.UnauthorizedResponse(c, "Please sign in to continue", h.signInPath)
	}

	if apiErr, ok := apiclient.AsAPIError(err); ok {
		switch {
		case apiErr.Kind == apiclient.KindUnauthorized:
			return utils.UnauthorizedResponse(c, apiErr.Message, apiErr.Redirect)
		case apiErr.Status > 0:
			return utils.ErrorResponseHandler(c, apiErr.Status, apiErr.Message)
		default:
			return utils.ErrorResponseHandler(c, http.StatusBadGateway, apiErr.Message)
		}
	}

	logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
