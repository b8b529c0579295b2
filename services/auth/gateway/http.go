package gateway

import (
	"context"
	"fmt"

	"github.com/troski/troski/internal/pkg/models"
)

// APIClient is the subset of the upstream client the gateway needs
type APIClient interface {
	Post(ctx context.Context, path string, body, out interface{}) error
}

// HTTPGateway forwards the auth flows to the upstream REST API
type HTTPGateway struct {
	client APIClient
}

// NewHTTPGateway creates a live auth gateway
func NewHTTPGateway(client APIClient) *HTTPGateway {
	return &HTTPGateway{client: client}
}

type signupRequest struct {
	models.SignupRequest
	VerificationCode string `json:"verificationCode"`
}

type driverSignupRequest struct {
	models.DriverSignupRequest
	VerificationCode string `json:"verificationCode"`
}

type resendRequest struct {
	Email            string `json:"email"`
	VerificationCode string `json:"verificationCode"`
}

// Login signs in upstream
func (g *HTTPGateway) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return g.authenticate(ctx, "/auth/login", req)
}

// Signup registers a rider upstream along with the code mailed to them
func (g *HTTPGateway) Signup(ctx context.Context, req models.SignupRequest, code string) (*models.AuthResponse, error) {
	return g.authenticate(ctx, "/auth/signup", signupRequest{SignupRequest: req, VerificationCode: code})
}

// DriverSignup registers a driver upstream along with the code mailed to them
func (g *HTTPGateway) DriverSignup(ctx context.Context, req models.DriverSignupRequest, code string) (*models.AuthResponse, error) {
	return g.authenticate(ctx, "/auth/driver/signup", driverSignupRequest{DriverSignupRequest: req, VerificationCode: code})
}

// VerifyAccount confirms the code upstream
func (g *HTTPGateway) VerifyAccount(ctx context.Context, req models.VerifyRequest) (*models.AuthResponse, error) {
	return g.authenticate(ctx, "/auth/verify", req)
}

// ResendVerification replaces the pending code upstream
func (g *HTTPGateway) ResendVerification(ctx context.Context, email, code string) error {
	if err := g.client.Post(ctx, "/auth/resend-verification", resendRequest{Email: email, VerificationCode: code}, nil); err != nil {
		return fmt.Errorf("failed to resend verification: %w", err)
	}
	return nil
}

// Logout revokes the session's tokens upstream
func (g *HTTPGateway) Logout(ctx context.Context) error {
	if err := g.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

func (g *HTTPGateway) authenticate(ctx context.Context, path string, body interface{}) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := g.client.Post(ctx, path, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", path, err)
	}
	if resp.Token == "" || resp.User == nil {
		return nil, fmt.Errorf("incomplete auth response from %s", path)
	}
	return &resp, nil
}
