package auth

import (
	"context"

	"github.com/troski/troski/internal/pkg/models"
)

// AuthGW issues sessions, either fabricated locally or from the upstream API
//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/troski/troski/services/auth AuthGW,CodeSender
type AuthGW interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req models.SignupRequest, code string) (*models.AuthResponse, error)
	DriverSignup(ctx context.Context, req models.DriverSignupRequest, code string) (*models.AuthResponse, error)
	VerifyAccount(ctx context.Context, req models.VerifyRequest) (*models.AuthResponse, error)
	ResendVerification(ctx context.Context, email, code string) error
	Logout(ctx context.Context) error
}

// CodeSender delivers verification codes
type CodeSender interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}
