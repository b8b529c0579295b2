package auth

import (
	"context"

	"github.com/troski/troski/internal/pkg/models"
)

// AuthUC defines the sign in flows of a browser session
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/troski/troski/services/auth AuthUC
type AuthUC interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	DriverSignup(ctx context.Context, req models.DriverSignupRequest) (*models.AuthResponse, error)
	VerifyAccount(ctx context.Context, req models.VerifyRequest) (*models.AuthResponse, error)
	ResendVerification(ctx context.Context, req models.ResendRequest) (*models.VerificationResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
}
