package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
	"github.com/troski/troski/internal/utils"
	"github.com/troski/troski/services/auth"
)

// Login signs the session in
func (uc *AuthUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	resp, err := uc.authGW.Login(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if err := uc.persist(ctx, resp); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User signed in",
		logger.String("user_id", resp.User.ID),
		logger.String("role", string(resp.User.Role)))
	return resp, nil
}

// Signup registers a rider, signs the session in and sends a verification code
func (uc *AuthUC) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return nil, err
	}

	resp, err := uc.authGW.Signup(ctx, req, code)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	return uc.registered(ctx, resp, code)
}

// DriverSignup registers a driver, signs the session in and sends a verification code
func (uc *AuthUC) DriverSignup(ctx context.Context, req models.DriverSignupRequest) (*models.AuthResponse, error) {
	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return nil, err
	}

	resp, err := uc.authGW.DriverSignup(ctx, req, code)
	if err != nil {
		return nil, fmt.Errorf("driver signup failed: %w", err)
	}
	return uc.registered(ctx, resp, code)
}

// VerifyAccount confirms the account with its code
func (uc *AuthUC) VerifyAccount(ctx context.Context, req models.VerifyRequest) (*models.AuthResponse, error) {
	if !utils.IsValidVerificationCode(req.Code) {
		return nil, auth.ErrInvalidCode
	}

	resp, err := uc.authGW.VerifyAccount(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("verification failed: %w", err)
	}
	if err := uc.persist(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ResendVerification issues a fresh code
func (uc *AuthUC) ResendVerification(ctx context.Context, req models.ResendRequest) (*models.VerificationResponse, error) {
	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return nil, err
	}

	if err := uc.authGW.ResendVerification(ctx, req.Email, code); err != nil {
		return nil, err
	}
	if err := uc.deliver(ctx, req.Email, code); err != nil {
		return nil, err
	}

	return &models.VerificationResponse{
		Email:   req.Email,
		Message: fmt.Sprintf("A new verification code was sent to %s", utils.MaskEmail(req.Email)),
	}, nil
}

// Logout clears the session. An upstream failure does not keep the session alive.
func (uc *AuthUC) Logout(ctx context.Context) error {
	if err := uc.authGW.Logout(ctx); err != nil {
		logger.WarnCtx(ctx, "Upstream logout failed", logger.Err(err))
	}
	if err := uc.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Me returns the user stored in the session
func (uc *AuthUC) Me(ctx context.Context) (*models.User, error) {
	raw, err := uc.store.Get(ctx, session.IDFromContext(ctx), constants.StorageKeyUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == "" {
		return nil, auth.ErrNotSignedIn
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}
	return &user, nil
}

func (uc *AuthUC) registered(ctx context.Context, resp *models.AuthResponse, code string) (*models.AuthResponse, error) {
	if err := uc.persist(ctx, resp); err != nil {
		return nil, err
	}
	if err := uc.deliver(ctx, resp.User.Email, code); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", resp.User.ID),
		logger.String("role", string(resp.User.Role)))
	return resp, nil
}

// persist stores the tokens and user under the client storage keys
func (uc *AuthUC) persist(ctx context.Context, resp *models.AuthResponse) error {
	if err := uc.tokens.SetTokens(ctx, resp.Token, resp.RefreshToken); err != nil {
		return fmt.Errorf("failed to store session tokens: %w", err)
	}

	data, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := uc.store.Set(ctx, session.IDFromContext(ctx), constants.StorageKeyUser, string(data)); err != nil {
		return fmt.Errorf("failed to store session user: %w", err)
	}
	return nil
}

func (uc *AuthUC) deliver(ctx context.Context, email, code string) error {
	if uc.codeSender == nil {
		logger.InfoCtx(ctx, "Verification code generated",
			logger.String("email", utils.MaskEmail(email)),
			logger.String("code", code))
		return nil
	}
	if err := uc.codeSender.SendVerificationCode(ctx, email, code); err != nil {
		return fmt.Errorf("failed to deliver verification code: %w", err)
	}
	return nil
}
