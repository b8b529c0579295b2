package gateway

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/utils"
)

// MockGateway fabricates accounts for development. Credentials and codes are never checked,
// and every account of a role shares that role's mock user id.
type MockGateway struct {
	mu       sync.Mutex
	accounts map[string]*models.User
	now      func() time.Time
}

// NewMockGateway creates a mock auth gateway
func NewMockGateway() *MockGateway {
	return &MockGateway{
		accounts: make(map[string]*models.User),
		now:      models.Now,
	}
}

// Login returns the account registered under the email, or fabricates one
func (g *MockGateway) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	user, ok := g.accounts[strings.ToLower(req.Email)]
	if !ok {
		role := req.Role
		if role == "" {
			role = models.RoleRider
		}
		user = g.fabricate(req.Email, nameFromEmail(req.Email), "", "", role)
		user.IsVerified = true
		g.accounts[strings.ToLower(req.Email)] = user
	}

	logger.DebugCtx(ctx, "Mock login", logger.String("email", utils.MaskEmail(req.Email)))
	return respond(user), nil
}

// Signup registers an unverified rider
func (g *MockGateway) Signup(ctx context.Context, req models.SignupRequest, code string) (*models.AuthResponse, error) {
	return g.register(req, models.RoleRider, nil), nil
}

// DriverSignup registers an unverified driver with their vehicle
func (g *MockGateway) DriverSignup(ctx context.Context, req models.DriverSignupRequest, code string) (*models.AuthResponse, error) {
	vehicle := req.Vehicle
	return g.register(req.SignupRequest, models.RoleDriver, &vehicle), nil
}

// VerifyAccount marks the account verified. Any well formed code is accepted.
func (g *MockGateway) VerifyAccount(ctx context.Context, req models.VerifyRequest) (*models.AuthResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	user, ok := g.accounts[strings.ToLower(req.Email)]
	if !ok {
		user = g.fabricate(req.Email, nameFromEmail(req.Email), "", "", models.RoleRider)
		g.accounts[strings.ToLower(req.Email)] = user
	}
	user.IsVerified = true
	return respond(user), nil
}

// ResendVerification has nothing to do upstream in mock mode
func (g *MockGateway) ResendVerification(ctx context.Context, email, code string) error {
	return nil
}

// Logout has nothing to revoke in mock mode
func (g *MockGateway) Logout(ctx context.Context) error {
	return nil
}

func (g *MockGateway) register(req models.SignupRequest, role models.Role, vehicle *models.Vehicle) *models.AuthResponse {
	g.mu.Lock()
	defer g.mu.Unlock()

	user := g.fabricate(req.Email, req.FirstName, req.LastName, req.Phone, role)
	user.DriverInfo = vehicle
	g.accounts[strings.ToLower(req.Email)] = user
	return respond(user)
}

func (g *MockGateway) fabricate(email, firstName, lastName, phone string, role models.Role) *models.User {
	id := constants.MockRiderID
	if role == models.RoleDriver {
		id = constants.MockDriverID
	}

	return &models.User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Role:      role,
		CreatedAt: g.now(),
	}
}

func respond(user *models.User) *models.AuthResponse {
	copied := *user
	return &models.AuthResponse{
		Token: constants.MockAuthToken,
		User:  &copied,
	}
}

func nameFromEmail(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	if local == "" {
		return "Troski"
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
