package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiclient "github.com/troski/troski/internal/pkg/http"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/validator"
	"github.com/troski/troski/services/auth"
	"github.com/troski/troski/services/auth/mocks"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockAuthUC)
		wantStatus int
		wantBody   string
	}{
		{
			name: "signed in",
			body: `{"email":"ama@troski.app","password":"secret123"}`,
			setup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ama@troski.app", Password: "secret123"}).
					Return(&models.AuthResponse{Token: "t-1", User: &models.User{ID: "u-1"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"token":"t-1"`,
		},
		{
			name:       "invalid email",
			body:       `{"email":"not-an-email","password":"secret123"}`,
			setup:      func(uc *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown role",
			body:       `{"email":"ama@troski.app","password":"secret123","role":"admin"}`,
			setup:      func(uc *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "upstream rejects credentials",
			body: `{"email":"ama@troski.app","password":"wrong"}`,
			setup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, &apiclient.APIError{Kind: apiclient.KindUnauthorized, Status: 401, Message: apiclient.MessageUnauthorized, Redirect: "/signin"})
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"redirect":"/signin"`,
		},
		{
			name: "upstream unreachable",
			body: `{"email":"ama@troski.app","password":"secret123"}`,
			setup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, &apiclient.APIError{Kind: apiclient.KindNetwork, Message: apiclient.MessageNetwork})
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   apiclient.MessageNetwork,
		},
		{
			name: "session store failure",
			body: `{"email":"ama@troski.app","password":"secret123"}`,
			setup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockAuthUC(ctrl)
			tt.setup(mockUC)
			handler := NewAuthHandler(mockUC, "/signin")

			c, rec := newContext(http.MethodPost, "/auth/login", tt.body)

			require.NoError(t, handler.Login(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC, "/signin")

	mockUC.EXPECT().Signup(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{Token: "t-1", User: &models.User{ID: "u-1", Email: "ama@troski.app"}}, nil)

	c, rec := newContext(http.MethodPost, "/auth/signup",
		`{"firstName":"Ama","lastName":"Owusu","email":"ama@troski.app","password":"password1"}`)

	require.NoError(t, handler.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_SignupShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewAuthHandler(mocks.NewMockAuthUC(ctrl), "/signin")

	c, rec := newContext(http.MethodPost, "/auth/signup",
		`{"firstName":"Ama","lastName":"Owusu","email":"ama@troski.app","password":"short"}`)

	require.NoError(t, handler.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_DriverSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC, "/signin")

	mockUC.EXPECT().DriverSignup(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{Token: "t-1", User: &models.User{ID: "u-2", Role: models.RoleDriver}}, nil)

	c, rec := newContext(http.MethodPost, "/auth/driver/signup",
		`{"firstName":"Kofi","lastName":"Boateng","email":"kofi@troski.app","password":"password1",`+
			`"vehicle":{"make":"Toyota","model":"Corolla","plateNumber":"GR-1234-22"}}`)

	require.NoError(t, handler.DriverSignup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_VerifyAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC, "/signin")

	mockUC.EXPECT().VerifyAccount(gomock.Any(), models.VerifyRequest{Email: "ama@troski.app", Code: "123456"}).
		Return(&models.AuthResponse{Token: "t-1", User: &models.User{ID: "u-1", IsVerified: true}}, nil)

	c, rec := newContext(http.MethodPost, "/auth/verify", `{"email":"ama@troski.app","code":"123456"}`)
	require.NoError(t, handler.VerifyAccount(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/auth/verify", `{"email":"ama@troski.app","code":"12ab56"}`)
	require.NoError(t, handler.VerifyAccount(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_ResendVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC, "/signin")

	mockUC.EXPECT().ResendVerification(gomock.Any(), models.ResendRequest{Email: "ama@troski.app"}).
		Return(&models.VerificationResponse{Email: "ama@troski.app", Message: "A new verification code was sent to am*@troski.app"}, nil)

	c, rec := newContext(http.MethodPost, "/auth/resend-verification", `{"email":"ama@troski.app"}`)

	require.NoError(t, handler.ResendVerification(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "am*@troski.app")
}

func TestAuthHandler_LogoutAndMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC, "/signin")

	mockUC.EXPECT().Logout(gomock.Any()).Return(nil)
	mockUC.EXPECT().Me(gomock.Any()).Return(nil, auth.ErrNotSignedIn)

	c, rec := newContext(http.MethodPost, "/auth/logout", "")
	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/auth/me", "")
	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/signin"`)
}
