package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiclient "github.com/troski/troski/internal/pkg/http"
	"github.com/troski/troski/internal/pkg/models"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *HTTPGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPGateway(apiclient.NewClient(apiclient.Config{BaseURL: server.URL}))
}

func TestHTTPGateway_Login(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ama@troski.app", body.Email)

		w.Write([]byte(`{"token":"t-1","refreshToken":"r-1","user":{"id":"u-1","email":"ama@troski.app","role":"rider"}}`))
	})

	resp, err := gw.Login(context.Background(), models.LoginRequest{Email: "ama@troski.app", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "t-1", resp.Token)
	assert.Equal(t, "r-1", resp.RefreshToken)
	assert.Equal(t, "u-1", resp.User.ID)
}

func TestHTTPGateway_SignupSendsCode(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/driver/signup", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "654321", body["verificationCode"])
		assert.Equal(t, "Kofi", body["firstName"])
		assert.Equal(t, "GR-1234-22", body["vehicle"].(map[string]interface{})["plateNumber"])

		w.Write([]byte(`{"token":"t-1","user":{"id":"u-2","role":"driver"}}`))
	})

	resp, err := gw.DriverSignup(context.Background(), models.DriverSignupRequest{
		SignupRequest: models.SignupRequest{FirstName: "Kofi", Email: "kofi@troski.app"},
		Vehicle:       models.Vehicle{PlateNumber: "GR-1234-22"},
	}, "654321")

	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, resp.User.Role)
}

func TestHTTPGateway_IncompleteResponse(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":""}`))
	})

	_, err := gw.VerifyAccount(context.Background(), models.VerifyRequest{Email: "ama@troski.app", Code: "123456"})

	assert.ErrorContains(t, err, "incomplete auth response")
}

func TestHTTPGateway_ServerError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/resend-verification", r.URL.Path)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Email is not registered"}`))
	})

	err := gw.ResendVerification(context.Background(), "nobody@troski.app", "123456")

	require.Error(t, err)
	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apiclient.KindValidation, apiErr.Kind)
	assert.Equal(t, "Email is not registered", apiErr.Message)
}

func TestHTTPGateway_Logout(t *testing.T) {
	called := false
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, gw.Logout(context.Background()))
	assert.True(t, called)
}
