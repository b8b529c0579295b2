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

func TestHTTPGateway_EstimateRide(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/estimate", r.URL.Path)

		var body estimateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Accra Mall", body.Pickup.Name)

		w.Write([]byte(`{"fare":18.5,"currency":"GHS","distance":2.1,"duration":9,"vehicleType":"standard"}`))
	})

	estimate, err := gw.EstimateRide(context.Background(), accraMall, kotoka)

	require.NoError(t, err)
	assert.Equal(t, 18.5, estimate.Fare)
	assert.Equal(t, 9, estimate.Duration)
}

func TestHTTPGateway_BookRide(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings", r.URL.Path)
		w.Write([]byte(`{"bookingId":"b-42","fare":21,"status":"confirmed","paymentMethod":"card"}`))
	})

	result, err := gw.BookRide(context.Background(), models.BookRequest{Pickup: accraMall, Dropoff: kotoka, PaymentMethod: models.PaymentMethodCard})

	require.NoError(t, err)
	assert.Equal(t, "b-42", result.BookingID)
	assert.Equal(t, models.BookingStatusConfirmed, result.Status)
}

func TestHTTPGateway_CancelAndRate(t *testing.T) {
	var paths []string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, gw.CancelRide(context.Background(), "b-42", "changed plans"))
	require.NoError(t, gw.RateDriver(context.Background(), "b-42", 5, "smooth ride"))

	assert.Equal(t, []string{"/rides/b-42/cancel", "/rides/b-42/rate"}, paths)
}

func TestHTTPGateway_UpstreamError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Pickup is outside the service area"}`))
	})

	_, err := gw.EstimateRide(context.Background(), accraMall, kotoka)

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apiclient.KindValidation, apiErr.Kind)
	assert.Equal(t, "Pickup is outside the service area", apiErr.Message)
}
