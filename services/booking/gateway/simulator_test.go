package gateway

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/booking"
)

// scriptedRand replays fixed draws, then falls back to zero
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0] % n
	r.ints = r.ints[1:]
	return i
}

func testConfig() models.BookingConfig {
	return models.BookingConfig{
		EstimateThreshold: 0.2,
		BookThreshold:     0.15,
		CancelThreshold:   0.1,
		RateThreshold:     0.05,
		Currency:          "GHS",
	}
}

func newTestSimulator(r Rand) *Simulator {
	s := NewSimulator(testConfig(), r)
	s.sleep = func(ctx context.Context, d time.Duration) error { return ctx.Err() }
	s.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	return s
}

var (
	accraMall = models.NewLocation("Accra Mall", "123 Main St, Accra", 5.6219, -0.1733)
	kotoka    = models.NewLocation("Kotoka Airport", "456 Market Ave, Accra", 5.6052, -0.1668)
)

func TestSimulator_EstimateRide_Success(t *testing.T) {
	// Arrange
	s := newTestSimulator(&scriptedRand{floats: []float64{0.5, 0.25}, ints: []int{7}})

	// Act
	estimate, err := s.EstimateRide(context.Background(), accraMall, kotoka)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 15.0, estimate.Fare)
	assert.Equal(t, 12, estimate.Duration)
	assert.Equal(t, "GHS", estimate.Currency)
	assert.Equal(t, "standard", estimate.VehicleType)
	assert.InDelta(t, 1.98, estimate.Distance, 0.05)
	assert.Equal(t, accraMall, estimate.PickupLocation)
	assert.Equal(t, kotoka, estimate.DropoffLocation)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 12, 0, 0, time.UTC), estimate.EstimatedArrivalTime)
}

func TestSimulator_EstimateRide_Failure(t *testing.T) {
	s := newTestSimulator(&scriptedRand{floats: []float64{0.2}, ints: []int{1}})

	estimate, err := s.EstimateRide(context.Background(), accraMall, kotoka)

	assert.Nil(t, estimate)
	var rejected *booking.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, estimateFailures[1], rejected.Message)
}

func TestSimulator_FareStaysBelowUpperBound(t *testing.T) {
	s := newTestSimulator(&scriptedRand{floats: []float64{0.9, 0.99999999}})

	estimate, err := s.EstimateRide(context.Background(), accraMall, kotoka)

	require.NoError(t, err)
	assert.Equal(t, "29.99", fmt.Sprintf("%.2f", estimate.Fare))
}

func TestSimulator_EstimateRanges(t *testing.T) {
	s := newTestSimulator(NewRand(42))

	for i := 0; i < 2000; i++ {
		estimate, err := s.EstimateRide(context.Background(), accraMall, kotoka)
		if err != nil {
			continue
		}
		fare, parseErr := strconv.ParseFloat(fmt.Sprintf("%.2f", estimate.Fare), 64)
		require.NoError(t, parseErr)
		assert.GreaterOrEqual(t, fare, 10.0)
		assert.Less(t, fare, 30.0)
		assert.GreaterOrEqual(t, estimate.Duration, 5)
		assert.Less(t, estimate.Duration, 30)
	}
}

func TestSimulator_BookRide_Success(t *testing.T) {
	s := newTestSimulator(&scriptedRand{floats: []float64{0.9, 0.5}, ints: []int{2, 3, 1234, 4, 8, 3}})
	req := models.BookRequest{Pickup: accraMall, Dropoff: kotoka, PaymentMethod: models.PaymentMethodMobileMoney}

	result, err := s.BookRide(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, result.BookingID)
	assert.Equal(t, models.BookingStatusConfirmed, result.Status)
	assert.Equal(t, models.PaymentMethodMobileMoney, result.PaymentMethod)
	assert.Equal(t, 20.0, result.Fare)
	require.NotNil(t, result.Driver)
	assert.Equal(t, "Kofi Boateng", result.Driver.Name)
	assert.Equal(t, "Honda Civic", result.Driver.Vehicle)
	assert.Equal(t, "GR-1234-24", result.Driver.PlateNumber)
	assert.Equal(t, 4.8, result.Driver.Rating)
	assert.Equal(t, 5, result.EstimatedArrival)
}

func TestSimulator_BookRide_SuccessRatioConverges(t *testing.T) {
	s := newTestSimulator(NewRand(7))
	req := models.BookRequest{Pickup: accraMall, Dropoff: kotoka, PaymentMethod: models.PaymentMethodCash}

	const trials = 20000
	successes := 0
	for i := 0; i < trials; i++ {
		if _, err := s.BookRide(context.Background(), req); err == nil {
			successes++
		}
	}

	ratio := float64(successes) / trials
	assert.InDelta(t, 0.85, ratio, 0.02)
}

func TestSimulator_CancelAndRateThresholds(t *testing.T) {
	tests := []struct {
		name    string
		draw    float64
		call    func(s *Simulator) error
		wantErr bool
	}{
		{name: "cancel succeeds above threshold", draw: 0.11, call: func(s *Simulator) error { return s.CancelRide(context.Background(), "b-1", "") }},
		{name: "cancel fails at threshold", draw: 0.1, call: func(s *Simulator) error { return s.CancelRide(context.Background(), "b-1", "") }, wantErr: true},
		{name: "rate succeeds above threshold", draw: 0.06, call: func(s *Simulator) error { return s.RateDriver(context.Background(), "b-1", 5, "") }},
		{name: "rate fails below threshold", draw: 0.01, call: func(s *Simulator) error { return s.RateDriver(context.Background(), "b-1", 5, "") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSimulator(&scriptedRand{floats: []float64{tt.draw}})

			err := tt.call(s)

			if tt.wantErr {
				var rejected *booking.RejectedError
				assert.True(t, errors.As(err, &rejected))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSimulator_ResolvesWithinDelay(t *testing.T) {
	cfg := testConfig()
	cfg.EstimateDelay = 40 * time.Millisecond
	cfg.BookDelay = 60 * time.Millisecond
	s := NewSimulator(cfg, NewRand(1))

	start := time.Now()
	_, _ = s.EstimateRide(context.Background(), accraMall, kotoka)
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
	assert.Less(t, elapsed, 40*time.Millisecond+500*time.Millisecond)

	start = time.Now()
	_, _ = s.BookRide(context.Background(), models.BookRequest{Pickup: accraMall, Dropoff: kotoka})
	elapsed = time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
	assert.Less(t, elapsed, 60*time.Millisecond+500*time.Millisecond)
}

func TestSimulator_CancelledContextStopsDelay(t *testing.T) {
	cfg := testConfig()
	cfg.BookDelay = time.Minute
	s := NewSimulator(cfg, NewRand(1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	result, err := s.BookRide(ctx, models.BookRequest{Pickup: accraMall, Dropoff: kotoka})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewRand_Concurrent(t *testing.T) {
	r := NewRand(3)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				f := r.Float64()
				if f < 0 || f >= 1 || math.IsNaN(f) {
					t.Errorf("unexpected draw %v", f)
				}
				_ = r.Intn(10)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
