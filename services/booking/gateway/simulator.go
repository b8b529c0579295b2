package gateway

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/utils"
	"github.com/troski/troski/services/booking"
)

const (
	minFare        = 10.0
	fareSpread     = 20.0
	minTripMinutes = 5
	tripSpread     = 25
	vehicleType    = "standard"
)

var (
	estimateFailures = []string{
		"Unable to estimate fare at this time. Please try again.",
		"No drivers available in your area right now.",
		"Fare service is temporarily unavailable.",
		"We could not find a route between these locations.",
	}
	bookFailures = []string{
		"No drivers available at the moment. Please try again shortly.",
		"Your booking could not be completed. Please try again.",
		"All nearby drivers are busy. Please try again in a few minutes.",
		"Payment authorization failed. Please check your payment method.",
	}
	cancelFailures = []string{
		"Unable to cancel ride at this time. Please try again.",
		"Your driver has already arrived and the ride cannot be cancelled.",
		"Cancellation service is temporarily unavailable.",
	}
	rateFailures = []string{
		"Unable to submit rating. Please try again.",
		"Rating service is temporarily unavailable.",
	}

	driverNames = []string{"Kwame Mensah", "Ama Owusu", "Kofi Boateng", "Akosua Asante", "Yaw Darko", "Abena Osei"}
	vehicles    = []string{"Toyota Corolla", "Hyundai Elantra", "Kia Rio", "Honda Civic", "Toyota Vitz", "Nissan Almera"}
)

// Rand is the random source behind every simulated outcome
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// lockedRand makes a math/rand source safe for concurrent requests
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// NewRand returns a goroutine safe random source seeded with seed
func NewRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// Simulator fabricates fare estimates and bookings with fixed failure odds and latency
type Simulator struct {
	cfg   models.BookingConfig
	rand  Rand
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewSimulator creates a simulated booking gateway. A nil source is seeded from the clock.
func NewSimulator(cfg models.BookingConfig, r Rand) *Simulator {
	if r == nil {
		r = NewRand(time.Now().UnixNano())
	}
	if cfg.Currency == "" {
		cfg.Currency = "GHS"
	}
	return &Simulator{
		cfg:   cfg,
		rand:  r,
		sleep: sleepContext,
		now:   models.Now,
	}
}

// EstimateRide quotes a fare between the two locations
func (s *Simulator) EstimateRide(ctx context.Context, pickup, dropoff models.Location) (*models.FareEstimateResult, error) {
	if err := s.sleep(ctx, s.cfg.EstimateDelay); err != nil {
		return nil, err
	}
	if !s.roll(s.cfg.EstimateThreshold) {
		return nil, s.reject(estimateFailures)
	}

	minutes := minTripMinutes + s.rand.Intn(tripSpread)
	return &models.FareEstimateResult{
		Fare:                 s.fare(),
		Currency:             s.cfg.Currency,
		Distance:             utils.RoundTo(utils.CalculateDistance(pickup, dropoff), 2),
		Duration:             minutes,
		VehicleType:          vehicleType,
		PickupLocation:       pickup,
		DropoffLocation:      dropoff,
		EstimatedArrivalTime: s.now().Add(time.Duration(minutes) * time.Minute),
	}, nil
}

// BookRide confirms a ride and assigns a driver
func (s *Simulator) BookRide(ctx context.Context, req models.BookRequest) (*models.BookingResult, error) {
	if err := s.sleep(ctx, s.cfg.BookDelay); err != nil {
		return nil, err
	}
	if !s.roll(s.cfg.BookThreshold) {
		return nil, s.reject(bookFailures)
	}

	now := s.now()
	return &models.BookingResult{
		BookingID:        uuid.NewString(),
		Fare:             s.fare(),
		Driver:           s.driver(),
		Status:           models.BookingStatusConfirmed,
		PaymentMethod:    req.PaymentMethod,
		PickupLocation:   req.Pickup,
		DropoffLocation:  req.Dropoff,
		EstimatedArrival: 2 + s.rand.Intn(9),
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// CancelRide cancels a confirmed ride
func (s *Simulator) CancelRide(ctx context.Context, bookingID, reason string) error {
	if err := s.sleep(ctx, s.cfg.CancelDelay); err != nil {
		return err
	}
	if !s.roll(s.cfg.CancelThreshold) {
		return s.reject(cancelFailures)
	}
	return nil
}

// RateDriver records a rating for the driver of a ride
func (s *Simulator) RateDriver(ctx context.Context, bookingID string, rating int, comment string) error {
	if err := s.sleep(ctx, s.cfg.RateDelay); err != nil {
		return err
	}
	if !s.roll(s.cfg.RateThreshold) {
		return s.reject(rateFailures)
	}
	return nil
}

// roll succeeds when the draw lands above the failure threshold
func (s *Simulator) roll(threshold float64) bool {
	return s.rand.Float64() > threshold
}

func (s *Simulator) reject(messages []string) error {
	return &booking.RejectedError{Message: messages[s.rand.Intn(len(messages))]}
}

// fare is truncated to cents so its two decimal form stays below the upper bound
func (s *Simulator) fare() float64 {
	return math.Floor((minFare+s.rand.Float64()*fareSpread)*100) / 100
}

func (s *Simulator) driver() *models.Driver {
	return &models.Driver{
		ID:          uuid.NewString(),
		Name:        driverNames[s.rand.Intn(len(driverNames))],
		Vehicle:     vehicles[s.rand.Intn(len(vehicles))],
		PlateNumber: fmt.Sprintf("GR-%04d-%d", s.rand.Intn(10000), 20+s.rand.Intn(6)),
		Rating:      utils.RoundTo(4.0+float64(s.rand.Intn(11))/10, 1),
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
