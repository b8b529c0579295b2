package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/troski/troski/internal/pkg/models"
)

// APIClient is the subset of the upstream client the gateway needs
type APIClient interface {
	Post(ctx context.Context, path string, body, out interface{}) error
}

// HTTPGateway forwards ride operations to the upstream REST API
type HTTPGateway struct {
	client APIClient
}

// NewHTTPGateway creates a live booking gateway
func NewHTTPGateway(client APIClient) *HTTPGateway {
	return &HTTPGateway{client: client}
}

type estimateRequest struct {
	Pickup  models.Location `json:"pickup"`
	Dropoff models.Location `json:"dropoff"`
}

type cancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

type rateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// EstimateRide asks the API for a fare quote
func (g *HTTPGateway) EstimateRide(ctx context.Context, pickup, dropoff models.Location) (*models.FareEstimateResult, error) {
	var estimate models.FareEstimateResult
	if err := g.client.Post(ctx, "/bookings/estimate", estimateRequest{Pickup: pickup, Dropoff: dropoff}, &estimate); err != nil {
		return nil, fmt.Errorf("failed to estimate ride: %w", err)
	}
	return &estimate, nil
}

// BookRide creates a booking upstream
func (g *HTTPGateway) BookRide(ctx context.Context, req models.BookRequest) (*models.BookingResult, error) {
	var result models.BookingResult
	if err := g.client.Post(ctx, "/bookings", req, &result); err != nil {
		return nil, fmt.Errorf("failed to book ride: %w", err)
	}
	return &result, nil
}

// CancelRide cancels the ride upstream
func (g *HTTPGateway) CancelRide(ctx context.Context, bookingID, reason string) error {
	path := fmt.Sprintf("/rides/%s/cancel", url.PathEscape(bookingID))
	if err := g.client.Post(ctx, path, cancelRequest{Reason: reason}, nil); err != nil {
		return fmt.Errorf("failed to cancel ride: %w", err)
	}
	return nil
}

// RateDriver submits the rating upstream
func (g *HTTPGateway) RateDriver(ctx context.Context, bookingID string, rating int, comment string) error {
	path := fmt.Sprintf("/rides/%s/rate", url.PathEscape(bookingID))
	if err := g.client.Post(ctx, path, rateRequest{Rating: rating, Comment: comment}, nil); err != nil {
		return fmt.Errorf("failed to rate driver: %w", err)
	}
	return nil
}
