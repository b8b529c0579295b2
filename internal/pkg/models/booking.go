package models

import (
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// PaymentMethod identifies how the rider pays
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
)

// ActionResult is the envelope every booking operation resolves to.
// Failures carry a human readable message and a toast severity, never a Go error.
type ActionResult struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	ToastType ToastType   `json:"toastType"`
	Data      interface{} `json:"data,omitempty"`
}

// Succeeded builds a successful result
func Succeeded(message string, data interface{}) *ActionResult {
	return &ActionResult{
		Success:   true,
		Message:   message,
		ToastType: ToastSuccess,
		Data:      data,
	}
}

// Failed builds a failed result with the given toast severity
func Failed(message string, toastType ToastType) *ActionResult {
	return &ActionResult{
		Success:   false,
		Message:   message,
		ToastType: toastType,
	}
}

// FareEstimateResult describes a quoted ride
type FareEstimateResult struct {
	Fare                 float64   `json:"fare"`
	Currency             string    `json:"currency"`
	Distance             float64   `json:"distance"` // kilometers
	Duration             int       `json:"duration"` // minutes
	VehicleType          string    `json:"vehicleType"`
	PickupLocation       Location  `json:"pickupLocation"`
	DropoffLocation      Location  `json:"dropoffLocation"`
	EstimatedArrivalTime time.Time `json:"estimatedArrivalTime"`
}

// EstimateData is the payload of a successful estimate. EstimatedFare is
// formatted with two decimals and EstimatedTime is in whole minutes.
type EstimateData struct {
	EstimatedFare string             `json:"estimatedFare"`
	EstimatedTime int                `json:"estimatedTime"`
	Estimate      FareEstimateResult `json:"estimate"`
}

// Driver is the driver assigned to a booking
type Driver struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Vehicle     string  `json:"vehicle"`
	PlateNumber string  `json:"plateNumber"`
	Rating      float64 `json:"rating"`
	Phone       string  `json:"phone,omitempty"`
}

// BookingResult is a confirmed booking
type BookingResult struct {
	BookingID        string        `json:"bookingId"`
	RiderID          string        `json:"riderId,omitempty"`
	Fare             float64       `json:"fare"`
	Driver           *Driver       `json:"driver,omitempty"`
	Status           BookingStatus `json:"status"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PickupLocation   Location      `json:"pickupLocation"`
	DropoffLocation  Location      `json:"dropoffLocation"`
	EstimatedArrival int           `json:"estimatedArrival"` // minutes until pickup
	Rating           int           `json:"rating,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// EstimateRequest asks for a fare quote
type EstimateRequest struct {
	Pickup  Location `json:"pickup" validate:"required"`
	Dropoff Location `json:"dropoff" validate:"required"`
}

// BookRequest asks for a ride
type BookRequest struct {
	Pickup        Location      `json:"pickup" validate:"required"`
	Dropoff       Location      `json:"dropoff" validate:"required"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=cash card mobile_money"`
}

// RateRequest rates the driver of a booking
type RateRequest struct {
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment,omitempty"`
}

// CancelRequest cancels a booking
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// BookingEvent is published on booking state changes
type BookingEvent struct {
	BookingID     string        `json:"booking_id"`
	RiderID       string        `json:"rider_id,omitempty"`
	DriverID      string        `json:"driver_id,omitempty"`
	DriverName    string        `json:"driver_name,omitempty"`
	Status        BookingStatus `json:"status"`
	Fare          float64       `json:"fare"`
	PickupGeohash string        `json:"pickup_geohash,omitempty"`
	Pickup        string        `json:"pickup,omitempty"`
	Dropoff       string        `json:"dropoff,omitempty"`
	Rating        int           `json:"rating,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
