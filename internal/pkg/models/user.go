package models

import (
	"time"
)

// User represents a Troski account (rider or driver)
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Phone      string    `json:"phone,omitempty"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	DriverInfo *Vehicle  `json:"driverInfo,omitempty"`
}

// FullName joins the user's names
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Vehicle is the vehicle registered by a driver
type Vehicle struct {
	LicenseNumber string `json:"licenseNumber"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          int    `json:"year,omitempty"`
	PlateNumber   string `json:"plateNumber"`
	Color         string `json:"color,omitempty"`
}

// LoginRequest represents a request to sign in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=rider driver"`
}

// SignupRequest registers a rider
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required,min=8"`
}

// DriverSignupRequest registers a driver with their vehicle
type DriverSignupRequest struct {
	SignupRequest
	Vehicle Vehicle `json:"vehicle" validate:"required"`
}

// VerifyRequest confirms an account with the emailed code
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// ResendRequest asks for a new verification code
type ResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RefreshRequest exchanges a refresh token for a new access token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	User         *User  `json:"user"`
}

// VerificationResponse reports a sent verification code
type VerificationResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}
