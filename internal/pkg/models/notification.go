package models

import (
	"time"
)

// Role scopes notifications and dashboards
type Role string

const (
	RoleRider  Role = "rider"
	RoleDriver Role = "driver"
)

// Valid reports whether the role is known
func (r Role) Valid() bool {
	return r == RoleRider || r == RoleDriver
}

// NotificationType classifies a notification
type NotificationType string

const (
	NotificationRideRequest   NotificationType = "ride_request"
	NotificationRideAccepted  NotificationType = "ride_accepted"
	NotificationRideCancelled NotificationType = "ride_cancelled"
	NotificationRideCompleted NotificationType = "ride_completed"
	NotificationPayment       NotificationType = "payment"
	NotificationRating        NotificationType = "rating"
	NotificationPromotion     NotificationType = "promotion"
	NotificationSystem        NotificationType = "system"
)

// Notification is an in-app notification
type Notification struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"userId"`
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	IsRead    bool                   `json:"isRead"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	ExpiresAt *time.Time             `json:"expiresAt,omitempty"`
}

// CreateNotificationRequest adds a notification
type CreateNotificationRequest struct {
	UserID    string                 `json:"userId"`
	Type      NotificationType       `json:"type" validate:"required"`
	Title     string                 `json:"title" validate:"required"`
	Message   string                 `json:"message" validate:"required"`
	Data      map[string]interface{} `json:"data,omitempty"`
	ExpiresAt *time.Time             `json:"expiresAt,omitempty"`
}

// ToastType is the severity of a toast
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

// Toast is a transient, auto-dismissing UI message
type Toast struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Type      ToastType     `json:"type"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"createdAt"`
	Exiting   bool          `json:"exiting"`
}

// ToastEventKind describes a toast transition
type ToastEventKind string

const (
	ToastShown   ToastEventKind = "shown"
	ToastExiting ToastEventKind = "exiting"
	ToastRemoved ToastEventKind = "removed"
)

// ToastEvent is streamed to toast subscribers
type ToastEvent struct {
	Kind  ToastEventKind `json:"kind"`
	Toast Toast          `json:"toast"`
}
