package notification

import "errors"

var (
	// ErrNotInitialized is returned by a notification service that was not built for a role
	ErrNotInitialized = errors.New("notification service not initialized")
	// ErrInvalidRole is returned for roles other than rider and driver
	ErrInvalidRole = errors.New("invalid notification role")
	// ErrNotificationNotFound is returned when no notification has the requested id
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNoUser is returned when the context carries no signed in user
	ErrNoUser = errors.New("no signed in user")
)
