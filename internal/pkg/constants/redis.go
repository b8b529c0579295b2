package constants

// Redis key formats
const (
	// Booking Service
	KeyBooking = "booking:%s" // Format: booking:{booking_id}

	// Notification Service
	KeyNotifications = "notifications:%s" // Format: notifications:{role}

	// Session store
	KeySession = "session:%s" // Format: session:{session_id}, hash of storage keys
)
