package constants

// NSQ topics
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
	TopicDriverRated      = "driver.rated"
)
