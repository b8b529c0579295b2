package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	EventToast        = "toast"
	EventToastDismiss = "toast.dismiss"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)
