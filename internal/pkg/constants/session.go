package constants

// Client storage keys. The session store keeps the same names the web client
// persists in local storage, so a session can be handed over either way.
const (
	StorageKeyAuthToken    = "troski_auth_token"
	StorageKeyUser         = "troski_user"
	StorageKeyRefreshToken = "troski_refresh_token"
)

// HeaderSessionID identifies the browser session on every request
const HeaderSessionID = "X-Session-ID"

// MockAuthToken is the bearer token handed out in mock mode
const MockAuthToken = "mock-jwt-token-for-development"

// Mock mode user ids, shared by the fabricated accounts and the notification fixtures
const (
	MockRiderID  = "mock-rider-1"
	MockDriverID = "mock-driver-1"
)
