package models

// User represents the current session identity
type User struct {
	ID       string   `json:"id,omitempty"`
	FullName string   `json:"full_name,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	IsGuest  bool     `json:"is_guest,omitempty"`
}

// RegisterRequest creates a new account
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Language string `json:"language,omitempty"`
}

// LoginRequest exchanges phone and password for tokens
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	DeviceID string `json:"device_id,omitempty"`
}

// AuthTokens is the response to login and register
type AuthTokens struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	ExpiresIn    int      `json:"expires_in,omitempty"`
	Roles        []string `json:"roles,omitempty"`
}

// AnonymousStartRequest begins a guest session keyed by a device hash
type AnonymousStartRequest struct {
	DeviceHash   string   `json:"device_hash"`
	County       string   `json:"county,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// AnonymousStartResponse carries the guest token and offline quota
type AnonymousStartResponse struct {
	Token             string `json:"token"`
	ExpiresIn         int    `json:"expires_in"`
	OfflineQueueLimit int    `json:"offline_queue_limit"`
}
