package models

// AlertRequest broadcasts an alert to target counties over push and SMS
type AlertRequest struct {
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Severity    string   `json:"severity"` // info, warning or critical
	Counties    []string `json:"counties"`
	Channels    []string `json:"channels,omitempty"`
	SMSFallback []string `json:"sms_fallback,omitempty"`
}

// AlertResponse acknowledges a broadcast
type AlertResponse struct {
	Message string                 `json:"message"`
	Result  map[string]interface{} `json:"result,omitempty"`
}
