package models

// ErrorDetail is the JSON error body shape returned by the backend
type ErrorDetail struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}
