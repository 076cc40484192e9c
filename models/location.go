package models

// Location pins a report or challenge to a place in Liberia
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	County      string  `json:"county"`
	District    string  `json:"district,omitempty"`
	Description string  `json:"description,omitempty"`
}
