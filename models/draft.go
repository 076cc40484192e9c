package models

// DraftFile is a media attachment buffered locally with a draft
type DraftFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Data []byte `json:"data"`
}

// DraftData holds the partial report fields captured in a draft
type DraftData struct {
	Category     string      `json:"category,omitempty"`
	Severity     string      `json:"severity,omitempty"`
	Summary      string      `json:"summary,omitempty"`
	Details      string      `json:"details,omitempty"`
	Anonymous    bool        `json:"anonymous,omitempty"`
	County       string      `json:"county,omitempty"`
	District     string      `json:"district,omitempty"`
	Latitude     float64     `json:"latitude,omitempty"`
	Longitude    float64     `json:"longitude,omitempty"`
	WitnessCount int         `json:"witness_count,omitempty"`
	Files        []DraftFile `json:"files,omitempty"`
}

// Draft is a locally persisted, not-yet-submitted report. OfflineReference
// is the idempotency key sent as offline_reference when the draft is
// eventually submitted, so a retried sync cannot create the same report
// twice server-side.
type Draft struct {
	ID               uint64    `json:"id"`
	Timestamp        int64     `json:"timestamp"` // unix milliseconds at capture
	OfflineReference string    `json:"offline_reference"`
	Data             DraftData `json:"data"`
}
