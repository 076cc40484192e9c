package models

import "time"

// Report categories and severities accepted by the backend. The server is
// authoritative; these mirror its allowed sets so forms can be validated
// before any network call.
var (
	ReportCategories = []string{
		"social", "economic", "religious", "political",
		"health", "violence", "infrastructure", "security",
	}
	ReportSeverities = []string{"low", "medium", "high", "critical"}
)

// Report represents a citizen-submitted issue
type Report struct {
	ID                string          `json:"id"`
	ReportID          string          `json:"report_id,omitempty"` // public tracking id, RPT-YYYY-XXXXXX
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
	Summary           string          `json:"summary"`
	Details           string          `json:"details,omitempty"`
	Category          string          `json:"category"`
	Severity          string          `json:"severity"`
	Location          Location        `json:"location"`
	VerificationScore *float64        `json:"verification_score,omitempty"`
	AssignedAgency    string          `json:"assigned_agency,omitempty"`
	Media             []MediaRef      `json:"media"`
	Timeline          []TimelineEvent `json:"timeline,omitempty"`
	Anonymous         bool            `json:"anonymous,omitempty"`
}

// ReportSummary is the compact row shape returned by report search
type ReportSummary struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	County   string `json:"county,omitempty"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
}

// Summarize collapses a full report into its search-row shape
func (r Report) Summarize() ReportSummary {
	return ReportSummary{
		ID:       r.ID,
		Summary:  r.Summary,
		Category: r.Category,
		County:   r.Location.County,
		Severity: r.Severity,
		Status:   r.Status,
	}
}

// TimelineEvent is a single entry in a report's audit trail
type TimelineEvent struct {
	At     time.Time `json:"at"`
	Action string    `json:"action"`
	Actor  string    `json:"actor,omitempty"`
	Notes  string    `json:"notes,omitempty"`
}

// ReportCreateRequest is the payload for /reports/create
type ReportCreateRequest struct {
	Category         string     `json:"category"`
	Severity         string     `json:"severity"`
	Anonymous        bool       `json:"anonymous,omitempty"`
	Summary          string     `json:"summary"`
	Details          string     `json:"details,omitempty"`
	Media            []MediaRef `json:"media"`
	Location         Location   `json:"location"`
	WitnessCount     int        `json:"witness_count,omitempty"`
	OfflineReference string     `json:"offline_reference,omitempty"`
}

// SearchResponse is the paginated result set from /reports/search
type SearchResponse struct {
	Results    []ReportSummary `json:"results"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// VerificationRequest confirms or rejects a report
type VerificationRequest struct {
	Action       string `json:"action"`
	Comment      string `json:"comment,omitempty"`
	WitnessCount int    `json:"witness_count,omitempty"`
}

// VerificationResponse is the status echo after a verify action
type VerificationResponse struct {
	Status            string `json:"status"`
	VerificationScore string `json:"verification_score"`
}

// TrackingInfo is the public status view keyed by a report's tracking id
type TrackingInfo struct {
	ReportID  string     `json:"report_id"`
	Status    string     `json:"status"`
	Category  string     `json:"category"`
	Severity  string     `json:"severity"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// SyncRequest confirms offline-queued reports that have since been uploaded
type SyncRequest struct {
	OfflineReferences []string   `json:"offline_references"`
	Since             *time.Time `json:"since,omitempty"`
}

// SyncResponse reports which queued submissions the server has seen
type SyncResponse struct {
	SyncedReports []string `json:"synced_reports"`
	PendingCount  int      `json:"pending_count"`
}
