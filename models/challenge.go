package models

import "time"

// Challenge represents a community initiative citizens can join and support
type Challenge struct {
	ID                 string                 `json:"id"`
	CreatorID          string                 `json:"creator_id,omitempty"`
	CreatorName        string                 `json:"creator_name,omitempty"`
	Title              string                 `json:"title"`
	Description        string                 `json:"description"`
	Category           string                 `json:"category"`
	Latitude           float64                `json:"latitude"`
	Longitude          float64                `json:"longitude"`
	County             string                 `json:"county,omitempty"`
	District           string                 `json:"district,omitempty"`
	NeededResources    map[string]interface{} `json:"needed_resources,omitempty"`
	UrgencyLevel       string                 `json:"urgency_level,omitempty"`
	DurationDays       int                    `json:"duration_days,omitempty"`
	ExpectedImpact     string                 `json:"expected_impact,omitempty"`
	Status             string                 `json:"status"`
	ProgressPercentage float64                `json:"progress_percentage"`
	MediaURLs          []string               `json:"media_urls,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          *time.Time             `json:"updated_at,omitempty"`
	ExpiresAt          *time.Time             `json:"expires_at,omitempty"`
	ParticipantsCount  int                    `json:"participants_count"`
	VolunteersCount    int                    `json:"volunteers_count"`
	DonorsCount        int                    `json:"donors_count"`
}

// ChallengeCreateRequest is the payload for /challenges/create
type ChallengeCreateRequest struct {
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Category        string                 `json:"category"`
	Latitude        float64                `json:"latitude"`
	Longitude       float64                `json:"longitude"`
	County          string                 `json:"county,omitempty"`
	District        string                 `json:"district,omitempty"`
	NeededResources map[string]interface{} `json:"needed_resources,omitempty"`
	UrgencyLevel    string                 `json:"urgency_level,omitempty"`
	DurationDays    int                    `json:"duration_days,omitempty"`
	ExpectedImpact  string                 `json:"expected_impact,omitempty"`
	MediaURLs       []string               `json:"media_urls,omitempty"`
}

// ChallengeListResponse wraps the challenge listing
type ChallengeListResponse struct {
	Challenges []Challenge `json:"challenges"`
	Total      int         `json:"total,omitempty"`
}

// ParticipationRequest joins a challenge in a given role
type ParticipationRequest struct {
	Role                string                 `json:"role"` // participant, volunteer or donor
	ContributionDetails map[string]interface{} `json:"contribution_details,omitempty"`
}

// ParticipationResponse confirms a join
type ParticipationResponse struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challenge_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}
