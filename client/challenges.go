package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/QuaresmaHarygens/Talkam/models"
)

// ChallengeListParams filters /challenges/list around a point
type ChallengeListParams struct {
	Lat      float64
	Lng      float64
	RadiusKM float64
	Category string
	Status   string
}

func (p ChallengeListParams) query() url.Values {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(p.Lng, 'f', -1, 64))
	if p.RadiusKM > 0 {
		q.Set("radius_km", strconv.FormatFloat(p.RadiusKM, 'f', -1, 64))
	}
	setIfPresent(q, "category", p.Category)
	setIfPresent(q, "status", p.Status)
	return q
}

// CreateChallenge creates a community initiative
func (c *Client) CreateChallenge(ctx context.Context, req models.ChallengeCreateRequest) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := c.do(ctx, http.MethodPost, "/challenges/create", nil, req, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// ListChallenges lists challenges near a location
func (c *Client) ListChallenges(ctx context.Context, params ChallengeListParams) (*models.ChallengeListResponse, error) {
	var resp models.ChallengeListResponse
	if err := c.do(ctx, http.MethodGet, "/challenges/list", params.query(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetChallenge fetches one challenge by id
func (c *Client) GetChallenge(ctx context.Context, id string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := c.do(ctx, http.MethodGet, "/challenges/"+url.PathEscape(id), nil, nil, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// JoinChallenge joins a challenge as participant, volunteer or donor
func (c *Client) JoinChallenge(ctx context.Context, id string, req models.ParticipationRequest) (*models.ParticipationResponse, error) {
	var resp models.ParticipationResponse
	if err := c.do(ctx, http.MethodPost, "/challenges/"+url.PathEscape(id)+"/join", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
