package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/models"
	"github.com/QuaresmaHarygens/Talkam/store"
)

// Challenges handles the community initiative views
type Challenges struct {
	API   *client.Client
	Store *store.Store
}

// ListHandler lists challenges near a location
func (c Challenges) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		config.ErrorStatus("lat is required", http.StatusBadRequest, w, err)
		return
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		config.ErrorStatus("lng is required", http.StatusBadRequest, w, err)
		return
	}
	params := client.ChallengeListParams{
		Lat:      lat,
		Lng:      lng,
		Category: q.Get("category"),
		Status:   q.Get("status"),
	}
	params.RadiusKM, _ = strconv.ParseFloat(q.Get("radius_km"), 64)

	resp, err := c.API.ListChallenges(r.Context(), params)
	if err != nil {
		upstreamError(w, "challenge listing failed", err)
		return
	}
	c.Store.SetChallenges(resp.Challenges)
	respondJSON(w, http.StatusOK, resp)
}

// CreateHandler creates a community initiative
func (c Challenges) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ChallengeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Title == "" || req.Description == "" {
		config.ErrorStatus("title and description are required", http.StatusBadRequest, w, nil)
		return
	}

	challenge, err := c.API.CreateChallenge(r.Context(), req)
	if err != nil {
		upstreamError(w, "challenge creation failed", err)
		return
	}
	c.Store.AddChallenge(*challenge)
	respondJSON(w, http.StatusCreated, challenge)
}

// GetHandler fetches one challenge
func (c Challenges) GetHandler(w http.ResponseWriter, r *http.Request) {
	challenge, err := c.API.GetChallenge(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		upstreamError(w, "failed to fetch challenge", err)
		return
	}
	respondJSON(w, http.StatusOK, challenge)
}

// JoinHandler joins a challenge as participant, volunteer or donor
func (c Challenges) JoinHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ParticipationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	switch req.Role {
	case "participant", "volunteer", "donor":
	default:
		config.ErrorStatus("role must be participant, volunteer or donor", http.StatusBadRequest, w, nil)
		return
	}

	resp, err := c.API.JoinChallenge(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		upstreamError(w, "failed to join challenge", err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
