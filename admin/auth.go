package admin

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/models"
)

// Auth handles operator login
type Auth struct {
	API *client.Client
}

// LoginHandler authenticates against the upstream API, then issues a
// gateway session token for the dashboard routes. The upstream access token
// is persisted by the client's token store and reused for every proxied
// call.
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Phone == "" || req.Password == "" {
		config.ErrorStatus("phone and password are required", http.StatusBadRequest, w, nil)
		return
	}

	tokens, err := a.API.Login(r.Context(), req)
	if err != nil {
		upstreamError(w, "login failed", err)
		return
	}

	sessionToken := uuid.New().String()
	GrantSession(sessionToken, req.Phone, r)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": sessionToken,
		"roles": tokens.Roles,
	})
}
