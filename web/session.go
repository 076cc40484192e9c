package web

import (
	"encoding/json"
	"net/http"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/models"
	"github.com/QuaresmaHarygens/Talkam/session"
	"github.com/QuaresmaHarygens/Talkam/store"
)

// Session handles login, registration and guest sessions
type Session struct {
	API     *client.Client
	Store   *store.Store
	DataDir string
}

// LoginHandler exchanges phone and password for a session
func (s Session) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Phone == "" || req.Password == "" {
		config.ErrorStatus("phone and password are required", http.StatusBadRequest, w, nil)
		return
	}

	tokens, err := s.API.Login(r.Context(), req)
	if err != nil {
		upstreamError(w, "login failed", err)
		return
	}

	s.Store.SetUser(models.User{
		ID:    session.Subject(tokens.AccessToken),
		Phone: req.Phone,
		Roles: tokens.Roles,
	})
	respondJSON(w, http.StatusOK, tokens)
}

// RegisterHandler creates an account and starts a session
func (s Session) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.FullName == "" || req.Password == "" {
		config.ErrorStatus("full_name and password are required", http.StatusBadRequest, w, nil)
		return
	}

	tokens, err := s.API.Register(r.Context(), req)
	if err != nil {
		upstreamError(w, "registration failed", err)
		return
	}

	s.Store.SetUser(models.User{
		ID:       session.Subject(tokens.AccessToken),
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Roles:    tokens.Roles,
	})
	respondJSON(w, http.StatusCreated, tokens)
}

// AnonymousHandler starts a guest session keyed by this machine's stable
// device hash
func (s Session) AnonymousHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		County string `json:"county"`
	}
	// body is optional for guest sessions
	_ = json.NewDecoder(r.Body).Decode(&req)

	deviceHash, err := session.DeviceHash(s.DataDir)
	if err != nil {
		config.ErrorStatus("failed to derive device hash", http.StatusInternalServerError, w, err)
		return
	}

	resp, err := s.API.AnonymousStart(r.Context(), models.AnonymousStartRequest{
		DeviceHash:   deviceHash,
		County:       req.County,
		Capabilities: []string{"offline-queue"},
	})
	if err != nil {
		upstreamError(w, "anonymous session failed", err)
		return
	}

	s.Store.SetUser(models.User{IsGuest: true})
	respondJSON(w, http.StatusOK, resp)
}

// LogoutHandler clears the persisted session
func (s Session) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.API.Logout(); err != nil {
		config.ErrorStatus("failed to clear session", http.StatusInternalServerError, w, err)
		return
	}
	s.Store.SetUser(models.User{})
	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// CurrentHandler reports the current session state without a round trip
func (s Session) CurrentHandler(w http.ResponseWriter, r *http.Request) {
	token := s.API.Token()
	if token == "" || session.Expired(token) {
		respondJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          s.Store.User(),
	})
}
