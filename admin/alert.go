package admin

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/models"
)

// Alerts handles community alert broadcasts
type Alerts struct {
	API *client.Client
}

var alertSeverities = map[string]bool{
	"info":     true,
	"warning":  true,
	"critical": true,
}

// BroadcastHandler pushes an alert to the selected counties. Severity,
// message and at least one county are required before the upstream is called.
func (al Alerts) BroadcastHandler(w http.ResponseWriter, r *http.Request) {
	var req models.AlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if !alertSeverities[req.Severity] {
		config.ErrorStatus("severity must be info, warning or critical", http.StatusBadRequest, w, nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		config.ErrorStatus("message is required", http.StatusBadRequest, w, nil)
		return
	}
	if len(req.Counties) == 0 {
		config.ErrorStatus("at least one county is required", http.StatusBadRequest, w, nil)
		return
	}

	resp, err := al.API.BroadcastAlert(r.Context(), req)
	if err != nil {
		upstreamError(w, "alert broadcast failed", err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
