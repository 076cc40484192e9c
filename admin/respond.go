package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func upstreamError(w http.ResponseWriter, message string, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		config.ErrorStatus(message, apiErr.StatusCode, w, err)
		return
	}
	config.ErrorStatus(message, http.StatusBadGateway, w, err)
}
