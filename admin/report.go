package admin

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/models"
)

// Reports handles the admin report views
type Reports struct {
	API *client.Client
}

// ListHandler searches reports with the full admin filter set
func (re Reports) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := client.ReportSearchParams{
		Category:       q.Get("category"),
		Severity:       q.Get("severity"),
		County:         q.Get("county"),
		Status:         q.Get("status"),
		Text:           q.Get("text"),
		AssignedAgency: q.Get("assigned_agency"),
		DateFrom:       q.Get("date_from"),
		DateTo:         q.Get("date_to"),
		SortBy:         q.Get("sort_by"),
		SortOrder:      q.Get("sort_order"),
	}
	params.Page, _ = strconv.Atoi(q.Get("page"))
	params.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	resp, err := re.API.SearchReports(r.Context(), params)
	if err != nil {
		upstreamError(w, "report search failed", err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetHandler fetches one report
func (re Reports) GetHandler(w http.ResponseWriter, r *http.Request) {
	report, err := re.API.GetReport(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		upstreamError(w, "failed to fetch report", err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// VerifyHandler confirms or rejects a report. A reject without a non-empty
// comment never reaches the upstream verify endpoint.
func (re Reports) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	var req models.VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Action != "confirm" && req.Action != "reject" {
		config.ErrorStatus("action must be confirm or reject", http.StatusBadRequest, w, nil)
		return
	}
	if req.Action == "reject" && strings.TrimSpace(req.Comment) == "" {
		config.ErrorStatus("a comment is required when rejecting", http.StatusBadRequest, w, nil)
		return
	}

	resp, err := re.API.VerifyReport(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		upstreamError(w, "verification failed", err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
