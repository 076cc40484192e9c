package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/drafts"
	"github.com/QuaresmaHarygens/Talkam/models"
	"github.com/QuaresmaHarygens/Talkam/store"
	"github.com/QuaresmaHarygens/Talkam/submit"
)

// Reports handles report listing, submission, verification and tracking
type Reports struct {
	API    *client.Client
	Store  *store.Store
	Drafts *drafts.Store
}

// ListHandler searches reports. Each request is tagged with a generation
// for its query key; a response that lost the race to a newer request for
// the same key is still returned to its caller but never overwrites the
// shared state snapshot.
func (re Reports) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := client.ReportSearchParams{
		Category: q.Get("category"),
		Severity: q.Get("severity"),
		County:   q.Get("county"),
		Status:   q.Get("status"),
		Text:     q.Get("text"),
	}
	params.Page, _ = strconv.Atoi(q.Get("page"))
	params.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	queryKey := "reports?" + q.Encode()
	gen := re.Store.NextGen(queryKey)

	resp, err := re.API.SearchReports(r.Context(), params)
	if err != nil {
		upstreamError(w, "report search failed", err)
		return
	}
	if !re.Store.SetReportsAt(queryKey, gen, resp.Results) {
		zap.S().Debugw("stale report search response dropped", "key", queryKey, "gen", gen)
	}
	respondJSON(w, http.StatusOK, resp)
}

// CreateHandler validates and submits a new report. When the upstream is
// unreachable the draft is queued locally instead and the caller gets a 202
// with the draft id.
func (re Reports) CreateHandler(w http.ResponseWriter, r *http.Request) {
	data, err := parseDraftForm(r)
	if err != nil {
		config.ErrorStatus("failed to read report form", http.StatusBadRequest, w, err)
		return
	}

	if errs := submit.Validate(data); errs != nil {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": errs})
		return
	}

	flow := submit.NewFlow(re.API, data, "")
	report, err := flow.Run(r.Context())
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			upstreamError(w, "report submission failed", err)
			return
		}
		// transport failure: keep the submission locally and let the
		// background sync drain it when connectivity returns
		draftID, saveErr := re.Drafts.SaveDraft(data)
		if saveErr != nil {
			config.ErrorStatus("failed to save draft", http.StatusInternalServerError, w, saveErr)
			return
		}
		zap.S().Infow("report queued offline", "draft", draftID)
		respondJSON(w, http.StatusAccepted, map[string]interface{}{
			"message":  "network unavailable, report saved as draft",
			"draft_id": draftID,
		})
		return
	}

	re.Store.AddReport(report.Summarize())
	respondJSON(w, http.StatusCreated, report)
}

// GetHandler fetches one report by id
func (re Reports) GetHandler(w http.ResponseWriter, r *http.Request) {
	report, err := re.API.GetReport(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		upstreamError(w, "failed to fetch report", err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// VerifyHandler confirms or rejects a report. Rejecting without a comment
// is blocked locally; the verify endpoint is never called in that case.
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

// TrackHandler looks up the public status of a report. The tracking id is
// pattern-checked before any upstream call.
func (re Reports) TrackHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["reportId"]
	if !submit.ValidReportID(reportID) {
		config.ErrorStatus("invalid report id, expected RPT-YYYY-XXXXXX", http.StatusBadRequest, w, nil)
		return
	}
	info, err := re.API.TrackReport(r.Context(), reportID)
	if err != nil {
		upstreamError(w, "tracking lookup failed", err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}
