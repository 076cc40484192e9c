package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/drafts"
	"github.com/QuaresmaHarygens/Talkam/submit"
	talkamsync "github.com/QuaresmaHarygens/Talkam/sync"
)

// Drafts exposes the offline draft queue
type Drafts struct {
	API    *client.Client
	Drafts *drafts.Store
	Syncer *talkamsync.Syncer
}

// SaveHandler stores an in-progress submission locally without validating
// it; drafts may be incomplete by definition
func (d Drafts) SaveHandler(w http.ResponseWriter, r *http.Request) {
	data, err := parseDraftForm(r)
	if err != nil {
		config.ErrorStatus("failed to read draft form", http.StatusBadRequest, w, err)
		return
	}
	id, err := d.Drafts.SaveDraft(data)
	if err != nil {
		config.ErrorStatus("failed to save draft", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uint64{"draft_id": id})
}

// ListHandler returns all queued drafts. File buffers are included; the
// caller decides whether to render previews from them.
func (d Drafts) ListHandler(w http.ResponseWriter, r *http.Request) {
	queued, err := d.Drafts.GetDrafts()
	if err != nil {
		config.ErrorStatus("failed to read drafts", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"drafts": queued})
}

// DeleteHandler discards one draft
func (d Drafts) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		config.ErrorStatus("invalid draft id", http.StatusBadRequest, w, err)
		return
	}
	if err := d.Drafts.DeleteDraft(id); err != nil {
		config.ErrorStatus("failed to delete draft", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "draft deleted"})
}

// SubmitHandler submits one queued draft now, keeping its idempotency key.
// On success the draft is removed from the queue.
func (d Drafts) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		config.ErrorStatus("invalid draft id", http.StatusBadRequest, w, err)
		return
	}
	draft, err := d.Drafts.GetDraft(id)
	if err != nil {
		config.ErrorStatus("failed to read draft", http.StatusInternalServerError, w, err)
		return
	}
	if draft == nil {
		config.ErrorStatus("draft not found", http.StatusNotFound, w, nil)
		return
	}

	flow := submit.NewFlow(d.API, draft.Data, draft.OfflineReference)
	report, err := flow.Run(r.Context())
	if err != nil {
		var fieldErrs submit.ValidationErrors
		if errors.As(err, &fieldErrs) {
			respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": fieldErrs})
			return
		}
		upstreamError(w, "draft submission failed", err)
		return
	}

	if err := d.Drafts.DeleteDraft(id); err != nil {
		config.ErrorStatus("report created but draft cleanup failed", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, report)
}

// SyncHandler triggers a one-shot drain of the whole queue
func (d Drafts) SyncHandler(w http.ResponseWriter, r *http.Request) {
	synced, err := d.Syncer.Drain(r.Context())
	if err != nil {
		config.ErrorStatus("draft sync failed", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"synced": synced})
}
