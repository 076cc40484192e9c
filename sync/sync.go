// Package sync drains the offline draft queue in the background once
// connectivity returns. Each draft is submitted with the idempotency key it
// was saved with, so a drain that is interrupted and retried cannot create
// duplicate reports server-side.
package sync

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/drafts"
	"github.com/QuaresmaHarygens/Talkam/models"
	"github.com/QuaresmaHarygens/Talkam/submit"
)

const drainTimeout = 5 * time.Minute

// Syncer periodically drains queued drafts through the submission flow
type Syncer struct {
	cron   *cron.Cron
	api    *client.Client
	drafts *drafts.Store
	spec   string
}

// New creates a Syncer that drains every few minutes
func New(api *client.Client, store *drafts.Store) *Syncer {
	return &Syncer{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		api:    api,
		drafts: store,
		spec:   "@every 3m",
	}
}

// Start begins the periodic drain job
func (s *Syncer) Start() {
	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		if _, err := s.Drain(ctx); err != nil {
			zap.S().Errorw("draft sync failed", "error", err)
		}
	})
	if err != nil {
		zap.S().Errorw("failed to register draft sync job", "error", err)
		return
	}
	s.cron.Start()
	zap.S().Info("Draft sync scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Syncer) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Draft sync scheduler stopped")
}

// Drain walks queued drafts oldest-first, submits each with its stored
// offline reference and deletes it on success. A transport-level failure
// stops the pass (the network is still down); an API rejection leaves that
// draft queued and moves on. Returns the number of drafts synced.
func (s *Syncer) Drain(ctx context.Context) (int, error) {
	queued, err := s.drafts.GetDrafts()
	if err != nil {
		return 0, err
	}
	if len(queued) == 0 {
		return 0, nil
	}

	synced := make([]string, 0, len(queued))
	for _, draft := range queued {
		flow := submit.NewFlow(s.api, draft.Data, draft.OfflineReference)
		if _, err := flow.Run(ctx); err != nil {
			var apiErr *client.APIError
			var fieldErrs submit.ValidationErrors
			switch {
			case errors.As(err, &fieldErrs):
				zap.S().Warnw("draft fails validation, leaving queued for editing", "draft", draft.ID, "error", err)
				continue
			case errors.As(err, &apiErr):
				zap.S().Warnw("draft rejected, leaving queued", "draft", draft.ID, "error", err)
				continue
			default:
				zap.S().Debugw("draft sync deferred, network unavailable", "draft", draft.ID)
			}
			break
		}
		if err := s.drafts.DeleteDraft(draft.ID); err != nil {
			return len(synced), err
		}
		synced = append(synced, draft.OfflineReference)
	}

	if len(synced) > 0 {
		if _, err := s.api.SyncReports(ctx, models.SyncRequest{OfflineReferences: synced}); err != nil {
			zap.S().Warnw("sync confirmation failed", "error", err)
		}
		zap.S().Infow("offline drafts synced", "count", len(synced))
	}
	return len(synced), nil
}
