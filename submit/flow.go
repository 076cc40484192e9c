// Package submit drives a report submission end to end: client-side
// validation, per-file presigned uploads and the final create call. The
// create endpoint is hit exactly once, and only after every attached file
// has been uploaded.
package submit

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/models"
)

// State names the stage a submission flow is in
type State string

// Flow states. Error is reachable from uploading-media and creating-report.
const (
	StateEditing        State = "editing"
	StateUploadingMedia State = "uploading-media"
	StateCreatingReport State = "creating-report"
	StateSuccess        State = "success"
	StateError          State = "error"
)

// TaskState tracks one file upload inside a flow
type TaskState string

// Upload task states
const (
	TaskPending  TaskState = "pending"
	TaskUploaded TaskState = "uploaded"
	TaskFailed   TaskState = "failed"
)

// UploadTask is one attached file moving through the upload phase. A task
// that succeeded keeps its media key, so a retry after a partial failure
// does not re-upload it.
type UploadTask struct {
	File     models.DraftFile
	State    TaskState
	MediaKey string
	Err      error
}

// Flow is a single report submission attempt
type Flow struct {
	api        *client.Client
	data       models.DraftData
	offlineRef string
	tasks      []*UploadTask
	state      State
	err        error
	report     *models.Report
}

// NewFlow builds a flow for the given draft data. offlineRef is the
// idempotency key forwarded as offline_reference; pass "" for an interactive
// submission.
func NewFlow(api *client.Client, data models.DraftData, offlineRef string) *Flow {
	tasks := make([]*UploadTask, 0, len(data.Files))
	for _, f := range data.Files {
		tasks = append(tasks, &UploadTask{File: f, State: TaskPending})
	}
	return &Flow{
		api:        api,
		data:       data,
		offlineRef: offlineRef,
		tasks:      tasks,
		state:      StateEditing,
	}
}

// State returns the current flow state
func (f *Flow) State() State { return f.state }

// Err returns the error that moved the flow into StateError, if any
func (f *Flow) Err() error { return f.err }

// Report returns the created report after a successful run
func (f *Flow) Report() *models.Report { return f.report }

// Tasks exposes per-file upload progress
func (f *Flow) Tasks() []*UploadTask { return f.tasks }

// Run drives the flow to completion: validate, upload every pending file,
// then create the report. Any single upload failure aborts the whole flow
// before the create call, leaving no partial report behind.
func (f *Flow) Run(ctx context.Context) (*models.Report, error) {
	if f.state == StateSuccess {
		return f.report, nil
	}

	if errs := Validate(f.data); errs != nil {
		f.state = StateEditing
		return nil, errs
	}

	f.state = StateUploadingMedia
	for _, task := range f.tasks {
		if task.State == TaskUploaded {
			continue
		}
		key, err := f.uploadOne(ctx, task)
		if err != nil {
			task.State = TaskFailed
			task.Err = err
			f.state = StateError
			f.err = err
			return nil, fmt.Errorf("failed to upload %s: %w", task.File.Name, err)
		}
		task.State = TaskUploaded
		task.MediaKey = key
		zap.S().Debugw("media uploaded", "file", task.File.Name, "key", key)
	}

	f.state = StateCreatingReport
	report, err := f.api.CreateReport(ctx, f.createRequest())
	if err != nil {
		f.state = StateError
		f.err = err
		return nil, err
	}

	f.state = StateSuccess
	f.report = report
	zap.S().Infow("report created", "id", report.ID, "report_id", report.ReportID)
	return report, nil
}

// Retry re-runs a failed flow. Tasks that already uploaded keep their media
// keys and are skipped; only failed and pending uploads are attempted again.
func (f *Flow) Retry(ctx context.Context) (*models.Report, error) {
	if f.state == StateSuccess {
		return f.report, nil
	}
	f.state = StateEditing
	f.err = nil
	for _, task := range f.tasks {
		if task.State == TaskFailed {
			task.State = TaskPending
			task.Err = nil
		}
	}
	return f.Run(ctx)
}

func (f *Flow) uploadOne(ctx context.Context, task *UploadTask) (string, error) {
	target, err := f.api.RequestUpload(ctx, mediaTypeFor(task.File.Type), "")
	if err != nil {
		return "", err
	}
	if err := f.api.UploadMedia(ctx, target, task.File.Name, task.File.Data); err != nil {
		return "", err
	}
	return target.MediaKey, nil
}

func (f *Flow) createRequest() models.ReportCreateRequest {
	media := make([]models.MediaRef, 0, len(f.tasks))
	for _, task := range f.tasks {
		media = append(media, models.MediaRef{
			Key:  task.MediaKey,
			Type: mediaTypeFor(task.File.Type),
		})
	}
	return models.ReportCreateRequest{
		Category:  f.data.Category,
		Severity:  f.data.Severity,
		Anonymous: f.data.Anonymous,
		Summary:   f.data.Summary,
		Details:   f.data.Details,
		Media:     media,
		Location: models.Location{
			Latitude:  f.data.Latitude,
			Longitude: f.data.Longitude,
			County:    f.data.County,
			District:  f.data.District,
		},
		WitnessCount:     f.data.WitnessCount,
		OfflineReference: f.offlineRef,
	}
}

// mediaTypeFor maps a MIME type onto the backend's media type enum
func mediaTypeFor(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	default:
		return "photo"
	}
}
