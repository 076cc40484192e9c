package submit_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/models"
	"github.com/QuaresmaHarygens/Talkam/submit"
)

// fakeBackend simulates the presign, upload and create endpoints. Individual
// files can be made to fail their direct upload.
type fakeBackend struct {
	srv         *httptest.Server
	presigns    atomic.Int64
	uploads     atomic.Int64
	creates     atomic.Int64
	failUploads map[string]bool // filename -> reject the direct upload
	lastCreate  models.ReportCreateRequest
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{failUploads: map[string]bool{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/media/upload", func(w http.ResponseWriter, r *http.Request) {
		n := b.presigns.Add(1)
		resp := models.PresignedUpload{
			UploadURL: b.srv.URL + "/bucket",
			Fields:    map[string]string{"key": fmt.Sprintf("media/%d", n)},
			MediaKey:  fmt.Sprintf("media/%d", n),
		}
		json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/bucket", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if b.failUploads[header.Filename] {
			w.WriteHeader(http.StatusForbidden)
			io.WriteString(w, `{"detail": "signature expired"}`)
			return
		}
		b.uploads.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/reports/create", func(w http.ResponseWriter, r *http.Request) {
		b.creates.Add(1)
		json.NewDecoder(r.Body).Decode(&b.lastCreate)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id": "abc", "report_id": "RPT-2026-000007", "status": "pending"}`)
	})
	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func draftWithFiles(files ...models.DraftFile) models.DraftData {
	d := validDraft()
	d.Files = files
	return d
}

func TestFlow_SuccessCreatesReportOnce(t *testing.T) {
	backend := newFakeBackend(t)
	api := client.New(backend.srv.URL)

	data := draftWithFiles(
		models.DraftFile{Name: "a.jpg", Type: "image/jpeg", Data: []byte("aa")},
		models.DraftFile{Name: "b.mp4", Type: "video/mp4", Data: []byte("bb")},
	)
	flow := submit.NewFlow(api, data, "")

	report, err := flow.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "RPT-2026-000007", report.ReportID)
	assert.Equal(t, submit.StateSuccess, flow.State())

	assert.EqualValues(t, 2, backend.uploads.Load())
	assert.EqualValues(t, 1, backend.creates.Load())

	// the create payload carries the uploaded media keys and mapped types
	if assert.Len(t, backend.lastCreate.Media, 2) {
		assert.Equal(t, "media/1", backend.lastCreate.Media[0].Key)
		assert.Equal(t, "photo", backend.lastCreate.Media[0].Type)
		assert.Equal(t, "video", backend.lastCreate.Media[1].Type)
	}
	assert.Equal(t, data.Category, backend.lastCreate.Category)
	assert.Equal(t, data.Summary, backend.lastCreate.Summary)
	assert.Equal(t, data.County, backend.lastCreate.Location.County)
}

func TestFlow_UploadFailureAbortsBeforeCreate(t *testing.T) {
	backend := newFakeBackend(t)
	backend.failUploads["b.jpg"] = true
	api := client.New(backend.srv.URL)

	flow := submit.NewFlow(api, draftWithFiles(
		models.DraftFile{Name: "a.jpg", Type: "image/jpeg", Data: []byte("aa")},
		models.DraftFile{Name: "b.jpg", Type: "image/jpeg", Data: []byte("bb")},
	), "")

	_, err := flow.Run(context.Background())
	assert.Error(t, err)
	assert.Equal(t, submit.StateError, flow.State())

	// no partial report: the create endpoint was never reached
	assert.EqualValues(t, 0, backend.creates.Load())

	tasks := flow.Tasks()
	assert.Equal(t, submit.TaskUploaded, tasks[0].State)
	assert.Equal(t, submit.TaskFailed, tasks[1].State)
	assert.Error(t, tasks[1].Err)
}

func TestFlow_RetrySkipsUploadedTasks(t *testing.T) {
	backend := newFakeBackend(t)
	backend.failUploads["b.jpg"] = true
	api := client.New(backend.srv.URL)

	flow := submit.NewFlow(api, draftWithFiles(
		models.DraftFile{Name: "a.jpg", Type: "image/jpeg", Data: []byte("aa")},
		models.DraftFile{Name: "b.jpg", Type: "image/jpeg", Data: []byte("bb")},
	), "")

	_, err := flow.Run(context.Background())
	assert.Error(t, err)
	keyAfterFirstRun := flow.Tasks()[0].MediaKey

	// connectivity restored
	delete(backend.failUploads, "b.jpg")

	report, err := flow.Retry(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, submit.StateSuccess, flow.State())

	// a.jpg was not re-uploaded and kept its key
	assert.Equal(t, keyAfterFirstRun, flow.Tasks()[0].MediaKey)
	assert.EqualValues(t, 2, backend.uploads.Load())
	assert.EqualValues(t, 1, backend.creates.Load())
}

func TestFlow_InvalidDraftNeverTouchesNetwork(t *testing.T) {
	backend := newFakeBackend(t)
	api := client.New(backend.srv.URL)

	d := validDraft()
	d.Category = ""
	flow := submit.NewFlow(api, d, "")

	_, err := flow.Run(context.Background())
	var fieldErrs submit.ValidationErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, submit.StateEditing, flow.State())

	assert.EqualValues(t, 0, backend.presigns.Load())
	assert.EqualValues(t, 0, backend.creates.Load())
}

func TestFlow_OfflineReferenceForwarded(t *testing.T) {
	backend := newFakeBackend(t)
	api := client.New(backend.srv.URL)

	flow := submit.NewFlow(api, validDraft(), "ref-abc-123")
	_, err := flow.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "ref-abc-123", backend.lastCreate.OfflineReference)
}

func TestFlow_RunAfterSuccessIsIdempotent(t *testing.T) {
	backend := newFakeBackend(t)
	api := client.New(backend.srv.URL)

	flow := submit.NewFlow(api, validDraft(), "")
	first, err := flow.Run(context.Background())
	assert.NoError(t, err)

	second, err := flow.Run(context.Background())
	assert.NoError(t, err)
	assert.Same(t, first, second)
	assert.EqualValues(t, 1, backend.creates.Load())
}
