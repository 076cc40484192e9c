package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/models"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"results": [], "total": 0, "page": 1, "page_size": 20, "total_pages": 0}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	assert.NoError(t, c.SetToken("abc123"))

	_, err := c.SearchReports(context.Background(), client.ReportSearchParams{})
	assert.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_NoBearerWhenUnauthenticated(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"results": []}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.SearchReports(context.Background(), client.ReportSearchParams{})
	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorDetailNormalization(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		expected   string
	}{
		{"detail field", http.StatusUnprocessableEntity, `{"detail": "category is required"}`, "category is required"},
		{"message fallback", http.StatusBadRequest, `{"message": "bad input"}`, "bad input"},
		{"status fallback", http.StatusInternalServerError, `not even json`, "HTTP 500 Internal Server Error"},
		{"empty body", http.StatusForbidden, ``, "HTTP 403 Forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c := client.New(srv.URL)
			_, err := c.GetReport(context.Background(), "r1")

			var apiErr *client.APIError
			if assert.ErrorAs(t, err, &apiErr) {
				assert.Equal(t, tt.statusCode, apiErr.StatusCode)
				assert.Equal(t, tt.expected, apiErr.Detail)
			}
		})
	}
}

func TestClient_SearchQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/search", r.URL.Path)
		gotQuery = r.URL.Query()
		io.WriteString(w, `{"results": []}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.SearchReports(context.Background(), client.ReportSearchParams{
		Page:     2,
		PageSize: 50,
		Category: "health",
		County:   "Montserrado",
		SortBy:   "created_at",
	})
	assert.NoError(t, err)

	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"50"}, gotQuery["page_size"])
	assert.Equal(t, []string{"health"}, gotQuery["category"])
	assert.Equal(t, []string{"Montserrado"}, gotQuery["county"])
	assert.Equal(t, []string{"created_at"}, gotQuery["sort_by"])
	// zero values never leak into the query string
	assert.NotContains(t, gotQuery, "severity")
	assert.NotContains(t, gotQuery, "text")
	assert.NotContains(t, gotQuery, "date_from")
}

func TestClient_CreateReportPayload(t *testing.T) {
	var got models.ReportCreateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/create", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id": "abc", "report_id": "RPT-2026-000042", "status": "pending"}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	report, err := c.CreateReport(context.Background(), models.ReportCreateRequest{
		Category: "infrastructure",
		Severity: "high",
		Summary:  "bridge collapsed on the main road",
		Location: models.Location{
			Latitude:  6.3004,
			Longitude: -10.7969,
			County:    "Montserrado",
		},
		Media:            []models.MediaRef{{Key: "m-1", Type: "photo"}},
		OfflineReference: "ref-42",
	})
	assert.NoError(t, err)
	assert.Equal(t, "RPT-2026-000042", report.ReportID)

	assert.Equal(t, "infrastructure", got.Category)
	assert.Equal(t, "high", got.Severity)
	assert.Equal(t, "Montserrado", got.Location.County)
	assert.Equal(t, "ref-42", got.OfflineReference)
	assert.Len(t, got.Media, 1)
	assert.Equal(t, "m-1", got.Media[0].Key)
}

func TestClient_LoginPersistsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		io.WriteString(w, `{"access_token": "tok-1", "roles": ["citizen"]}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	tokens, err := c.Login(context.Background(), models.LoginRequest{Phone: "+231770000000", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "tok-1", tokens.AccessToken)
	assert.Equal(t, "tok-1", c.Token())

	assert.NoError(t, c.Logout())
	assert.Empty(t, c.Token())
}

func TestClient_UploadMediaMultipart(t *testing.T) {
	var gotFields map[string]string
	var gotFile []byte
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for field, values := range r.MultipartForm.Value {
			gotFields[field] = values[0]
		}
		file, _, err := r.FormFile("file")
		if assert.NoError(t, err) {
			gotFile, _ = io.ReadAll(file)
			file.Close()
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	assert.NoError(t, c.SetToken("should-not-be-sent"))

	err := c.UploadMedia(context.Background(), &models.PresignedUpload{
		UploadURL: srv.URL + "/upload",
		Fields:    map[string]string{"key": "media/abc.jpg", "signature": "sig"},
		MediaKey:  "media/abc.jpg",
	}, "abc.jpg", []byte("jpeg-bytes"))
	assert.NoError(t, err)

	assert.Equal(t, "media/abc.jpg", gotFields["key"])
	assert.Equal(t, "sig", gotFields["signature"])
	assert.Equal(t, []byte("jpeg-bytes"), gotFile)
	// the presigned signature is the credential, never the bearer token
	assert.Empty(t, gotAuth)
}

func TestClient_UploadMediaRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	err := c.UploadMedia(context.Background(), &models.PresignedUpload{UploadURL: srv.URL}, "a.jpg", []byte("x"))

	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestClient_TransportErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := client.New(srv.URL)
	_, err := c.GetReport(context.Background(), "r1")
	assert.Error(t, err)

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_VerifyReportPath(t *testing.T) {
	var gotPath string
	var got models.VerificationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"status": "rejected", "verification_score": "-1"}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	resp, err := c.VerifyReport(context.Background(), "r1", models.VerificationRequest{
		Action:  "reject",
		Comment: "duplicate of RPT-2026-000001",
	})
	assert.NoError(t, err)
	assert.Equal(t, "/reports/r1/verify", gotPath)
	assert.Equal(t, "reject", got.Action)
	assert.Equal(t, "duplicate of RPT-2026-000001", got.Comment)
	assert.Equal(t, "rejected", resp.Status)
}
