package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/QuaresmaHarygens/Talkam/models"
)

// ReportSearchParams filters and pages /reports/search. Zero values are
// omitted from the query string.
type ReportSearchParams struct {
	Page           int
	PageSize       int
	Category       string
	Severity       string
	County         string
	Status         string
	Text           string
	AssignedAgency string
	DateFrom       string
	DateTo         string
	SortBy         string
	SortOrder      string
}

func (p ReportSearchParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	setIfPresent(q, "category", p.Category)
	setIfPresent(q, "severity", p.Severity)
	setIfPresent(q, "county", p.County)
	setIfPresent(q, "status", p.Status)
	setIfPresent(q, "text", p.Text)
	setIfPresent(q, "assigned_agency", p.AssignedAgency)
	setIfPresent(q, "date_from", p.DateFrom)
	setIfPresent(q, "date_to", p.DateTo)
	setIfPresent(q, "sort_by", p.SortBy)
	setIfPresent(q, "sort_order", p.SortOrder)
	return q
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// SearchReports returns a paginated, filterable report listing
func (c *Client) SearchReports(ctx context.Context, params ReportSearchParams) (*models.SearchResponse, error) {
	var resp models.SearchResponse
	if err := c.do(ctx, http.MethodGet, "/reports/search", params.query(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetReport fetches one report by its internal id
func (c *Client) GetReport(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	if err := c.do(ctx, http.MethodGet, "/reports/"+url.PathEscape(id), nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// CreateReport submits a new report. Media must already have been uploaded;
// the request carries only the media keys.
func (c *Client) CreateReport(ctx context.Context, req models.ReportCreateRequest) (*models.Report, error) {
	var report models.Report
	if err := c.do(ctx, http.MethodPost, "/reports/create", nil, req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// VerifyReport confirms or rejects a report. The status transition is
// computed server-side.
func (c *Client) VerifyReport(ctx context.Context, id string, req models.VerificationRequest) (*models.VerificationResponse, error) {
	var resp models.VerificationResponse
	if err := c.do(ctx, http.MethodPost, "/reports/"+url.PathEscape(id)+"/verify", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TrackReport looks up the public status of a report by its tracking id
// (RPT-YYYY-XXXXXX). No authentication is required.
func (c *Client) TrackReport(ctx context.Context, reportID string) (*models.TrackingInfo, error) {
	var info models.TrackingInfo
	if err := c.do(ctx, http.MethodGet, "/reports/track/"+url.PathEscape(reportID), nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SyncReports confirms offline-queued submissions with the server
func (c *Client) SyncReports(ctx context.Context, req models.SyncRequest) (*models.SyncResponse, error) {
	var resp models.SyncResponse
	if err := c.do(ctx, http.MethodPost, "/reports/sync", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
