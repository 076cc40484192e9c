package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/QuaresmaHarygens/Talkam/models"
)

// AnalyticsDashboard fetches the aggregate KPI dashboard
func (c *Client) AnalyticsDashboard(ctx context.Context) (*models.Dashboard, error) {
	var dashboard models.Dashboard
	if err := c.do(ctx, http.MethodGet, "/dashboards/analytics", nil, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// Heatmap fetches geographic report clusters for the last N days
func (c *Client) Heatmap(ctx context.Context, days int) ([]models.HeatmapPoint, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var points []models.HeatmapPoint
	if err := c.do(ctx, http.MethodGet, "/dashboards/heatmap", q, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// CategoryInsights fetches per-category verification aggregates
func (c *Client) CategoryInsights(ctx context.Context) (*models.CategoryInsightsResponse, error) {
	var resp models.CategoryInsightsResponse
	if err := c.do(ctx, http.MethodGet, "/dashboards/category-insights", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TimeSeries fetches the report series bucketed by day, week or month
func (c *Client) TimeSeries(ctx context.Context, days int, groupBy string) (*models.TimeSeriesResponse, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	setIfPresent(q, "group_by", groupBy)
	var resp models.TimeSeriesResponse
	if err := c.do(ctx, http.MethodGet, "/dashboards/time-series", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
