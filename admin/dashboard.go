package admin

import (
	"net/http"
	"strconv"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
)

const defaultWindowDays = 30

// Dashboards handles the analytics views
type Dashboards struct {
	API *client.Client
}

// AnalyticsHandler fetches the KPI dashboard
func (d Dashboards) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	dashboard, err := d.API.AnalyticsDashboard(r.Context())
	if err != nil {
		upstreamError(w, "failed to fetch dashboard", err)
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

// HeatmapHandler fetches geographic report clusters
func (d Dashboards) HeatmapHandler(w http.ResponseWriter, r *http.Request) {
	points, err := d.API.Heatmap(r.Context(), windowDays(r))
	if err != nil {
		upstreamError(w, "failed to fetch heatmap", err)
		return
	}
	respondJSON(w, http.StatusOK, points)
}

// CategoryInsightsHandler fetches per-category verification aggregates
func (d Dashboards) CategoryInsightsHandler(w http.ResponseWriter, r *http.Request) {
	insights, err := d.API.CategoryInsights(r.Context())
	if err != nil {
		upstreamError(w, "failed to fetch category insights", err)
		return
	}
	respondJSON(w, http.StatusOK, insights)
}

// TimeSeriesHandler fetches the bucketed report series. Changing group_by
// refetches data only; the dashboard view stays put.
func (d Dashboards) TimeSeriesHandler(w http.ResponseWriter, r *http.Request) {
	groupBy := r.URL.Query().Get("group_by")
	if groupBy == "" {
		groupBy = "day"
	}
	switch groupBy {
	case "day", "week", "month":
	default:
		config.ErrorStatus("group_by must be day, week or month", http.StatusBadRequest, w, nil)
		return
	}

	series, err := d.API.TimeSeries(r.Context(), windowDays(r), groupBy)
	if err != nil {
		upstreamError(w, "failed to fetch time series", err)
		return
	}
	respondJSON(w, http.StatusOK, series)
}

func windowDays(r *http.Request) int {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		return defaultWindowDays
	}
	return days
}
