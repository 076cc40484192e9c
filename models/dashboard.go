package models

import "time"

// KPIMetrics are the headline numbers on the admin dashboard
type KPIMetrics struct {
	TotalReports           int     `json:"total_reports"`
	VerifiedReports        int     `json:"verified_reports"`
	VerificationRate       float64 `json:"verification_rate"`
	AvgResponseTimeHours   float64 `json:"avg_response_time_hours"`
	OfflineSyncSuccessRate float64 `json:"offline_sync_success_rate"`
	ActiveAlerts           int     `json:"active_alerts"`
}

// CountyBreakdown aggregates report counts per county
type CountyBreakdown struct {
	County        string `json:"county"`
	ReportCount   int    `json:"report_count"`
	VerifiedCount int    `json:"verified_count"`
	AvgSeverity   string `json:"avg_severity,omitempty"`
}

// CategoryTrend tracks report volume movement per category
type CategoryTrend struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Trend    string `json:"trend"` // up, down or stable
}

// Dashboard is the aggregate analytics payload
type Dashboard struct {
	KPIs            KPIMetrics        `json:"kpis"`
	CountyBreakdown []CountyBreakdown `json:"county_breakdown"`
	CategoryTrends  []CategoryTrend   `json:"category_trends"`
	LastUpdated     time.Time         `json:"last_updated"`
}

// HeatmapPoint is one geographic cluster on the report heatmap
type HeatmapPoint struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	County      string  `json:"county"`
	ReportCount int     `json:"report_count"`
	AvgSeverity float64 `json:"avg_severity"`
	Intensity   float64 `json:"intensity"`
}

// CategoryInsight aggregates verification outcomes for one category
type CategoryInsight struct {
	Category         string   `json:"category"`
	TotalReports     int      `json:"total_reports"`
	VerifiedReports  int      `json:"verified_reports"`
	VerificationRate float64  `json:"verification_rate"`
	AvgSeverity      float64  `json:"avg_severity"`
	AvgAIScore       *float64 `json:"avg_ai_score,omitempty"`
}

// CategoryInsightsResponse wraps per-category insights
type CategoryInsightsResponse struct {
	ByCategory   []CategoryInsight `json:"by_category"`
	MostReported string            `json:"most_reported,omitempty"`
	MostVerified string            `json:"most_verified,omitempty"`
}

// TimeSeriesPoint is one bucket of the report time series
type TimeSeriesPoint struct {
	Period          string `json:"period"`
	TotalReports    int    `json:"total_reports"`
	VerifiedReports int    `json:"verified_reports"`
}

// TimeSeriesResponse is the bucketed report series
type TimeSeriesResponse struct {
	Data    []TimeSeriesPoint `json:"data"`
	GroupBy string            `json:"group_by"`
}
