package submit

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/QuaresmaHarygens/Talkam/models"
)

const minSummaryLength = 10

// ValidationErrors maps field names to human-readable messages. It is
// returned instead of a plain error so forms can render inline messages.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate runs the client-side schema checks that gate a submission. A nil
// result means the draft may proceed to upload; validation failures never
// reach the network.
func Validate(d models.DraftData) ValidationErrors {
	errs := ValidationErrors{}

	if d.Category == "" {
		errs["category"] = "category is required"
	} else if !oneOf(d.Category, models.ReportCategories) {
		errs["category"] = "unknown category"
	}

	if !oneOf(d.Severity, models.ReportSeverities) {
		errs["severity"] = "severity must be one of low, medium, high, critical"
	}

	if utf8.RuneCountInString(d.Summary) < minSummaryLength {
		errs["summary"] = "summary must be at least 10 characters"
	}

	if d.Latitude < -90 || d.Latitude > 90 {
		errs["latitude"] = "latitude must be between -90 and 90"
	}
	if d.Longitude < -180 || d.Longitude > 180 {
		errs["longitude"] = "longitude must be between -180 and 180"
	}

	if strings.TrimSpace(d.County) == "" {
		errs["county"] = "county is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
