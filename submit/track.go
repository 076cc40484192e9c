package submit

import "regexp"

// Tracking ids look like RPT-2025-000123: a four digit year and a six digit
// zero-padded sequence.
var reportIDPattern = regexp.MustCompile(`^RPT-\d{4}-\d{6}$`)

// ValidReportID reports whether s is a well-formed public tracking id. It is
// checked before any tracking lookup or navigation.
func ValidReportID(s string) bool {
	return reportIDPattern.MatchString(s)
}
