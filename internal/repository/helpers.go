package repository

import "time"

// parseTime parses an RFC3339 timestamp from SQLite storage. Unparseable
// values fall back to the zero time rather than failing the scan.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatTime converts a time.Time to its SQLite storage form.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
