package repository

import "time"

// formatTime converts a time to the RFC3339 UTC string stored in SQLite.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a stored RFC3339 string, returning the zero time on
// malformed input rather than failing the whole scan.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
