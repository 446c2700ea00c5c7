package domain

import "time"

// FormatDate renders an RFC 3339 timestamp as DD-MM-YYYY for display. A
// timestamp that does not parse is rendered as the parse error text.
func FormatDate(dt string) string {
	parsed, err := time.Parse(time.RFC3339, dt)
	if err != nil {
		return err.Error()
	}
	return parsed.Format("02-01-2006")
}
