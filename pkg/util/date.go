package util

import "time"

// ISODate is the calendar-date layout used throughout the service.
const ISODate = "2006-01-02"

// ParseISODate parses an ISO 8601 calendar date. Returns (t, true) if it worked.
func ParseISODate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatISODate renders t as an ISO 8601 calendar date.
func FormatISODate(t time.Time) string {
	return t.Format(ISODate)
}

// DaysBack returns n ISO dates walking backward one calendar day at a time,
// starting at from (inclusive). Used for synthesized fallback series.
func DaysBack(from time.Time, n int) []string {
	out := make([]string, 0, n)
	day := from
	for i := 0; i < n; i++ {
		out = append(out, FormatISODate(day))
		day = day.AddDate(0, 0, -1)
	}
	return out
}
