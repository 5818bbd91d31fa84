package shared

import "time"

// ParseDate accepts an RFC3339 timestamp or a plain YYYY-MM-DD date, which
// is what the leave endpoints take. An empty value maps to the zero time;
// callers treat that as absent.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
