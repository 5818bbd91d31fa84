package leave

import "time"

// ComputeDays returns the inclusive whole-day span between from and to, so a
// single-day leave from X to X counts as 1. Both dates are truncated to
// midnight UTC first; calendar dates only, no DST drift.
func ComputeDays(from, to time.Time) (int, error) {
	from = midnight(from)
	to = midnight(to)
	if to.Before(from) {
		return 0, ErrInvalidRange
	}
	return int(to.Sub(from).Hours()/24) + 1, nil
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
