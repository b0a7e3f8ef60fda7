// Package timecalc provides the pure time arithmetic for Worklog:
// duration derivation and date range resolution.
package timecalc

import (
	"fmt"
	"time"

	"github.com/manav03panchal/worklog/internal/model"
)

// ComputeDuration derives the elapsed seconds between two times of day,
// treating both as occurring on the same reference day. A numerically
// earlier end means the work spans midnight and a full day is added.
// The result is always in [0, 86400).
func ComputeDuration(start, end model.TimeOfDay) int {
	diff := int(end) - int(start)
	if diff < 0 {
		diff += model.SecondsPerDay
	}
	return diff
}

// Range is an inclusive civil date range. A zero bound means unbounded
// in that direction.
type Range struct {
	From model.Date
	To   model.Date
}

// Unbounded reports whether the range has no bound at all.
func (r Range) Unbounded() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether d falls within the range.
func (r Range) Contains(d model.Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// ResolveRange normalizes a query's date filter into an inclusive range.
// A non-zero weekOf takes exclusive precedence over from and to: the
// result is the Monday through Friday of the week containing weekOf.
// Otherwise from and to apply independently, either may be zero, and
// all-zero input yields an unbounded range.
func ResolveRange(from, to, weekOf model.Date) Range {
	if !weekOf.IsZero() {
		return WorkWeek(weekOf)
	}
	return Range{From: from, To: to}
}

// WorkWeek returns Monday through Friday of the week containing d.
// The week starts on Monday regardless of locale.
func WorkWeek(d model.Date) Range {
	// Go's weekday: Sunday=0, Monday=1, ..., Saturday=6
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := d.AddDays(-(wd - 1))
	return Range{From: monday, To: monday.AddDays(4)}
}

// FormatDurationHHMMSS formats seconds as HH:MM:SS. Hours may exceed 24
// and are zero-padded to at least two digits.
func FormatDurationHHMMSS(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatDuration formats seconds as a human-readable string like
// "1h 40m", "45m" or "30s" for CLI output.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", seconds%60)
}

// Today returns the current civil date in the local zone.
func Today() model.Date {
	return model.DateOf(time.Now())
}
