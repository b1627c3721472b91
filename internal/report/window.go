// Package report implements the data transformations behind the portal
// reports: window resolution, row normalization, aggregation, distance-band
// cost allocation and timeline segmentation. Every stage treats empty input
// as a valid result and never returns an error for it.
package report

import (
	"math"
	"time"
)

// WindowMode reflects how the bounds of a Window were chosen.
type WindowMode string

const (
	ModeRolling    WindowMode = "rolling"
	ModeRange      WindowMode = "range"
	ModeShiftToNow WindowMode = "shift"
	ModeDay        WindowMode = "day"
)

// Window is a resolved half-open-ish query interval. End is inclusive for
// closed historical windows and exclusive when it equals "now".
type Window struct {
	Start time.Time
	End   time.Time
	Mode  WindowMode
}

// Rolling returns the trailing window of the given number of hours ending
// at now.
func Rolling(now time.Time, hours int) Window {
	return Window{
		Start: now.Add(-time.Duration(hours) * time.Hour),
		End:   now,
		Mode:  ModeRolling,
	}
}

// Range resolves an explicit date range to midnight of the first day
// through the end of the final day, so the final day is fully included.
func Range(from, to time.Time) Window {
	start := midnight(from)
	end := midnight(to).AddDate(0, 0, 1)
	return Window{Start: start, End: end, Mode: ModeRange}
}

// ShiftToNow starts at today's shift start and ends at now. Before the
// shift start the window rolls back to yesterday's shift.
func ShiftToNow(now time.Time, shiftStartHour int) Window {
	start := time.Date(now.Year(), now.Month(), now.Day(), shiftStartHour, 0, 0, 0, now.Location())
	if now.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return Window{Start: start, End: now, Mode: ModeShiftToNow}
}

// Today covers midnight through now.
func Today(now time.Time) Window {
	return Window{Start: midnight(now), End: now, Mode: ModeDay}
}

// Yesterday covers the previous calendar day in full.
func Yesterday(now time.Time) Window {
	end := midnight(now)
	return Window{Start: end.AddDate(0, 0, -1), End: end, Mode: ModeDay}
}

// Contains reports whether t falls inside the window. Only explicit ranges
// keep an inclusive upper bound; every other mode ends at "now" or at a
// midnight owned by the next day, so the boundary instant is excluded and a
// record stamped exactly there is never counted twice across refreshes.
func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	if w.Mode == ModeRange {
		return !t.After(w.End)
	}
	return t.Before(w.End)
}

// ElapsedHours is the span of the window in hours with a 0.01 h floor, so
// pace math right after a shift turnover never divides by zero.
func (w Window) ElapsedHours() float64 {
	h := w.End.Sub(w.Start).Hours()
	if h < 0.01 {
		return 0.01
	}
	return h
}

// Pace extrapolates a volume observed over the window to a 24-hour rate.
func (w Window) Pace(volume float64) float64 {
	return volume / w.ElapsedHours() * 24
}

// Days is the number of whole days the window spans, rounded, with a
// one-day floor. Daily volume targets scale by it.
func (w Window) Days() int {
	d := int(math.Round(w.End.Sub(w.Start).Hours() / 24))
	if d < 1 {
		return 1
	}
	return d
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
