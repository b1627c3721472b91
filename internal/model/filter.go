package model

import "time"

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ReportFilter narrows a report query. Equipment and Operation are exact
// warehouse values; empty means no filtering.
type ReportFilter struct {
	Range     DateRange
	Equipment string
	Operation string
}

// ClampRange keeps an explicit range sane: missing bounds fall back to the
// last defaultRange days, inverted ranges get a one-day span, and ranges
// longer than maxRange days are trimmed from the start.
func (f ReportFilter) ClampRange(defaultRange, maxRange int) ReportFilter {
	if f.Range.From.IsZero() || f.Range.To.IsZero() {
		f.Range.To = time.Now()
		f.Range.From = f.Range.To.AddDate(0, 0, -defaultRange)
	}
	if f.Range.To.Before(f.Range.From) {
		f.Range.To = f.Range.From.Add(24 * time.Hour)
	}
	if f.Range.To.Sub(f.Range.From) > time.Duration(maxRange)*24*time.Hour {
		f.Range.From = f.Range.To.Add(-time.Duration(maxRange) * 24 * time.Hour)
	}
	return f
}
