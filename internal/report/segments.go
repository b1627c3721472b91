package report

import (
	"sort"
	"time"

	"mining-reports-service/internal/model"
)

// Segments collapses the hourly state feed into maximal constant-state runs
// per equipment. A new segment starts whenever the state or the state type
// changes; each segment ends where the next one starts, and the last one is
// clamped to the window end so open-ended states never run past the queried
// period. Rows without an equipment name or entry timestamp are skipped.
func Segments(hours []model.HourRecord, windowEnd time.Time) []model.Segment {
	recs := make([]model.HourRecord, 0, len(hours))
	for _, h := range hours {
		if h.Equipment == "" || h.RecordedAt.IsZero() {
			continue
		}
		recs = append(recs, h)
	}
	if len(recs) == 0 {
		return nil
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Equipment != recs[j].Equipment {
			return recs[i].Equipment < recs[j].Equipment
		}
		return recs[i].RecordedAt.Before(recs[j].RecordedAt)
	})

	var segs []model.Segment
	for _, h := range recs {
		last := len(segs) - 1
		if last >= 0 && segs[last].Equipment == h.Equipment &&
			segs[last].State == h.State && segs[last].StateType == h.StateType {
			continue
		}
		if last >= 0 && segs[last].Equipment == h.Equipment {
			segs[last].End = h.RecordedAt
		}
		segs = append(segs, model.Segment{
			Equipment: h.Equipment,
			State:     h.State,
			StateType: h.StateType,
			Start:     h.RecordedAt,
		})
	}
	for i := range segs {
		if segs[i].End.IsZero() {
			segs[i].End = windowEnd
		}
	}
	return segs
}

// DurationMinutes is the segment length rounded to a tenth of a minute,
// which is the resolution the timeline tooltips display.
func DurationMinutes(s model.Segment) float64 {
	m := s.End.Sub(s.Start).Minutes()
	return float64(int(m*10+0.5)) / 10
}

// CurrentStates extracts each equipment's most recent state entry along
// with when that entry began, for the live fleet board. The start of the
// current state is the earliest timestamp sharing the latest row's entry
// code, since the feed re-emits a row per elapsed hour of a long state.
func CurrentStates(hours []model.HourRecord) []model.FleetState {
	type latest struct {
		rec   model.HourRecord
		since time.Time
	}
	byEquip := make(map[string]*latest)
	for _, h := range hours {
		if h.Equipment == "" || h.EntryID == "" || h.RecordedAt.IsZero() {
			continue
		}
		l, ok := byEquip[h.Equipment]
		if !ok {
			byEquip[h.Equipment] = &latest{rec: h, since: h.RecordedAt}
			continue
		}
		if h.RecordedAt.After(l.rec.RecordedAt) {
			if h.EntryID != l.rec.EntryID {
				l.since = h.RecordedAt
			}
			l.rec = h
		} else if h.EntryID == l.rec.EntryID && h.RecordedAt.Before(l.since) {
			l.since = h.RecordedAt
		}
	}

	out := make([]model.FleetState, 0, len(byEquip))
	for eq, l := range byEquip {
		out = append(out, model.FleetState{
			Equipment: eq,
			Model:     l.rec.Model,
			State:     l.rec.State,
			StateType: l.rec.StateType,
			Since:     l.since,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Equipment < out[j].Equipment })
	return out
}
