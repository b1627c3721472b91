package report

import (
	"time"

	"mining-reports-service/internal/model"
)

// Timestamp layouts the warehouse is known to emit. All are naive; parsed
// values are localized exactly once, into loc.
var timestampLayouts = []string{
	"02/01/2006 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2006-01-02",
}

// ParseTimestamp parses a warehouse timestamp string in loc. The zero time
// and false signal an unparseable or empty value.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeProduction converts raw production rows into typed records
// filtered to the window. Rows without a parseable shift timestamp or with
// an empty trip code are dropped; NULL numeric columns become zero.
func NormalizeProduction(raw []model.RawProductionRow, w Window, loc *time.Location) []model.ProductionRecord {
	out := make([]model.ProductionRecord, 0, len(raw))
	for _, r := range raw {
		if r.TripID == "" {
			continue
		}
		shift, ok := ParseTimestamp(r.ShiftDate, loc)
		if !ok || !w.Contains(shift) {
			continue
		}
		rec := model.ProductionRecord{
			TripID:         r.TripID,
			Origin:         r.Origin,
			Destination:    r.Destination,
			Operation:      r.Operation,
			OperationClass: r.OperationClass,
			Equipment:      r.Equipment,
			CycleMinutes:   deref(r.CycleMinutes),
			Volume:         deref(r.Volume),
			Mass:           deref(r.Mass),
			DMTLoaded:      deref(r.DMTLoaded),
			DMTEmpty:       deref(r.DMTEmpty),
			SpeedLoaded:    deref(r.SpeedLoaded),
			SpeedEmpty:     deref(r.SpeedEmpty),
			ShiftDate:      shift,
		}
		if end, ok := ParseTimestamp(r.EndedAt, loc); ok {
			rec.EndedAt = end
		}
		out = append(out, rec)
	}
	return out
}

// NormalizeHours converts raw hourly-state rows into typed records filtered
// to the window by the state-entry timestamp, falling back to the shift
// date when the entry timestamp is absent.
func NormalizeHours(raw []model.RawHourRow, w Window, loc *time.Location) []model.HourRecord {
	out := make([]model.HourRecord, 0, len(raw))
	for _, r := range raw {
		recorded, okRec := ParseTimestamp(r.RecordedAt, loc)
		shift, okShift := ParseTimestamp(r.ShiftDate, loc)
		anchor, ok := recorded, okRec
		if !ok {
			anchor, ok = shift, okShift
		}
		if !ok || !w.Contains(anchor) {
			continue
		}
		rec := model.HourRecord{
			Equipment:     r.Equipment,
			Model:         r.Model,
			EquipmentType: r.EquipmentType,
			State:         r.State,
			StateType:     r.StateType,
			TripID:        r.TripID,
			EntryID:       r.EntryID,
			Hours:         deref(r.Hours),
			Minutes:       deref(r.Minutes),
		}
		if okRec {
			rec.RecordedAt = recorded
		}
		if okShift {
			rec.ShiftDate = shift
		}
		out = append(out, rec)
	}
	return out
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
