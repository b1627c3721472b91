package report

import (
	"math"
	"sort"

	"mining-reports-service/internal/lookup"
	"mining-reports-service/internal/model"
)

// WeightedAverage returns sum(value*weight)/sum(weight). When the total
// weight is zero it falls back to the unweighted mean, and an empty input
// yields zero.
func WeightedAverage(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var num, den float64
	for i, v := range values {
		num += v * weights[i]
		den += weights[i]
	}
	if den == 0 {
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}
	return num / den
}

// groupBy buckets records by a key, skipping records whose key is empty.
func groupBy[T any](recs []T, key func(T) string) map[string][]T {
	out := make(map[string][]T)
	for _, r := range recs {
		k := key(r)
		if k == "" {
			continue
		}
		out[k] = append(out[k], r)
	}
	return out
}

func sortedKeys[T any](m map[string][]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sanitize maps NaN and infinities to zero so ratios over empty groups
// never leak into JSON.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// clampPercent keeps a published percentage within [0, 100]. Warehouse hour
// corrections occasionally push raw ratios outside the range.
func clampPercent(v float64) float64 {
	v = sanitize(v)
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// MovementByOperation sums trips, volume and mass per movement operation.
// Rows are ordered by operation name; cycle and haul-distance averages are
// unweighted means over the group's trips.
func MovementByOperation(recs []model.ProductionRecord) []model.MovementRow {
	groups := groupBy(recs, func(r model.ProductionRecord) string { return r.Operation })
	rows := make([]model.MovementRow, 0, len(groups))
	for _, op := range sortedKeys(groups) {
		rows = append(rows, reduceMovement(op, "", "", groups[op]))
	}
	return rows
}

// MovementByRoute aggregates per origin/destination pair within one
// operation. Haul-distance averages are volume-weighted.
func MovementByRoute(recs []model.ProductionRecord) []model.MovementRow {
	groups := groupBy(recs, func(r model.ProductionRecord) string {
		if r.Origin == "" || r.Destination == "" {
			return ""
		}
		return r.Origin + "\x00" + r.Destination
	})
	rows := make([]model.MovementRow, 0, len(groups))
	for _, k := range sortedKeys(groups) {
		grp := groups[k]
		row := reduceMovement(grp[0].Operation, grp[0].Origin, grp[0].Destination, grp)
		loaded := make([]float64, len(grp))
		empty := make([]float64, len(grp))
		weights := make([]float64, len(grp))
		for i, r := range grp {
			loaded[i] = r.DMTLoaded
			empty[i] = r.DMTEmpty
			weights[i] = r.Volume
		}
		row.AvgDMTLoaded = sanitize(WeightedAverage(loaded, weights))
		row.AvgDMTEmpty = sanitize(WeightedAverage(empty, weights))
		rows = append(rows, row)
	}
	return rows
}

// MovementByEquipment sums trips and volume per loading equipment.
func MovementByEquipment(recs []model.ProductionRecord) []model.MovementRow {
	groups := groupBy(recs, func(r model.ProductionRecord) string { return r.Equipment })
	rows := make([]model.MovementRow, 0, len(groups))
	for _, eq := range sortedKeys(groups) {
		row := reduceMovement("", "", "", groups[eq])
		row.Equipment = eq
		rows = append(rows, row)
	}
	return rows
}

// MovementTotal synthesizes the TOTAL row from the same filtered set the
// group rows came from, so it never inherits per-group rounding.
func MovementTotal(recs []model.ProductionRecord) model.MovementRow {
	return reduceMovement("TOTAL", "", "", recs)
}

func reduceMovement(op, origin, dest string, grp []model.ProductionRecord) model.MovementRow {
	row := model.MovementRow{Operation: op, Origin: origin, Destination: dest, Trips: len(grp)}
	var cycle, loaded, empty float64
	for _, r := range grp {
		row.Volume += r.Volume
		row.Mass += r.Mass
		cycle += r.CycleMinutes
		loaded += r.DMTLoaded
		empty += r.DMTEmpty
	}
	if n := float64(len(grp)); n > 0 {
		row.AvgCycleMinutes = cycle / n
		row.AvgDMTLoaded = loaded / n
		row.AvgDMTEmpty = empty / n
	}
	return row
}

// TripsPerHourWorked joins per-equipment trip counts with worked hours from
// the state feed. Equipment with no worked hours reports a zero rate rather
// than dividing by zero; equipment present in only one feed is skipped.
func TripsPerHourWorked(prod []model.ProductionRecord, hours []model.HourRecord) []model.TruckRate {
	trips := groupBy(prod, func(r model.ProductionRecord) string { return r.Equipment })
	worked := make(map[string]float64)
	for _, h := range hours {
		if h.Equipment == "" || !lookup.Contains(lookup.WorkingStates, h.StateType) {
			continue
		}
		worked[h.Equipment] += h.Hours
	}
	rows := make([]model.TruckRate, 0, len(trips))
	for _, eq := range sortedKeys(trips) {
		hrs, ok := worked[eq]
		if !ok {
			continue
		}
		rate := 0.0
		if hrs > 0 {
			rate = float64(len(trips[eq])) / hrs
		}
		rows = append(rows, model.TruckRate{Equipment: eq, Trips: len(trips[eq]), WorkedHours: hrs, TripsPerHour: sanitize(rate)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TripsPerHour < rows[j].TripsPerHour })
	return rows
}

// DailyVolumeSeries sums volume and mass per shift day, ordered by day.
func DailyVolumeSeries(recs []model.ProductionRecord) []model.SeriesPoint {
	byDay := make(map[string]*model.SeriesPoint)
	for _, r := range recs {
		day := midnight(r.ShiftDate)
		k := day.Format("2006-01-02")
		p, ok := byDay[k]
		if !ok {
			p = &model.SeriesPoint{At: day}
			byDay[k] = p
		}
		p.Value += r.Volume
	}
	out := make([]model.SeriesPoint, 0, len(byDay))
	for _, p := range byDay {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}
