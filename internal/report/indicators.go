package report

import (
	"mining-reports-service/internal/lookup"
	"mining-reports-service/internal/model"
)

// Indicators computes availability, utilization and effective yield per
// equipment model over the hourly state feed:
//
//	calendar  = total hours - out-of-fleet hours
//	available = calendar - maintenance hours
//	worked    = hours in working state types
//
// availability = available/calendar, utilization = worked/available, yield
// = availability * utilization / 100, all published in percent and clamped
// to [0, 100]. States outside every known category still count toward
// calendar time, so an unclassified state depresses utilization but never
// availability. The TOTAL row is the plain mean of the per-model
// percentages; downstream reports depend on that reading.
func Indicators(hours []model.HourRecord, models []string) []model.IndicatorRow {
	filtered := hours
	if len(models) > 0 {
		filtered = filtered[:0:0]
		for _, h := range hours {
			if lookup.Contains(models, h.Model) {
				filtered = append(filtered, h)
			}
		}
	}
	groups := groupBy(filtered, func(h model.HourRecord) string { return h.Model })
	if len(groups) == 0 {
		return nil
	}

	rows := make([]model.IndicatorRow, 0, len(groups)+1)
	for _, m := range sortedKeys(groups) {
		rows = append(rows, reduceIndicators(m, groups[m]))
	}

	total := model.IndicatorRow{Model: "TOTAL"}
	for _, r := range rows {
		total.CalendarHours += r.CalendarHours
		total.MaintenanceHrs += r.MaintenanceHrs
		total.AvailableHours += r.AvailableHours
		total.WorkedHours += r.WorkedHours
		total.Availability += r.Availability
		total.Utilization += r.Utilization
		total.EffectiveYield += r.EffectiveYield
	}
	n := float64(len(rows))
	total.Availability = clampPercent(total.Availability / n)
	total.Utilization = clampPercent(total.Utilization / n)
	total.EffectiveYield = clampPercent(total.EffectiveYield / n)
	return append(rows, total)
}

func reduceIndicators(modelName string, hours []model.HourRecord) model.IndicatorRow {
	row := model.IndicatorRow{Model: modelName}
	var total, outOfFleet float64
	for _, h := range hours {
		total += h.Hours
		switch {
		case h.StateType == lookup.OutOfFleetStateType:
			outOfFleet += h.Hours
		case lookup.Contains(lookup.MaintenanceStates, h.StateType):
			row.MaintenanceHrs += h.Hours
		case lookup.Contains(lookup.WorkingStates, h.StateType):
			row.WorkedHours += h.Hours
		}
	}
	row.CalendarHours = total - outOfFleet
	row.AvailableHours = row.CalendarHours - row.MaintenanceHrs
	if row.CalendarHours > 0 {
		row.Availability = clampPercent(row.AvailableHours / row.CalendarHours * 100)
	}
	if row.AvailableHours > 0 {
		row.Utilization = clampPercent(row.WorkedHours / row.AvailableHours * 100)
	}
	row.EffectiveYield = clampPercent(row.Availability * row.Utilization / 100)
	return row
}

// IndicatorsByEquipmentType groups the feed by equipment type instead of
// model, for the accumulated indicator panel.
func IndicatorsByEquipmentType(hours []model.HourRecord) []model.IndicatorRow {
	groups := groupBy(hours, func(h model.HourRecord) string { return h.EquipmentType })
	if len(groups) == 0 {
		return nil
	}
	rows := make([]model.IndicatorRow, 0, len(groups))
	for _, t := range sortedKeys(groups) {
		rows = append(rows, reduceIndicators(t, groups[t]))
	}
	return rows
}
