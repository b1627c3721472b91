package report

import (
	"math"
	"sort"

	"mining-reports-service/internal/model"
)

// Per-trip averages outside these bounds are dispatch-timer artifacts and
// fall back to the historical defaults.
const (
	defaultLoadingMinutes  = 3.5
	defaultManeuverMinutes = 1.0

	loadingMinMinutes  = 1.0
	loadingMaxMinutes  = 10.0
	maneuverMinMinutes = 5.0 / 60.0
	maneuverMaxMinutes = 5.0
)

const (
	loadingState  = "Carregando"
	maneuverState = "Manobra no Carregamento"
)

// TruckStats estimates the truck requirement per excavator: the mean trip
// cycle divided by how fast the excavator turns a truck around (loading +
// maneuver), rounded up. Loading and maneuver times come from the hourly
// state feed joined by trip code; trips with no usable state rows use the
// fleet defaults so a gap in the feed never zeroes the estimate.
func TruckStats(prod []model.ProductionRecord, hours []model.HourRecord) []model.TruckStat {
	if len(prod) == 0 {
		return nil
	}

	byTrip := make(map[string][]model.HourRecord)
	for _, h := range hours {
		if h.TripID == "" {
			continue
		}
		if h.State != loadingState && h.State != maneuverState {
			continue
		}
		byTrip[h.TripID] = append(byTrip[h.TripID], h)
	}

	type acc struct {
		cycleSum    float64
		cycleN      int
		loadSum     float64
		maneuverSum float64
		tripN       int
		seenTrips   map[string]bool
	}
	byEquip := make(map[string]*acc)
	for _, r := range prod {
		if r.Equipment == "" {
			continue
		}
		a, ok := byEquip[r.Equipment]
		if !ok {
			a = &acc{seenTrips: make(map[string]bool)}
			byEquip[r.Equipment] = a
		}
		a.cycleSum += r.CycleMinutes
		a.cycleN++
		if a.seenTrips[r.TripID] {
			continue
		}
		a.seenTrips[r.TripID] = true
		load, maneuver := tripTimes(byTrip[r.TripID])
		a.loadSum += load
		a.maneuverSum += maneuver
		a.tripN++
	}

	stats := make([]model.TruckStat, 0, len(byEquip))
	for eq, a := range byEquip {
		s := model.TruckStat{Excavator: eq, Trips: a.tripN}
		s.AvgCycleMin = a.cycleSum / float64(a.cycleN)
		s.AvgLoadMin = a.loadSum / float64(a.tripN)
		s.AvgManeuverMin = a.maneuverSum / float64(a.tripN)
		s.TrucksNeeded = trucksNeeded(s.AvgCycleMin, s.AvgLoadMin, s.AvgManeuverMin)
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Excavator < stats[j].Excavator })
	return stats
}

// trucksNeeded rounds the cycle/turnaround ratio up. A non-positive
// turnaround time means the state feed was unusable; report zero rather
// than dividing by it.
func trucksNeeded(cycle, load, maneuver float64) int {
	denom := load + maneuver
	if denom <= 0 {
		return 0
	}
	return int(math.Ceil(cycle / denom))
}

// TrucksIndicated sums the per-excavator estimates into the headline figure.
func TrucksIndicated(stats []model.TruckStat) int {
	total := 0
	for _, s := range stats {
		total += s.TrucksNeeded
	}
	return total
}

// tripTimes averages one trip's loading and maneuver minutes, falling back
// to the defaults when a state is missing or its mean is implausible.
func tripTimes(rows []model.HourRecord) (load, maneuver float64) {
	load, maneuver = defaultLoadingMinutes, defaultManeuverMinutes
	var loadSum, maneuverSum float64
	var loadN, maneuverN int
	for _, h := range rows {
		switch h.State {
		case loadingState:
			loadSum += h.Minutes
			loadN++
		case maneuverState:
			maneuverSum += h.Minutes
			maneuverN++
		}
	}
	if loadN > 0 {
		if v := loadSum / float64(loadN); v >= loadingMinMinutes && v <= loadingMaxMinutes {
			load = v
		}
	}
	if maneuverN > 0 {
		if v := maneuverSum / float64(maneuverN); v >= maneuverMinMinutes && v <= maneuverMaxMinutes {
			maneuver = v
		}
	}
	return load, maneuver
}
