package model

import "time"

// TruckReport is the loading-fleet sizing report.
type TruckReport struct {
	Window      DateRange `json:"window"`
	Trucks      Table     `json:"trucks"`
	TotalTrucks int       `json:"total_trucks"`
	Volumes     Table     `json:"volumes"`
	Routes      Table     `json:"routes"`
}

// MovementReport is the period movement report: the most recent shift day
// plus the accumulated range.
type MovementReport struct {
	Window                DateRange     `json:"window"`
	LastDay               Table         `json:"last_day"`
	Accumulated           Table         `json:"accumulated"`
	DailyVolume           []SeriesPoint `json:"daily_volume"`
	TripsPerHour          Table         `json:"trips_per_hour"`
	IndicatorsLastDay     Table         `json:"indicators_last_day"`
	IndicatorsAccumulated Table         `json:"indicators_accumulated"`
}

// RevenueSummary is the measurement-bulletin bottom line.
type RevenueSummary struct {
	Transport  float64 `json:"transport"`
	Extras     float64 `json:"extras"`
	Stoppage   float64 `json:"stoppage"`
	GrandTotal float64 `json:"grand_total"`
}

// BillingReport is the measurement bulletin: banded haul costs, fixed-rate
// extras and stoppage-hour billing.
type BillingReport struct {
	Window     DateRange      `json:"window"`
	OreBands   Table          `json:"ore_bands"`
	WasteBands Table          `json:"waste_bands"`
	ExtraCosts Table          `json:"extra_costs"`
	Stoppages  Table          `json:"stoppages"`
	Revenue    RevenueSummary `json:"revenue"`
}

// DailyReport is the shift-day production panel with pace projection and
// per-fleet indicators.
type DailyReport struct {
	Day          string    `json:"day"`
	Window       DateRange `json:"window"`
	Movement     Table     `json:"movement"`
	TripsPerHour Table     `json:"trips_per_hour"`
	Excavation   Table     `json:"excavation"`
	Haulage      Table     `json:"haulage"`
	Drilling     Table     `json:"drilling"`
}

// TimelineReport carries the Gantt source rows for the dig fleet.
type TimelineReport struct {
	Day      string        `json:"day"`
	Window   DateRange     `json:"window"`
	Segments []TimelineRow `json:"segments"`
}

// TimelineRow is a Segment with its display duration resolved.
type TimelineRow struct {
	Segment
	DurationMinutes float64 `json:"duration_minutes"`
}

// FleetReport is the live equipment board.
type FleetReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Equipment   []FleetState `json:"equipment"`
}
