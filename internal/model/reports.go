package model

import "time"

// MovementRow is one origin/destination/material aggregate of the
// production feed.
type MovementRow struct {
	Origin          string
	Destination     string
	Operation       string
	Equipment       string
	Trips           int
	Volume          float64
	Mass            float64
	AvgCycleMinutes float64
	AvgDMTLoaded    float64
	AvgDMTEmpty     float64
}

// TruckStat carries the per-excavator truck-requirement estimate.
type TruckStat struct {
	Excavator      string
	Trips          int
	AvgCycleMin    float64
	AvgLoadMin     float64
	AvgManeuverMin float64
	TrucksNeeded   int
}

// IndicatorRow holds the fleet indicators for one equipment model. The
// percentage fields are already clamped to [0, 100].
type IndicatorRow struct {
	Model          string
	CalendarHours  float64
	MaintenanceHrs float64
	AvailableHours float64
	WorkedHours    float64
	Availability   float64
	Utilization    float64
	EffectiveYield float64
}

// BandCostRow is the billed distance band for one material class.
type BandCostRow struct {
	Band     string
	Trips    int
	Volume   float64
	UnitCost float64
	Total    float64
}

// ExtraCostRow is a fixed-rate billing line applied to a moved volume
// (loading, spreading).
type ExtraCostRow struct {
	Label    string
	Volume   float64
	UnitCost float64
	Total    float64
}

// StoppageCostRow is the hourly charge for externally caused equipment
// stoppages, priced per model.
type StoppageCostRow struct {
	Model    string
	State    string
	Hours    float64
	HourRate float64
	Total    float64
}

// TruckRate is the trips-per-worked-hour productivity figure for one
// machine.
type TruckRate struct {
	Equipment    string
	Trips        int
	WorkedHours  float64
	TripsPerHour float64
}

// Segment is one contiguous run of an equipment state on the timeline.
type Segment struct {
	Equipment string    `json:"equipment"`
	State     string    `json:"state"`
	StateType string    `json:"state_type"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// FleetState is the latest known state of one machine.
type FleetState struct {
	Equipment string    `json:"equipment"`
	Model     string    `json:"model"`
	State     string    `json:"state"`
	StateType string    `json:"state_type"`
	Since     time.Time `json:"since"`
}

// SeriesPoint is one point of the daily volume chart.
type SeriesPoint struct {
	At    time.Time `json:"at"`
	Value float64   `json:"value"`
}
