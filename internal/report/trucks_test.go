package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mining-reports-service/internal/model"
)

func TestTruckStatsEndToEnd(t *testing.T) {
	prod := []model.ProductionRecord{
		{TripID: "V1", Equipment: "EXC-1", CycleMinutes: 5},
		{TripID: "V2", Equipment: "EXC-1", CycleMinutes: 6},
		{TripID: "V3", Equipment: "EXC-1", CycleMinutes: 7},
	}
	var hours []model.HourRecord
	for _, trip := range []string{"V1", "V2", "V3"} {
		hours = append(hours,
			model.HourRecord{TripID: trip, State: "Carregando", Minutes: 3.0},
			model.HourRecord{TripID: trip, State: "Manobra no Carregamento", Minutes: 0.8},
		)
	}

	stats := TruckStats(prod, hours)

	require.Len(t, stats, 1)
	s := stats[0]
	assert.Equal(t, "EXC-1", s.Excavator)
	assert.InDelta(t, 6.0, s.AvgCycleMin, 1e-9)
	assert.InDelta(t, 3.0, s.AvgLoadMin, 1e-9)
	assert.InDelta(t, 0.8, s.AvgManeuverMin, 1e-9)
	assert.Equal(t, 2, s.TrucksNeeded) // ceil(6.0 / 3.8)
	assert.Equal(t, 2, TrucksIndicated(stats))
}

func TestTrucksNeededZeroDenominator(t *testing.T) {
	assert.Zero(t, trucksNeeded(6, 0, 0))
	assert.Zero(t, trucksNeeded(6, -3.5, 1))
}

func TestTruckStatsFallsBackOnMissingStateRows(t *testing.T) {
	prod := []model.ProductionRecord{
		{TripID: "V1", Equipment: "EXC-1", CycleMinutes: 9},
	}

	stats := TruckStats(prod, nil)

	require.Len(t, stats, 1)
	assert.InDelta(t, 3.5, stats[0].AvgLoadMin, 1e-9)
	assert.InDelta(t, 1.0, stats[0].AvgManeuverMin, 1e-9)
	assert.Equal(t, 2, stats[0].TrucksNeeded) // ceil(9 / 4.5)
}

func TestTruckStatsClampsImplausibleStateTimes(t *testing.T) {
	prod := []model.ProductionRecord{{TripID: "V1", Equipment: "EXC-1", CycleMinutes: 7.6}}
	hours := []model.HourRecord{
		{TripID: "V1", State: "Carregando", Minutes: 45},              // above 10 min cap
		{TripID: "V1", State: "Manobra no Carregamento", Minutes: 12}, // above 5 min cap
	}

	stats := TruckStats(prod, hours)

	require.Len(t, stats, 1)
	assert.InDelta(t, 3.5, stats[0].AvgLoadMin, 1e-9)
	assert.InDelta(t, 1.0, stats[0].AvgManeuverMin, 1e-9)
}

func TestTruckStatsEmptyProduction(t *testing.T) {
	assert.Empty(t, TruckStats(nil, nil))
}
