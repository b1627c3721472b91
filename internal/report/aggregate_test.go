package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mining-reports-service/internal/model"
)

func TestWeightedAverage(t *testing.T) {
	got := WeightedAverage([]float64{100, 200}, []float64{1, 3})
	assert.InDelta(t, 175.0, got, 1e-9)
}

func TestWeightedAverageZeroWeightFallsBackToMean(t *testing.T) {
	got := WeightedAverage([]float64{100, 200, 300}, []float64{0, 0, 0})
	assert.InDelta(t, 200.0, got, 1e-9)
}

func TestWeightedAverageEmpty(t *testing.T) {
	assert.Zero(t, WeightedAverage(nil, nil))
}

func TestMovementTotalMatchesRawSum(t *testing.T) {
	// Volumes chosen so per-group rounding would drift from the raw sum.
	recs := []model.ProductionRecord{
		{TripID: "V1", Operation: "Movimentação Minério", Volume: 10.004, Mass: 1.1},
		{TripID: "V2", Operation: "Movimentação Minério", Volume: 10.004, Mass: 1.1},
		{TripID: "V3", Operation: "Movimentação Estéril", Volume: 20.004, Mass: 2.2},
	}

	total := MovementTotal(recs)

	var rawVolume float64
	for _, r := range recs {
		rawVolume += r.Volume
	}
	assert.Equal(t, rawVolume, total.Volume)
	assert.Equal(t, 3, total.Trips)
}

func TestMovementByOperationSkipsEmptyDimension(t *testing.T) {
	recs := []model.ProductionRecord{
		{TripID: "V1", Operation: "Movimentação Minério", Volume: 5},
		{TripID: "V2", Operation: "", Volume: 7},
	}

	rows := MovementByOperation(recs)

	require.Len(t, rows, 1)
	assert.Equal(t, "Movimentação Minério", rows[0].Operation)
}

func TestMovementByRouteWeightsDMTByVolume(t *testing.T) {
	recs := []model.ProductionRecord{
		{TripID: "V1", Origin: "Cava Norte", Destination: "Britagem", Operation: "Movimentação Minério", Volume: 10, DMTLoaded: 1000},
		{TripID: "V2", Origin: "Cava Norte", Destination: "Britagem", Operation: "Movimentação Minério", Volume: 30, DMTLoaded: 2000},
	}

	rows := MovementByRoute(recs)

	require.Len(t, rows, 1)
	assert.InDelta(t, 1750.0, rows[0].AvgDMTLoaded, 1e-9)
}

func TestTripsPerHourWorked(t *testing.T) {
	prod := []model.ProductionRecord{
		{TripID: "V1", Equipment: "CM-01"},
		{TripID: "V2", Equipment: "CM-01"},
		{TripID: "V3", Equipment: "CM-02"},
	}
	hours := []model.HourRecord{
		{Equipment: "CM-01", StateType: "Operando", Hours: 4},
		{Equipment: "CM-01", StateType: "Manutenção Corretiva", Hours: 3},
		{Equipment: "CM-02", StateType: "Operando", Hours: 0},
	}

	rows := TripsPerHourWorked(prod, hours)

	require.Len(t, rows, 2)
	// Sorted ascending by rate; CM-02 has zero worked hours so reports 0.
	assert.Equal(t, "CM-02", rows[0].Equipment)
	assert.Zero(t, rows[0].TripsPerHour)
	assert.Equal(t, "CM-01", rows[1].Equipment)
	assert.InDelta(t, 0.5, rows[1].TripsPerHour, 1e-9)
}

func TestEmptyInputsProduceEmptyAggregates(t *testing.T) {
	assert.Empty(t, MovementByOperation(nil))
	assert.Empty(t, MovementByRoute(nil))
	assert.Empty(t, TripsPerHourWorked(nil, nil))
	assert.Empty(t, DailyVolumeSeries(nil))
}
