package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mining-reports-service/internal/lookup"
	"mining-reports-service/internal/model"
)

func haulTrip(trip string, dmt, volume float64) model.ProductionRecord {
	return model.ProductionRecord{
		TripID:      trip,
		Origin:      "Cava Sul",
		Destination: "Pilha Oeste",
		Operation:   lookup.OreOperation,
		DMTLoaded:   dmt,
		Volume:      volume,
	}
}

func TestCorrectAndBandLeavesPlausibleDistancesAlone(t *testing.T) {
	trips := CorrectAndBand([]model.ProductionRecord{
		haulTrip("V1", 3000, 10),
		haulTrip("V2", 9500, 10), // outlier in the same pair
		haulTrip("V3", 2800, 10),
	})

	require.Len(t, trips, 3)
	assert.Equal(t, 3000.0, trips[0].Corrected, "plausible distance is never altered")
	assert.Equal(t, "2501-3000", trips[0].Band)
}

func TestCorrectAndBandReplacesOutlierWithPairMean(t *testing.T) {
	trips := CorrectAndBand([]model.ProductionRecord{
		haulTrip("V1", 1000, 10),
		haulTrip("V2", 20, 10), // GPS artifact, pair has company
	})

	require.Len(t, trips, 2)
	assert.InDelta(t, 510.0, trips[1].Corrected, 1e-9) // mean(1000, 20)
	assert.Equal(t, "501-1000", trips[1].Band)
}

func TestCorrectAndBandCapsPairMeanAtCeiling(t *testing.T) {
	trips := CorrectAndBand([]model.ProductionRecord{
		haulTrip("V1", 6900, 10),
		haulTrip("V2", 30000, 10),
	})

	assert.Equal(t, lookup.DMTOutlierCeil, trips[1].Corrected)
	assert.Equal(t, "6501-7000", trips[1].Band)
}

func TestCorrectAndBandSingleObservationStaysUnbinned(t *testing.T) {
	rec := haulTrip("V1", 50000, 10)
	trips := CorrectAndBand([]model.ProductionRecord{rec})

	require.Len(t, trips, 1)
	assert.Equal(t, 50000.0, trips[0].Corrected, "lone implausible trip keeps its raw value")
	assert.Empty(t, trips[0].Band)

	// Unbinned trips are dropped from banded totals, not crashed on.
	rows := BandCosts(trips, lookup.OreOperation, lookup.OreHaulCost)
	assert.Empty(t, rows)
}

func TestBandEdgesAreRightClosed(t *testing.T) {
	assert.Equal(t, "0-500", bandFor(500))
	assert.Equal(t, "501-1000", bandFor(501))
	assert.Equal(t, "0-500", bandFor(0))
	assert.Equal(t, "6501-7000", bandFor(7000))
	assert.Empty(t, bandFor(7000.5))
	assert.Empty(t, bandFor(-1))
}

func TestBandCostsDeduplicatesTripBandPairs(t *testing.T) {
	// The feed repeats a trip row per dumping event; volume counts once
	// per (trip, band).
	trips := CorrectAndBand([]model.ProductionRecord{
		haulTrip("V1", 400, 25),
		haulTrip("V1", 400, 25),
		haulTrip("V2", 400, 25),
	})

	rows := BandCosts(trips, lookup.OreOperation, lookup.OreHaulCost)

	require.Len(t, rows, 1)
	assert.Equal(t, "0-500", rows[0].Band)
	assert.Equal(t, 2, rows[0].Trips)
	assert.InDelta(t, 50.0, rows[0].Volume, 1e-9)
	assert.InDelta(t, 50*lookup.OreHaulCost["0-500"], rows[0].Total, 1e-9)
}

func TestBandCostsFiltersOperation(t *testing.T) {
	waste := haulTrip("V1", 400, 25)
	waste.Operation = lookup.WasteOperation

	rows := BandCosts(CorrectAndBand([]model.ProductionRecord{waste}), lookup.OreOperation, lookup.OreHaulCost)
	assert.Empty(t, rows)
}

func TestBandCostTotal(t *testing.T) {
	rows := []model.BandCostRow{
		{Band: "0-500", Trips: 2, Volume: 50, Total: 545},
		{Band: "501-1000", Trips: 1, Volume: 20, Total: 229},
	}

	total := BandCostTotal(rows)

	assert.Equal(t, "TOTAL", total.Band)
	assert.Equal(t, 3, total.Trips)
	assert.InDelta(t, 70.0, total.Volume, 1e-9)
	assert.InDelta(t, 774.0, total.Total, 1e-9)
}
