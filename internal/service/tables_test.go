package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mining-reports-service/internal/config"
	"mining-reports-service/internal/lookup"
	"mining-reports-service/internal/model"
	"mining-reports-service/internal/report"
)

func testService() *ReportService {
	return &ReportService{
		loc: time.UTC,
		cfg: config.ReportsConfig{
			TargetOreVolume:   5500,
			TargetWasteVolume: 23000,
		},
	}
}

func TestMovementTableAppendsTotalAndTargetStyles(t *testing.T) {
	s := testService()
	recs := []model.ProductionRecord{
		{TripID: "V1", Operation: lookup.OreOperation, Volume: 100.345, Mass: 150},
		{TripID: "V2", Operation: lookup.WasteOperation, Volume: 200.335, Mass: 310},
	}

	tbl := s.movementTable("Movimentação", recs, nil, 1)

	require.Len(t, tbl.Rows, 3)
	total := tbl.Rows[2]
	assert.Equal(t, "TOTAL", total["operation"])
	assert.Equal(t, 300.68, total["volume"])

	require.Len(t, tbl.Styles, 3)
	highlight := tbl.Styles[0]
	assert.Equal(t, "TOTAL", highlight.RowLabel)
	assert.Empty(t, highlight.Op, "the highlight applies unconditionally")
	assert.True(t, highlight.Bold)
	assert.Equal(t, "#fff9c4", highlight.Background)
	assert.Equal(t, "TOTAL", tbl.Styles[1].RowLabel)
	assert.Equal(t, 28500.0, tbl.Styles[1].Threshold)
}

func TestMovementTableScalesTargetByDays(t *testing.T) {
	s := testService()
	recs := []model.ProductionRecord{
		{TripID: "V1", Operation: lookup.OreOperation, Volume: 40000},
	}

	tbl := s.movementTable("Movimentação - Acumulado", recs, nil, 5)

	// 5 days of 5500 + 23000; a week's worth of volume must not be judged
	// against a single day's goal.
	require.Len(t, tbl.Styles, 3)
	assert.Equal(t, 142500.0, tbl.Styles[1].Threshold)
	assert.Equal(t, 142500.0, tbl.Styles[2].Threshold)
}

func TestMovementTableEmptyInputKeepsColumns(t *testing.T) {
	s := testService()

	tbl := s.movementTable("Movimentação", nil, nil, 1)

	assert.NotEmpty(t, tbl.Columns)
	assert.Empty(t, tbl.Rows)
}

func TestMovementTablePaceColumn(t *testing.T) {
	s := testService()
	w := report.Window{
		Start: time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC),
		Mode:  report.ModeShiftToNow,
	}
	recs := []model.ProductionRecord{
		{TripID: "V1", Operation: lookup.OreOperation, Volume: 1200},
	}

	tbl := s.movementTable("Movimentação do Dia", recs, &w, 1)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, 2400.0, tbl.Rows[0]["pace"])
}

func TestBandCostTableAppendsTotalWithoutUnitCost(t *testing.T) {
	rows := []model.BandCostRow{
		{Band: "0-500", Trips: 2, Volume: 50, UnitCost: 10.9517831011859, Total: 547.589155059295},
		{Band: "501-1000", Trips: 1, Volume: 20, UnitCost: 11.4656811042058, Total: 229.313622084116},
	}

	tbl := bandCostTable("Custos", rows)

	require.Len(t, tbl.Rows, 3)
	total := tbl.Rows[2]
	assert.Equal(t, "TOTAL", total["band"])
	assert.Nil(t, total["unit_cost"])
	assert.Equal(t, 776.9, total["total"])
}

func TestIndicatorsTableStyleThresholds(t *testing.T) {
	tbl := indicatorsTable("Indicadores", []model.IndicatorRow{
		{Model: "CAT 352", Availability: 81.234, Utilization: 70, EffectiveYield: 56.8638},
	})

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, 81.23, tbl.Rows[0]["availability"])

	require.Len(t, tbl.Styles, 6)
	assert.Equal(t, 80.0, tbl.Styles[0].Threshold)
	assert.Equal(t, 75.0, tbl.Styles[2].Threshold)
	assert.Equal(t, 60.0, tbl.Styles[4].Threshold)
}

func TestStoppagesTableTotalRow(t *testing.T) {
	rows := []model.StoppageCostRow{
		{Model: "VOLVO FMX 500 8X4", State: "Detonação", Hours: 2, HourRate: 201.128164742646, Total: 402.256329485292},
	}

	tbl := stoppagesTable(rows)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "TOTAL", tbl.Rows[1]["model"])
	assert.Equal(t, 402.26, tbl.Rows[1]["total"])
}

func TestLastShiftDayAndSameDay(t *testing.T) {
	d1 := time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	recs := []model.ProductionRecord{
		{TripID: "V1", ShiftDate: d1},
		{TripID: "V2", ShiftDate: d2},
		{TripID: "V3", ShiftDate: d1},
	}

	last := lastShiftDay(recs)

	assert.True(t, sameDay(last, d2))
	assert.False(t, sameDay(last, d1))
}

func TestMovementOnlyFilters(t *testing.T) {
	recs := []model.ProductionRecord{
		{TripID: "V1", Operation: lookup.OreOperation},
		{TripID: "V2", Operation: "Perfuração"},
		{TripID: "V3", Operation: lookup.WasteOperation},
	}

	kept := movementOnly(recs)

	require.Len(t, kept, 2)
	assert.Equal(t, "V1", kept[0].TripID)
	assert.Equal(t, "V3", kept[1].TripID)
}
