package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mining-reports-service/internal/model"
)

func testWindow(start, end string) Window {
	s, _ := time.Parse("2006-01-02 15:04:05", start)
	e, _ := time.Parse("2006-01-02 15:04:05", end)
	return Window{Start: s, End: e, Mode: ModeRange}
}

func f(v float64) *float64 { return &v }

func TestNormalizeProductionParsesWarehouseTimestamps(t *testing.T) {
	w := testWindow("2025-03-01 00:00:00", "2025-03-02 00:00:00")
	raw := []model.RawProductionRow{
		{TripID: "V1", Operation: "Movimentação Minério", Volume: f(42), ShiftDate: "01/03/2025 13:45:00"},
		{TripID: "V2", Operation: "Movimentação Minério", Volume: f(10), ShiftDate: "2025-03-01T08:00:00"},
	}

	recs := NormalizeProduction(raw, w, time.UTC)

	require.Len(t, recs, 2)
	assert.Equal(t, time.Date(2025, 3, 1, 13, 45, 0, 0, time.UTC), recs[0].ShiftDate)
	assert.Equal(t, 42.0, recs[0].Volume)
}

func TestNormalizeProductionDropsBadRows(t *testing.T) {
	w := testWindow("2025-03-01 00:00:00", "2025-03-02 00:00:00")
	raw := []model.RawProductionRow{
		{TripID: "", ShiftDate: "01/03/2025 10:00:00"},            // no trip code
		{TripID: "V1", ShiftDate: "not-a-date"},                   // unparseable
		{TripID: "V2", ShiftDate: "05/03/2025 10:00:00"},          // outside window
		{TripID: "V3", ShiftDate: "01/03/2025 10:00:00"},          // kept
	}

	recs := NormalizeProduction(raw, w, time.UTC)

	require.Len(t, recs, 1)
	assert.Equal(t, "V3", recs[0].TripID)
}

func TestNormalizeProductionEmptyInEmptyOut(t *testing.T) {
	w := testWindow("2025-03-01 00:00:00", "2025-03-02 00:00:00")
	assert.Empty(t, NormalizeProduction(nil, w, time.UTC))
	assert.Empty(t, NormalizeProduction([]model.RawProductionRow{}, w, time.UTC))
}

func TestNormalizeHoursFallsBackToShiftDate(t *testing.T) {
	w := testWindow("2025-03-01 00:00:00", "2025-03-02 00:00:00")
	raw := []model.RawHourRow{
		{Equipment: "EX-01", State: "Operando", Hours: f(1), RecordedAt: "", ShiftDate: "01/03/2025 08:00:00"},
		{Equipment: "EX-02", State: "Operando", Hours: f(1), RecordedAt: "garbage", ShiftDate: "garbage"},
	}

	recs := NormalizeHours(raw, w, time.UTC)

	require.Len(t, recs, 1)
	assert.Equal(t, "EX-01", recs[0].Equipment)
	assert.True(t, recs[0].RecordedAt.IsZero())
	assert.False(t, recs[0].ShiftDate.IsZero())
}

func TestNormalizeLocalizesNaiveTimestampsOnce(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	w := Window{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, loc),
		End:   time.Date(2025, 3, 2, 0, 0, 0, 0, loc),
		Mode:  ModeRange,
	}
	raw := []model.RawProductionRow{{TripID: "V1", ShiftDate: "01/03/2025 22:30:00"}}

	recs := NormalizeProduction(raw, w, loc)

	require.Len(t, recs, 1)
	assert.Equal(t, loc, recs[0].ShiftDate.Location())
	assert.Equal(t, 22, recs[0].ShiftDate.Hour())
}
