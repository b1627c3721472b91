package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClampRangeDefaultsMissingBounds(t *testing.T) {
	f := ReportFilter{}.ClampRange(45, 120)

	assert.False(t, f.Range.From.IsZero())
	assert.False(t, f.Range.To.IsZero())
	assert.InDelta(t, 45*24, f.Range.To.Sub(f.Range.From).Hours(), 1)
}

func TestClampRangeFixesInvertedRange(t *testing.T) {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	f := ReportFilter{Range: DateRange{From: from, To: from.AddDate(0, 0, -5)}}.ClampRange(45, 120)

	assert.Equal(t, from.Add(24*time.Hour), f.Range.To)
}

func TestClampRangeTrimsOversizedRange(t *testing.T) {
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	f := ReportFilter{Range: DateRange{From: to.AddDate(-2, 0, 0), To: to}}.ClampRange(45, 120)

	assert.Equal(t, to.Add(-120*24*time.Hour), f.Range.From)
}

func TestPrincipalAllowsProject(t *testing.T) {
	admin := Principal{UserID: uuid.New(), Role: RoleAdmin}
	assert.True(t, admin.AllowsProject("FAC"))

	viewer := Principal{UserID: uuid.New(), Role: RoleViewer, Projects: []string{"FAC", "FES"}}
	assert.True(t, viewer.AllowsProject("FES"))
	assert.False(t, viewer.AllowsProject("FPB"))
}
