package report

import (
	"sort"

	"mining-reports-service/internal/lookup"
	"mining-reports-service/internal/model"
)

// ExtraCosts computes the fixed-rate billing lines: ore loading, waste
// loading and waste spreading, each over the deduplicated moved volume of
// its operation, independent of distance banding.
func ExtraCosts(recs []model.ProductionRecord) []model.ExtraCostRow {
	oreVol := dedupTripVolume(recs, lookup.OreOperation)
	wasteVol := dedupTripVolume(recs, lookup.WasteOperation)
	return []model.ExtraCostRow{
		{Label: lookup.OreLoadingLabel, Volume: oreVol, UnitCost: lookup.OreLoadingCost, Total: oreVol * lookup.OreLoadingCost},
		{Label: lookup.WasteLoadingLabel, Volume: wasteVol, UnitCost: lookup.WasteLoadingCost, Total: wasteVol * lookup.WasteLoadingCost},
		{Label: lookup.WasteSpreadingLabel, Volume: wasteVol, UnitCost: lookup.WasteSpreadingCost, Total: wasteVol * lookup.WasteSpreadingCost},
	}
}

// StoppageCosts charges the billable externally caused stoppage hours per
// equipment model at the contracted 60% hourly rate. A model missing from
// the rate table bills at zero; the caller logs the gap.
func StoppageCosts(hours []model.HourRecord) []model.StoppageCostRow {
	type key struct{ m, s string }
	sums := make(map[key]float64)
	for _, h := range hours {
		if !lookup.Contains(lookup.BillableStoppageStates, h.State) {
			continue
		}
		sums[key{h.Model, h.State}] += h.Hours
	}
	rows := make([]model.StoppageCostRow, 0, len(sums))
	for k, hrs := range sums {
		rate := lookup.StoppageHourRate[k.m]
		rows = append(rows, model.StoppageCostRow{
			Model:    k.m,
			State:    k.s,
			Hours:    hrs,
			HourRate: rate,
			Total:    hrs * rate,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Model != rows[j].Model {
			return rows[i].Model < rows[j].Model
		}
		return rows[i].State < rows[j].State
	})
	return rows
}

// StoppageTotal sums the billed hours and amounts across models.
func StoppageTotal(rows []model.StoppageCostRow) model.StoppageCostRow {
	total := model.StoppageCostRow{Model: "TOTAL"}
	for _, r := range rows {
		total.Hours += r.Hours
		total.Total += r.Total
	}
	return total
}

// Revenue is the measurement-bulletin summary.
type Revenue struct {
	Transport float64
	Extras    float64
	Stoppage  float64
}

func (r Revenue) GrandTotal() float64 {
	return r.Transport + r.Extras + r.Stoppage
}

// TransportRevenue totals banded ore and waste costs plus the fixed-rate
// extras, then adds stoppage billing for the period summary.
func TransportRevenue(ore, waste []model.BandCostRow, extras []model.ExtraCostRow, stoppage []model.StoppageCostRow) Revenue {
	var rev Revenue
	for _, r := range ore {
		rev.Transport += r.Total
	}
	for _, r := range waste {
		rev.Transport += r.Total
	}
	for _, r := range extras {
		rev.Extras += r.Total
	}
	for _, r := range stoppage {
		rev.Stoppage += r.Total
	}
	return rev
}
