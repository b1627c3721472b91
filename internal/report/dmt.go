package report

import (
	"mining-reports-service/internal/lookup"
	"mining-reports-service/internal/model"
)

// BandedTrip is a haul trip with its corrected distance and resolved band.
// Band is empty when the corrected distance falls outside every band; such
// trips are excluded from banded totals.
type BandedTrip struct {
	Record    model.ProductionRecord
	Corrected float64
	Band      string
}

// CorrectAndBand applies the distance outlier correction and assigns each
// transport trip its billing band.
//
// A recorded loaded-haul distance at or below 50 m, or above 7000 m, is a
// GPS artifact when the trip's origin/destination pair has other
// observations: it is replaced by the pair's mean distance, capped at
// 7000 m. A pair with a single observation keeps its raw value, so a lone
// implausible trip stays unbinned rather than inventing a band for it.
// Plausible distances are never altered no matter what the rest of the
// pair looks like.
func CorrectAndBand(recs []model.ProductionRecord) []BandedTrip {
	type pairStat struct {
		sum float64
		n   int
	}
	pairs := make(map[string]*pairStat)
	key := func(r model.ProductionRecord) string { return r.Origin + "\x00" + r.Destination }
	for _, r := range recs {
		p, ok := pairs[key(r)]
		if !ok {
			p = &pairStat{}
			pairs[key(r)] = p
		}
		p.sum += r.DMTLoaded
		p.n++
	}

	out := make([]BandedTrip, 0, len(recs))
	for _, r := range recs {
		d := r.DMTLoaded
		if d <= lookup.DMTOutlierFloor || d > lookup.DMTOutlierCeil {
			if p := pairs[key(r)]; p.n > 1 {
				d = p.sum / float64(p.n)
				if d > lookup.DMTOutlierCeil {
					d = lookup.DMTOutlierCeil
				}
			}
		}
		out = append(out, BandedTrip{Record: r, Corrected: d, Band: bandFor(d)})
	}
	return out
}

// bandFor resolves a corrected distance to its right-closed band label, or
// "" when the distance falls outside all bands.
func bandFor(d float64) string {
	edges := lookup.DMTBandEdges
	if d < 0 || d > edges[len(edges)-1] {
		return ""
	}
	for i := 1; i < len(edges); i++ {
		if d <= edges[i] {
			return lookup.DMTBandLabels[i-1]
		}
	}
	return ""
}

// BandCosts computes the per-band billed volume and cost for one movement
// operation. Trips are deduplicated on (trip, band) before summing volume,
// since the feed repeats a trip row per dumping event. Unbinned trips are
// skipped. Rows come back in band order, only for bands that had volume.
func BandCosts(trips []BandedTrip, operation string, unitCost map[string]float64) []model.BandCostRow {
	type bucket struct {
		trips  int
		volume float64
	}
	seen := make(map[string]bool)
	buckets := make(map[string]*bucket)
	for _, t := range trips {
		if t.Record.Operation != operation || t.Band == "" {
			continue
		}
		dedup := t.Record.TripID + "\x00" + t.Band
		if seen[dedup] {
			continue
		}
		seen[dedup] = true
		b, ok := buckets[t.Band]
		if !ok {
			b = &bucket{}
			buckets[t.Band] = b
		}
		b.trips++
		b.volume += t.Record.Volume
	}

	rows := make([]model.BandCostRow, 0, len(buckets))
	for _, label := range lookup.DMTBandLabels {
		b, ok := buckets[label]
		if !ok {
			continue
		}
		cost := unitCost[label]
		rows = append(rows, model.BandCostRow{
			Band:     label,
			Trips:    b.trips,
			Volume:   b.volume,
			UnitCost: cost,
			Total:    b.volume * cost,
		})
	}
	return rows
}

// BandCostTotal synthesizes the TOTAL row over the band rows. Volume and
// cost are additive here; the unit cost has no meaningful total.
func BandCostTotal(rows []model.BandCostRow) model.BandCostRow {
	total := model.BandCostRow{Band: "TOTAL"}
	for _, r := range rows {
		total.Trips += r.Trips
		total.Volume += r.Volume
		total.Total += r.Total
	}
	return total
}

// dedupTripVolume sums volume over distinct trips of one operation.
func dedupTripVolume(recs []model.ProductionRecord, operation string) float64 {
	seen := make(map[string]bool)
	var vol float64
	for _, r := range recs {
		if r.Operation != operation || seen[r.TripID] {
			continue
		}
		seen[r.TripID] = true
		vol += r.Volume
	}
	return vol
}
