package service

import (
	"math"

	"mining-reports-service/internal/model"
	"mining-reports-service/internal/report"
)

// Presentation adapter: typed aggregate rows become model.Table values the
// portal frontend renders directly. All rounding happens here, after every
// total has been computed from raw measures.

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *ReportService) movementTable(title string, recs []model.ProductionRecord, pace *report.Window, days int) model.Table {
	cols := []model.Column{
		{Key: "operation", Label: "Operação", Type: model.ColumnText},
		{Key: "trips", Label: "Viagens", Type: model.ColumnInteger},
		{Key: "volume", Label: "Volume (m³)", Type: model.ColumnNumber},
		{Key: "mass", Label: "Massa (t)", Type: model.ColumnNumber},
	}
	if pace != nil {
		cols = append(cols, model.Column{Key: "pace", Label: "Ritmo 24h (m³)", Type: model.ColumnNumber})
	}

	tbl := model.Table{Title: title, Columns: cols, Rows: []map[string]any{}}
	if len(recs) == 0 {
		return tbl
	}

	rows := report.MovementByOperation(recs)
	rows = append(rows, report.MovementTotal(recs))
	for _, r := range rows {
		label := r.Operation
		row := map[string]any{
			"operation": label,
			"trips":     r.Trips,
			"volume":    round2(r.Volume),
			"mass":      round2(r.Mass),
		}
		if pace != nil {
			row["pace"] = round2(pace.Pace(r.Volume))
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	if days < 1 {
		days = 1
	}
	// The daily target scales with the days covered, so an accumulated
	// table compares against the whole period's goal.
	target := float64(days) * (s.cfg.TargetOreVolume + s.cfg.TargetWasteVolume)
	tbl.Styles = []model.StyleRule{
		{RowLabel: "TOTAL", Background: "#fff9c4", Bold: true},
		{RowLabel: "TOTAL", Column: "volume", Op: "gte", Threshold: target, Color: "rgb(0,55,158)"},
		{RowLabel: "TOTAL", Column: "volume", Op: "lt", Threshold: target, Color: "red"},
	}
	return tbl
}

func trucksTable(stats []model.TruckStat) model.Table {
	tbl := model.Table{
		Title: "Caminhões Indicados por Escavadeira",
		Columns: []model.Column{
			{Key: "excavator", Label: "Escavadeira", Type: model.ColumnText},
			{Key: "trips", Label: "Viagens", Type: model.ColumnInteger},
			{Key: "avg_cycle", Label: "Ciclo Médio (min)", Type: model.ColumnNumber},
			{Key: "avg_loading", Label: "Carregamento (min)", Type: model.ColumnNumber},
			{Key: "avg_maneuver", Label: "Manobra (min)", Type: model.ColumnNumber},
			{Key: "trucks", Label: "Caminhões", Type: model.ColumnInteger},
		},
		Rows: []map[string]any{},
	}
	for _, st := range stats {
		tbl.Rows = append(tbl.Rows, map[string]any{
			"excavator":    st.Excavator,
			"trips":        st.Trips,
			"avg_cycle":    round2(st.AvgCycleMin),
			"avg_loading":  round2(st.AvgLoadMin),
			"avg_maneuver": round2(st.AvgManeuverMin),
			"trucks":       st.TrucksNeeded,
		})
	}
	return tbl
}

func volumesTable(rows []model.MovementRow) model.Table {
	tbl := model.Table{
		Title: "Volume por Escavadeira",
		Columns: []model.Column{
			{Key: "equipment", Label: "Equipamento", Type: model.ColumnText},
			{Key: "trips", Label: "Viagens", Type: model.ColumnInteger},
			{Key: "volume", Label: "Volume (m³)", Type: model.ColumnNumber},
		},
		Rows: []map[string]any{},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, map[string]any{
			"equipment": r.Equipment,
			"trips":     r.Trips,
			"volume":    round2(r.Volume),
		})
	}
	return tbl
}

func routesTable(rows []model.MovementRow) model.Table {
	tbl := model.Table{
		Title: "Detalhe por Origem e Destino",
		Columns: []model.Column{
			{Key: "origin", Label: "Origem", Type: model.ColumnText},
			{Key: "destination", Label: "Destino", Type: model.ColumnText},
			{Key: "operation", Label: "Operação", Type: model.ColumnText},
			{Key: "trips", Label: "Viagens", Type: model.ColumnInteger},
			{Key: "volume", Label: "Volume (m³)", Type: model.ColumnNumber},
			{Key: "dmt_loaded", Label: "DMT Cheio (m)", Type: model.ColumnNumber},
			{Key: "dmt_empty", Label: "DMT Vazio (m)", Type: model.ColumnNumber},
		},
		Rows: []map[string]any{},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, map[string]any{
			"origin":      r.Origin,
			"destination": r.Destination,
			"operation":   r.Operation,
			"trips":       r.Trips,
			"volume":      round2(r.Volume),
			"dmt_loaded":  round2(r.AvgDMTLoaded),
			"dmt_empty":   round2(r.AvgDMTEmpty),
		})
	}
	return tbl
}

func tripsPerHourTable(rows []model.TruckRate) model.Table {
	tbl := model.Table{
		Title: "Viagens por Hora Trabalhada",
		Columns: []model.Column{
			{Key: "equipment", Label: "Equipamento", Type: model.ColumnText},
			{Key: "trips", Label: "Viagens", Type: model.ColumnInteger},
			{Key: "worked_hours", Label: "Horas Trabalhadas", Type: model.ColumnNumber},
			{Key: "trips_per_hour", Label: "Viagens/Hora", Type: model.ColumnNumber},
		},
		Rows: []map[string]any{},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, map[string]any{
			"equipment":      r.Equipment,
			"trips":          r.Trips,
			"worked_hours":   round2(r.WorkedHours),
			"trips_per_hour": round2(r.TripsPerHour),
		})
	}
	return tbl
}

func indicatorsTable(title string, rows []model.IndicatorRow) model.Table {
	tbl := model.Table{
		Title: title,
		Columns: []model.Column{
			{Key: "model", Label: "Modelo", Type: model.ColumnText},
			{Key: "availability", Label: "Disponibilidade (%)", Type: model.ColumnPercentage},
			{Key: "utilization", Label: "Utilização (%)", Type: model.ColumnPercentage},
			{Key: "yield", Label: "Rendimento (%)", Type: model.ColumnPercentage},
		},
		Rows: []map[string]any{},
		Styles: []model.StyleRule{
			{Column: "availability", Op: "gte", Threshold: 80, Color: "green"},
			{Column: "availability", Op: "lt", Threshold: 80, Color: "red"},
			{Column: "utilization", Op: "gte", Threshold: 75, Color: "green"},
			{Column: "utilization", Op: "lt", Threshold: 75, Color: "red"},
			{Column: "yield", Op: "gte", Threshold: 60, Color: "green"},
			{Column: "yield", Op: "lt", Threshold: 60, Color: "red"},
		},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, map[string]any{
			"model":        r.Model,
			"availability": round2(r.Availability),
			"utilization":  round2(r.Utilization),
			"yield":        round2(r.EffectiveYield),
		})
	}
	return tbl
}

func bandCostTable(title string, rows []model.BandCostRow) model.Table {
	tbl := model.Table{
		Title: title,
		Columns: []model.Column{
			{Key: "band", Label: "Faixa de DMT", Type: model.ColumnText},
			{Key: "trips", Label: "Viagens", Type: model.ColumnInteger},
			{Key: "volume", Label: "Volume Total (m³)", Type: model.ColumnNumber},
			{Key: "unit_cost", Label: "Custo Unitário (R$/m³)", Type: model.ColumnCurrency},
			{Key: "total", Label: "Custo Total (R$)", Type: model.ColumnCurrency},
		},
		Rows: []map[string]any{},
	}
	if len(rows) == 0 {
		return tbl
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, map[string]any{
			"band":      r.Band,
			"trips":     r.Trips,
			"volume":    round2(r.Volume),
			"unit_cost": round2(r.UnitCost),
			"total":     round2(r.Total),
		})
	}
	total := report.BandCostTotal(rows)
	tbl.Rows = append(tbl.Rows, map[string]any{
		"band":      total.Band,
		"trips":     total.Trips,
		"volume":    round2(total.Volume),
		"unit_cost": nil,
		"total":     round2(total.Total),
	})
	return tbl
}

func extraCostsTable(rows []model.ExtraCostRow) model.Table {
	tbl := model.Table{
		Title: "Custos Adicionais",
		Columns: []model.Column{
			{Key: "item", Label: "Item", Type: model.ColumnText},
			{Key: "volume", Label: "Volume Total (m³)", Type: model.ColumnNumber},
			{Key: "unit_cost", Label: "Custo Unitário (R$/m³)", Type: model.ColumnCurrency},
			{Key: "total", Label: "Custo Total (R$)", Type: model.ColumnCurrency},
		},
		Rows: []map[string]any{},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, map[string]any{
			"item":      r.Label,
			"volume":    round2(r.Volume),
			"unit_cost": round2(r.UnitCost),
			"total":     round2(r.Total),
		})
	}
	return tbl
}

func stoppagesTable(rows []model.StoppageCostRow) model.Table {
	tbl := model.Table{
		Title: "Faturamento de Horas Paradas (60%)",
		Columns: []model.Column{
			{Key: "model", Label: "Modelo", Type: model.ColumnText},
			{Key: "state", Label: "Estado", Type: model.ColumnText},
			{Key: "hours", Label: "Horas Paradas", Type: model.ColumnNumber},
			{Key: "rate", Label: "Preço Hora (R$)", Type: model.ColumnCurrency},
			{Key: "total", Label: "Custo Total (R$)", Type: model.ColumnCurrency},
		},
		Rows: []map[string]any{},
	}
	if len(rows) == 0 {
		return tbl
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, map[string]any{
			"model": r.Model,
			"state": r.State,
			"hours": round2(r.Hours),
			"rate":  round2(r.HourRate),
			"total": round2(r.Total),
		})
	}
	total := report.StoppageTotal(rows)
	tbl.Rows = append(tbl.Rows, map[string]any{
		"model": total.Model,
		"state": nil,
		"hours": round2(total.Hours),
		"rate":  nil,
		"total": round2(total.Total),
	})
	return tbl
}
