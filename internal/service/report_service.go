package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"mining-reports-service/internal/config"
	"mining-reports-service/internal/lookup"
	"mining-reports-service/internal/model"
	"mining-reports-service/internal/report"
	"mining-reports-service/internal/repository"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
)

// ReportService orchestrates the report pipeline: resolve the window,
// fetch and normalize the feeds, aggregate, and shape the result into
// presentation tables.
type ReportService struct {
	warehouses *repository.Registry
	loc        *time.Location
	cfg        config.ReportsConfig
	log        zerolog.Logger
	now        func() time.Time
}

func NewReportService(warehouses *repository.Registry, loc *time.Location, cfg config.ReportsConfig, log zerolog.Logger) *ReportService {
	return &ReportService{
		warehouses: warehouses,
		loc:        loc,
		cfg:        cfg,
		log:        log.With().Str("component", "reports").Logger(),
		now:        time.Now,
	}
}

func (s *ReportService) nowLocal() time.Time {
	return s.now().In(s.loc)
}

// fetchWindow pulls both feeds for a window and normalizes them.
func (s *ReportService) fetchWindow(ctx context.Context, repo *repository.WarehouseRepository, w report.Window) ([]model.ProductionRecord, []model.HourRecord) {
	prod := report.NormalizeProduction(repo.FetchProduction(ctx, w.Start, w.End), w, s.loc)
	hours := report.NormalizeHours(repo.FetchHours(ctx, w.Start, w.End), w, s.loc)
	return prod, hours
}

// GetTruckReport sizes the haul fleet per excavator over the rolling
// window.
func (s *ReportService) GetTruckReport(ctx context.Context, principal model.Principal, operation string) (*model.TruckReport, error) {
	_ = principal

	w := report.Rolling(s.nowLocal(), s.cfg.RollingWindowHours)
	prod, hours := s.fetchWindow(ctx, s.warehouses.Primary(), w)

	prod = filterProduction(prod, func(r model.ProductionRecord) bool {
		if operation != "" && r.Operation != operation {
			return false
		}
		return true
	})

	stats := report.TruckStats(prod, hours)
	routes := report.MovementByRoute(prod)

	return &model.TruckReport{
		Window:      model.DateRange{From: w.Start, To: w.End},
		Trucks:      trucksTable(stats),
		TotalTrucks: report.TrucksIndicated(stats),
		Volumes:     volumesTable(report.MovementByEquipment(prod)),
		Routes:      routesTable(routes),
	}, nil
}

// GetMovementReport builds the period movement panel: the most recent
// shift day plus the accumulated range, daily series, trip rates and
// indicators grouped by equipment type.
func (s *ReportService) GetMovementReport(ctx context.Context, principal model.Principal, filter model.ReportFilter) (*model.MovementReport, error) {
	_ = principal
	return s.movementReport(ctx, s.warehouses.Primary(), filter)
}

// GetProjectMovementReport is the movement panel against a secondary
// mine-site warehouse.
func (s *ReportService) GetProjectMovementReport(ctx context.Context, principal model.Principal, code string, filter model.ReportFilter) (*model.MovementReport, error) {
	if !principal.AllowsProject(code) {
		return nil, ErrPermissionDenied
	}
	repo, err := s.warehouses.ForProject(code)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownProject) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.movementReport(ctx, repo, filter)
}

func (s *ReportService) movementReport(ctx context.Context, repo *repository.WarehouseRepository, filter model.ReportFilter) (*model.MovementReport, error) {
	filter = filter.ClampRange(s.cfg.DefaultRangeDays, s.cfg.MaxRangeDays)
	w := report.Range(filter.Range.From.In(s.loc), filter.Range.To.In(s.loc))

	prod, hours := s.fetchWindow(ctx, repo, w)
	prod = movementOnly(prod)
	prod = filterProduction(prod, func(r model.ProductionRecord) bool {
		if filter.Operation != "" && r.Operation != filter.Operation {
			return false
		}
		if filter.Equipment != "" && r.Equipment != filter.Equipment {
			return false
		}
		return true
	})
	if filter.Equipment != "" {
		hours = filterHours(hours, func(h model.HourRecord) bool { return h.Equipment == filter.Equipment })
	}

	lastDay := lastShiftDay(prod)
	lastProd := filterProduction(prod, func(r model.ProductionRecord) bool { return sameDay(r.ShiftDate, lastDay) })
	lastHours := filterHours(hours, func(h model.HourRecord) bool { return sameDay(h.ShiftDate, lastDay) })

	resp := &model.MovementReport{
		Window:                model.DateRange{From: w.Start, To: w.End},
		LastDay:               s.movementTable("Movimentação - Último Dia", lastProd, nil, 1),
		Accumulated:           s.movementTable("Movimentação - Acumulado", prod, nil, w.Days()),
		DailyVolume:           report.DailyVolumeSeries(prod),
		TripsPerHour:          tripsPerHourTable(report.TripsPerHourWorked(prod, hours)),
		IndicatorsLastDay:     indicatorsTable("Indicadores - Último Dia", report.IndicatorsByEquipmentType(lastHours)),
		IndicatorsAccumulated: indicatorsTable("Indicadores - Acumulado", report.IndicatorsByEquipmentType(hours)),
	}
	return resp, nil
}

// GetBillingReport assembles the measurement bulletin for a range.
func (s *ReportService) GetBillingReport(ctx context.Context, principal model.Principal, filter model.ReportFilter) (*model.BillingReport, error) {
	_ = principal

	filter = filter.ClampRange(s.cfg.DefaultRangeDays, s.cfg.MaxRangeDays)
	w := report.Range(filter.Range.From.In(s.loc), filter.Range.To.In(s.loc))

	prod, hours := s.fetchWindow(ctx, s.warehouses.Primary(), w)
	haul := filterProduction(prod, func(r model.ProductionRecord) bool {
		return r.OperationClass == lookup.TransportOperationClass
	})

	banded := report.CorrectAndBand(haul)
	oreBands := report.BandCosts(banded, lookup.OreOperation, lookup.OreHaulCost)
	wasteBands := report.BandCosts(banded, lookup.WasteOperation, lookup.WasteHaulCost)
	extras := report.ExtraCosts(haul)
	stoppages := report.StoppageCosts(hours)
	s.warnUnpricedModels(stoppages)
	revenue := report.TransportRevenue(oreBands, wasteBands, extras, stoppages)

	return &model.BillingReport{
		Window:     model.DateRange{From: w.Start, To: w.End},
		OreBands:   bandCostTable("Custos de Movimentação - Minério", oreBands),
		WasteBands: bandCostTable("Custos de Movimentação - Estéril", wasteBands),
		ExtraCosts: extraCostsTable(extras),
		Stoppages:  stoppagesTable(stoppages),
		Revenue: model.RevenueSummary{
			Transport:  round2(revenue.Transport),
			Extras:     round2(revenue.Extras),
			Stoppage:   round2(revenue.Stoppage),
			GrandTotal: round2(revenue.GrandTotal()),
		},
	}, nil
}

// GetDailyReport is the shift-day panel: movement with the pace
// projection, trip rates and indicators per fleet group.
func (s *ReportService) GetDailyReport(ctx context.Context, principal model.Principal, day string) (*model.DailyReport, error) {
	_ = principal

	now := s.nowLocal()
	var w report.Window
	switch day {
	case "yesterday":
		w = report.Yesterday(now)
	default:
		day = "today"
		w = report.ShiftToNow(now, s.cfg.ShiftStartHour)
	}

	prod, hours := s.fetchWindow(ctx, s.warehouses.Primary(), w)
	prod = movementOnly(prod)

	pace := w

	return &model.DailyReport{
		Day:          day,
		Window:       model.DateRange{From: w.Start, To: w.End},
		Movement:     s.movementTable("Movimentação do Dia", prod, &pace, 1),
		TripsPerHour: tripsPerHourTable(report.TripsPerHourWorked(prod, hours)),
		Excavation:   indicatorsTable("Indicadores - Escavação", report.Indicators(hours, lookup.ExcavationModels)),
		Haulage:      indicatorsTable("Indicadores - Transporte", report.Indicators(hours, lookup.TransportModels)),
		Drilling:     indicatorsTable("Indicadores - Perfuração", report.Indicators(hours, lookup.DrillingModels)),
	}, nil
}

// GetTimelineReport returns the dig-fleet state segments for today or
// yesterday, optionally narrowed to one machine.
func (s *ReportService) GetTimelineReport(ctx context.Context, principal model.Principal, day, equipment string) (*model.TimelineReport, error) {
	_ = principal

	now := s.nowLocal()
	var w report.Window
	switch day {
	case "yesterday":
		w = report.Yesterday(now)
	default:
		day = "today"
		w = report.Today(now)
	}

	_, hours := s.fetchWindow(ctx, s.warehouses.Primary(), w)
	hours = filterHours(hours, func(h model.HourRecord) bool {
		if !lookup.Contains(lookup.TimelineModels, h.Model) {
			return false
		}
		if h.Equipment == lookup.ExcludedEquipment {
			return false
		}
		if equipment != "" && h.Equipment != equipment {
			return false
		}
		return true
	})

	segs := report.Segments(hours, w.End)
	rows := make([]model.TimelineRow, 0, len(segs))
	for _, seg := range segs {
		rows = append(rows, model.TimelineRow{Segment: seg, DurationMinutes: report.DurationMinutes(seg)})
	}

	return &model.TimelineReport{
		Day:      day,
		Window:   model.DateRange{From: w.Start, To: w.End},
		Segments: rows,
	}, nil
}

// GetFleetReport is the live board: every machine's current state. It
// looks back a week so machines parked since the weekend still show up.
func (s *ReportService) GetFleetReport(ctx context.Context, principal model.Principal) (*model.FleetReport, error) {
	_ = principal

	now := s.nowLocal()
	w := report.Rolling(now, 7*24)
	_, hours := s.fetchWindow(ctx, s.warehouses.Primary(), w)
	hours = filterHours(hours, func(h model.HourRecord) bool {
		return h.Equipment != lookup.ExcludedEquipment
	})

	return &model.FleetReport{
		GeneratedAt: now,
		Equipment:   report.CurrentStates(hours),
	}, nil
}

func (s *ReportService) warnUnpricedModels(rows []model.StoppageCostRow) {
	for _, r := range rows {
		if r.HourRate == 0 && r.Hours > 0 {
			s.log.Warn().Str("model", r.Model).Msg("no stoppage rate configured, billing zero")
		}
	}
}

func filterProduction(recs []model.ProductionRecord, keep func(model.ProductionRecord) bool) []model.ProductionRecord {
	out := recs[:0:0]
	for _, r := range recs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func filterHours(recs []model.HourRecord, keep func(model.HourRecord) bool) []model.HourRecord {
	out := recs[:0:0]
	for _, h := range recs {
		if keep(h) {
			out = append(out, h)
		}
	}
	return out
}

// movementOnly keeps the ore and waste movement operations the movement
// panels report on.
func movementOnly(recs []model.ProductionRecord) []model.ProductionRecord {
	return filterProduction(recs, func(r model.ProductionRecord) bool {
		return r.Operation == lookup.OreOperation || r.Operation == lookup.WasteOperation
	})
}

func lastShiftDay(recs []model.ProductionRecord) time.Time {
	var last time.Time
	for _, r := range recs {
		if r.ShiftDate.After(last) {
			last = r.ShiftDate
		}
	}
	return last
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
