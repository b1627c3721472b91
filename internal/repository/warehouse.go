package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"mining-reports-service/internal/model"
)

// Warehouse timestamp parameter format expected by the fact procedures.
const procTimeLayout = "02/01/2006 15:04:05"

// WarehouseRepository reads the production and hourly-state fact feeds. A
// feed failure is logged and surfaces as an empty result: the reports stay
// up with empty tables while the warehouse is down, and the renderer shows
// the no-data placeholder.
type WarehouseRepository struct {
	db    *gorm.DB
	cache *cache.Cache
	log   zerolog.Logger
}

func NewWarehouseRepository(db *gorm.DB, ttl time.Duration, log zerolog.Logger) *WarehouseRepository {
	return &WarehouseRepository{
		db:    db,
		cache: cache.New(ttl, 10*time.Minute),
		log:   log.With().Str("component", "warehouse").Logger(),
	}
}

// FetchProduction returns raw production rows between start and end.
// Results are memoized per exact parameter pair for the cache TTL, since
// every dashboard refresh re-issues the same heavy procedure call.
func (r *WarehouseRepository) FetchProduction(ctx context.Context, start, end time.Time) []model.RawProductionRow {
	key := cacheKey("usp_fato_producao", start, end)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]model.RawProductionRow)
	}

	var rows []model.RawProductionRow
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM usp_fato_producao(?, ?)", start.Format(procTimeLayout), end.Format(procTimeLayout)).
		Scan(&rows).Error
	if err != nil {
		r.log.Error().Err(err).Time("start", start).Time("end", end).Msg("production feed unavailable")
		return nil
	}

	r.cache.SetDefault(key, rows)
	return rows
}

// FetchHours returns raw hourly-state rows between start and end, with the
// same memoization as FetchProduction.
func (r *WarehouseRepository) FetchHours(ctx context.Context, start, end time.Time) []model.RawHourRow {
	key := cacheKey("usp_fato_hora", start, end)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]model.RawHourRow)
	}

	var rows []model.RawHourRow
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM usp_fato_hora(?, ?)", start.Format(procTimeLayout), end.Format(procTimeLayout)).
		Scan(&rows).Error
	if err != nil {
		r.log.Error().Err(err).Time("start", start).Time("end", end).Msg("hourly state feed unavailable")
		return nil
	}

	r.cache.SetDefault(key, rows)
	return rows
}

func cacheKey(proc string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", proc, start.Format(procTimeLayout), end.Format(procTimeLayout))
}
