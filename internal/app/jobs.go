package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nakabonne/tstorage"
	"github.com/panjf2000/ants/v2"
	"github.com/robfig/cron/v3"
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/pkg/metrics"
	"go.uber.org/zap"
)

// staleCartAge is how long an untouched cart survives before the hourly
// sweep drops it.
const staleCartAge = 48 * time.Hour

func (a *Application) initJob() {
	a.sched = cron.New()
	if _, err := a.sched.AddFunc("@hourly", a.runCartSweep); err != nil {
		zap.L().Error("failed to register cart sweep job", zap.Error(err))
	}
}

// runCartSweep drops in-memory carts nobody has touched for staleCartAge.
func (a *Application) runCartSweep() {
	pruned := a.carts.PruneStale(staleCartAge)
	if pruned > 0 {
		zap.L().Info("stale carts pruned", zap.Int("carts", pruned))
	}
}

// runCalendarSnapshot recomputes the blocked-day count over the full horizon
// for every catalog item and records it as a metric, one pool task per item.
func (a *Application) runCalendarSnapshot() (string, error) {
	started := time.Now()
	ctx := context.Background()

	invRepo := booking.NewGormInventoryRepository(a.gormDB)
	resRepo := booking.NewGormReservationRepository(a.gormDB)

	items, _, err := invRepo.List(ctx, booking.InventoryFilter{PageSize: 500})
	if err != nil {
		return "", err
	}

	buf := a.settings.Buffers()
	horizon := a.settings.HorizonDays()
	today := booking.Today()

	maxWorkers := int(a.settings.GetInt64("scheduler", "max_workers"))
	if maxWorkers <= 0 {
		maxWorkers = 8
	}
	pool, err := ants.NewPool(maxWorkers)
	if err != nil {
		return "", err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range items {
		item := items[i]
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			reservations, err := resRepo.ConfirmedForItem(ctx, item.ID)
			if err != nil {
				zap.L().Error("calendar snapshot: failed to load reservations",
					zap.String("slug", item.Slug), zap.Error(err))
				return
			}
			disabled := booking.DisabledDatesForItem(&item, reservations, 1, horizon, today, buf)
			metrics.RecordValue(metrics.MetricBlockedDays, float64(len(disabled)),
				tstorage.Label{Name: "slug", Value: item.Slug})
		})
		if submitErr != nil {
			wg.Done()
			zap.L().Error("calendar snapshot: submit failed", zap.Error(submitErr))
		}
	}
	wg.Wait()

	zap.L().Info("calendar snapshot completed",
		zap.Int("items", len(items)),
		zap.Duration("elapsed", time.Since(started)))
	return fmt.Sprintf("snapshot of %d items", len(items)), nil
}

// runOrdersRollup records the last 24h order count.
func (a *Application) runOrdersRollup() (string, error) {
	since := time.Now().AddDate(0, 0, -1)
	var count int64
	if err := a.gormDB.Model(&domain.Order{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return "", err
	}
	metrics.RecordValue(metrics.MetricOrdersCreated+"_daily", float64(count))
	zap.L().Info("orders rollup recorded", zap.Int64("orders", count))
	return fmt.Sprintf("%d orders in the last 24h", count), nil
}
