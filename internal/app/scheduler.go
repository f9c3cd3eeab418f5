package app

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/pkg/common"
	"go.uber.org/zap"
)

// Task types dispatched by the scheduler loop.
const (
	TaskCalendarSnapshot = "calendar_snapshot"
	TaskOrdersRollup     = "orders_rollup"
)

// StartSchedulerService runs enabled sys_scheduler rows periodically
func (a *Application) StartSchedulerService(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.runSchedulers()
			}
		}
	}()
}

// schedulerDue reports whether sched should run at now. A zero NextRunAt
// means the row has never been scheduled and runs immediately.
func schedulerDue(sched *domain.SysScheduler, now time.Time) bool {
	return sched.NextRunAt.IsZero() || !now.Before(sched.NextRunAt)
}

// schedulerNextRun computes the follow-up NextRunAt with a 10 second floor so
// a misconfigured interval cannot spin the loop.
func schedulerNextRun(sched *domain.SysScheduler, now time.Time) time.Time {
	interval := sched.Interval
	if interval < 10 {
		interval = 10
	}
	return now.Add(time.Duration(interval) * time.Second)
}

// runSchedulers executes every enabled scheduler whose next run has passed.
func (a *Application) runSchedulers() {
	var schedulers []domain.SysScheduler
	if err := a.gormDB.Where("status = ?", common.ENABLED).Find(&schedulers).Error; err != nil {
		zap.L().Error("failed to load schedulers", zap.Error(err))
		return
	}
	now := time.Now()
	for i := range schedulers {
		sched := &schedulers[i]
		if !schedulerDue(sched, now) {
			continue
		}
		a.gormDB.Model(&domain.SysScheduler{}).
			Where("id = ?", sched.ID).
			Update("next_run_at", schedulerNextRun(sched, now))
		a.dispatchScheduler(sched)
	}
}

// RunSchedulerNow executes one scheduler immediately, regardless of its
// NextRunAt, and reschedules its next run from now.
func (a *Application) RunSchedulerNow(id int64) error {
	var sched domain.SysScheduler
	if err := a.gormDB.First(&sched, id).Error; err != nil {
		return err
	}
	a.gormDB.Model(&domain.SysScheduler{}).
		Where("id = ?", sched.ID).
		Update("next_run_at", schedulerNextRun(&sched, time.Now()))
	return a.dispatchScheduler(&sched)
}

func (a *Application) dispatchScheduler(sched *domain.SysScheduler) error {
	var message string
	var err error
	switch sched.TaskType {
	case TaskCalendarSnapshot:
		message, err = a.runCalendarSnapshot()
	case TaskOrdersRollup:
		message, err = a.runOrdersRollup()
	default:
		err = errors.Errorf("unknown task type %s", sched.TaskType)
	}

	result := "success"
	if err != nil {
		result = "failed"
		message = err.Error()
		zap.L().Error("scheduler task failed",
			zap.String("name", sched.Name),
			zap.String("task_type", sched.TaskType),
			zap.Error(err))
	}
	a.gormDB.Model(&domain.SysScheduler{}).
		Where("id = ?", sched.ID).
		Updates(map[string]interface{}{
			"last_run_at":  time.Now(),
			"last_result":  result,
			"last_message": message,
		})
	return err
}
