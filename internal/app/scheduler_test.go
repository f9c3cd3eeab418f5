package app

import (
	"testing"
	"time"

	"github.com/rentalworks/partyrent/internal/domain"
)

func TestSchedulerDue(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		nextRun time.Time
		want    bool
	}{
		{"never scheduled", time.Time{}, true},
		{"next run passed", now.Add(-time.Minute), true},
		{"next run is now", now, true},
		{"next run in the future", now.Add(time.Minute), false},
	}
	for _, tc := range cases {
		sched := &domain.SysScheduler{NextRunAt: tc.nextRun}
		if got := schedulerDue(sched, now); got != tc.want {
			t.Errorf("%s: schedulerDue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSchedulerNextRun(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	sched := &domain.SysScheduler{Interval: 6 * 3600}
	if got := schedulerNextRun(sched, now); !got.Equal(now.Add(6 * time.Hour)) {
		t.Errorf("schedulerNextRun = %v, want %v", got, now.Add(6*time.Hour))
	}

	// A broken interval must not spin the loop.
	sched = &domain.SysScheduler{Interval: 0}
	if got := schedulerNextRun(sched, now); !got.Equal(now.Add(10 * time.Second)) {
		t.Errorf("schedulerNextRun with zero interval = %v, want %v", got, now.Add(10*time.Second))
	}
}

func TestSchedulerNotRerunBeforeNextWindow(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	sched := &domain.SysScheduler{Interval: 3600, NextRunAt: now.Add(-time.Second)}

	if !schedulerDue(sched, now) {
		t.Fatal("expected overdue scheduler to be due")
	}
	sched.NextRunAt = schedulerNextRun(sched, now)
	if schedulerDue(sched, now.Add(time.Minute)) {
		t.Error("expected rescheduled task to wait for its next window")
	}
}
