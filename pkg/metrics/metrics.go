package metrics

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/nakabonne/tstorage"
)

// Metric names recorded by the application.
const (
	MetricHTTPRequests       = "partyrent_http_requests"
	MetricAvailabilityChecks = "partyrent_availability_checks"
	MetricOrdersCreated      = "partyrent_orders_created"
	MetricBlockedDays        = "partyrent_blocked_days"
)

var (
	mu      sync.Mutex
	storage tstorage.Storage
)

// InitMetrics opens the local time-series store under workdir.
func InitMetrics(workdir string) error {
	mu.Lock()
	defer mu.Unlock()
	s, err := tstorage.NewStorage(
		tstorage.WithDataPath(filepath.Join(workdir, "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithPartitionDuration(24*time.Hour),
	)
	if err != nil {
		return err
	}
	storage = s
	return nil
}

// RecordValue writes one datapoint for metric with optional labels.
func RecordValue(metric string, value float64, labels ...tstorage.Label) {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return
	}
	_ = storage.InsertRows([]tstorage.Row{
		{
			Metric: metric,
			Labels: labels,
			DataPoint: tstorage.DataPoint{
				Timestamp: time.Now().Unix(),
				Value:     value,
			},
		},
	})
}

// CounterInc records a single increment event for metric.
func CounterInc(metric string, labels ...tstorage.Label) {
	RecordValue(metric, 1, labels...)
}

// Select reads datapoints back, mainly for admin inspection.
func Select(metric string, start, end int64, labels ...tstorage.Label) ([]*tstorage.DataPoint, error) {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return nil, nil
	}
	return storage.Select(metric, labels, start, end)
}

// Close flushes and closes the underlying store.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return nil
	}
	err := storage.Close()
	storage = nil
	return err
}
