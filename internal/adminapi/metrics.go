package adminapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nakabonne/tstorage"
	"github.com/rentalworks/partyrent/internal/webserver"
	"github.com/rentalworks/partyrent/pkg/metrics"
)

// metricNames whitelists what the inspection endpoint may read.
var metricNames = map[string]string{
	"http_requests":       metrics.MetricHTTPRequests,
	"availability_checks": metrics.MetricAvailabilityChecks,
	"orders_created":      metrics.MetricOrdersCreated,
	"orders_daily":        metrics.MetricOrdersCreated + "_daily",
	"blocked_days":        metrics.MetricBlockedDays,
}

func registerMetricsRoutes() {
	webserver.ApiGET("/metrics/:name", queryMetric)
}

// queryMetric reads raw datapoints back from the local time-series store.
// Optional hours (default 24) bounds the window; optional slug narrows
// labeled series such as blocked_days.
func queryMetric(c echo.Context) error {
	metric, found := metricNames[strings.TrimSpace(c.Param("name"))]
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Unknown metric", nil)
	}

	hours := 24
	if h, err := strconv.Atoi(c.QueryParam("hours")); err == nil && h > 0 && h <= 24*90 {
		hours = h
	}
	end := time.Now().Unix()
	start := end - int64(hours)*3600

	var labels []tstorage.Label
	if slug := strings.TrimSpace(c.QueryParam("slug")); slug != "" {
		labels = append(labels, tstorage.Label{Name: "slug", Value: slug})
	}

	points, err := metrics.Select(metric, start, end, labels...)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "METRICS_ERROR", "Failed to read metric", err.Error())
	}
	if points == nil {
		points = []*tstorage.DataPoint{}
	}
	return ok(c, map[string]interface{}{
		"metric": metric,
		"start":  start,
		"end":    end,
		"points": points,
	})
}
